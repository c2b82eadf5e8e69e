package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/seedstage-inc/seedstage-engine/pkg/ai"
	"github.com/seedstage-inc/seedstage-engine/pkg/apperrors"
	"github.com/seedstage-inc/seedstage-engine/pkg/models"
	"github.com/seedstage-inc/seedstage-engine/pkg/storage"
)

func newAccountsFixture(t *testing.T) (*storage.Store, AccountsService) {
	t.Helper()
	store := storage.New(storage.NewMemoryMedium(), zap.NewNop())
	svc := NewAccountsService(store, ai.NewHeuristic(), zap.NewNop())
	return store, svc
}

func founderInput() RegisterInput {
	return RegisterInput{
		FirstName:   "Sara",
		LastName:    "Haddad",
		Email:       "sara@eilm.io",
		Role:        models.RoleFounder,
		StartupName: "Eilm",
		StartupBio:  "Adaptive tutoring for schools.",
		Industry:    "edtech",
	}
}

func TestRegister_FounderSeedsRoadmapAndTasks(t *testing.T) {
	store, svc := newAccountsFixture(t)
	ctx := context.Background()

	user, startup, err := svc.Register(ctx, founderInput())
	require.NoError(t, err)
	require.NotNil(t, user)
	require.NotNil(t, startup)

	assert.Equal(t, user.ID, startup.OwnerID)
	assert.Equal(t, models.StartupPending, startup.Status)
	assert.Zero(t, startup.Metrics)

	tasks, err := store.Tasks()
	require.NoError(t, err)
	require.Len(t, tasks, 6)
	for _, task := range tasks {
		want := models.TaskLocked
		if task.LevelID == 1 {
			want = models.TaskAssigned
		}
		assert.Equal(t, want, task.Status, "level %d", task.LevelID)
	}

	levels, err := store.Roadmap(user.ID)
	require.NoError(t, err)
	require.Len(t, levels, 6)
	for _, l := range levels {
		assert.Equal(t, l.LevelID != 1, l.IsLocked, "level %d", l.LevelID)
	}

	sess, ok, err := store.CurrentSession()
	require.NoError(t, err)
	require.True(t, ok, "normal registration starts a session")
	assert.Equal(t, user.ID, sess.UserID)
	assert.Equal(t, startup.ID, sess.ProjectID)
}

func TestRegister_NonFounderCreatesNoStartup(t *testing.T) {
	store, svc := newAccountsFixture(t)

	user, startup, err := svc.Register(context.Background(), RegisterInput{
		FirstName: "Maya", Email: "maya@x.io", Role: models.RoleMentor,
	})
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Nil(t, startup)

	startups, err := store.Startups()
	require.NoError(t, err)
	assert.Empty(t, startups)
}

func TestRegister_DuplicateEmailRejected(t *testing.T) {
	_, svc := newAccountsFixture(t)
	ctx := context.Background()

	_, _, err := svc.Register(ctx, founderInput())
	require.NoError(t, err)

	dup := founderInput()
	dup.Email = "SARA@EILM.IO" // case-insensitive key
	_, _, err = svc.Register(ctx, dup)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrDuplicateEmail))
}

func TestRegister_InvalidRoleRejected(t *testing.T) {
	_, svc := newAccountsFixture(t)

	_, _, err := svc.Register(context.Background(), RegisterInput{Email: "x@y.io", Role: "investor"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrInvalidRole))
}

func TestRegister_DemoAccountDoesNotStartSession(t *testing.T) {
	store, svc := newAccountsFixture(t)

	input := founderInput()
	input.ID = models.DemoIDPrefix + "founder-1"
	user, _, err := svc.Register(context.Background(), input)
	require.NoError(t, err)
	assert.True(t, user.IsDemo)

	_, ok, err := store.CurrentSession()
	require.NoError(t, err)
	assert.False(t, ok, "seeding must not clobber a visitor's session")
}

func TestRegister_PartialWriteSurvives(t *testing.T) {
	// Quota fits the user record but not the startup collection, forcing
	// the accepted partial-completion path.
	medium := storage.NewMemoryMediumWithQuota(250)
	store := storage.New(medium, zap.NewNop())
	svc := NewAccountsService(store, ai.NewHeuristic(), zap.NewNop())

	input := founderInput()
	input.StartupBio = "A very long description of the startup, repeated to push the record over the storage quota for this test case."
	user, _, err := svc.Register(context.Background(), input)

	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrCapacityExceeded))
	require.NotNil(t, user, "the user record stands even when later writes fail")

	users, usersErr := store.Users()
	require.NoError(t, usersErr)
	require.Len(t, users, 1)
	assert.Equal(t, user.ID, users[0].ID)
}

func TestLogin(t *testing.T) {
	store, svc := newAccountsFixture(t)
	ctx := context.Background()

	_, created, err := svc.Register(ctx, founderInput())
	require.NoError(t, err)
	require.NoError(t, store.EndSession())

	t.Run("unknown email", func(t *testing.T) {
		_, _, err := svc.Login(ctx, "nobody@x.io")
		require.Error(t, err)
		assert.True(t, errors.Is(err, apperrors.ErrNotFound))

		_, ok, err := store.CurrentSession()
		require.NoError(t, err)
		assert.False(t, ok, "failed login must not start a session")
	})

	t.Run("case-insensitive match resolves startup", func(t *testing.T) {
		user, startup, err := svc.Login(ctx, "Sara@Eilm.IO")
		require.NoError(t, err)
		require.NotNil(t, startup)
		assert.Equal(t, created.ID, startup.ID)

		sess, ok, err := store.CurrentSession()
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, user.ID, sess.UserID)
	})
}

func TestLogin_FirstMatchWins(t *testing.T) {
	store, svc := newAccountsFixture(t)

	// Duplicate emails cannot be registered, but pre-existing data may carry
	// them; insertion order decides.
	require.NoError(t, store.AppendUser(models.User{ID: "u1", Email: "dup@x.io", Role: models.RoleMentor}))
	require.NoError(t, store.AppendUser(models.User{ID: "u2", Email: "dup@x.io", Role: models.RoleMentor}))

	user, _, err := svc.Login(context.Background(), "dup@x.io")
	require.NoError(t, err)
	assert.Equal(t, "u1", user.ID)
}

func TestSaveProfile(t *testing.T) {
	store, svc := newAccountsFixture(t)
	ctx := context.Background()

	user, _, err := svc.Register(ctx, founderInput())
	require.NoError(t, err)

	first := "Sarah"
	bio := "Updated pitch."
	require.NoError(t, svc.SaveProfile(ctx, ProfileUpdate{
		FirstName:  &first,
		StartupBio: &bio,
		Cofounders: []models.Cofounder{{Name: "Lina", Role: "CTO"}},
	}))

	users, err := store.Users()
	require.NoError(t, err)
	assert.Equal(t, "Sarah", users[0].FirstName)
	assert.Equal(t, "Haddad", users[0].LastName, "unset fields stay untouched")

	startups, err := store.Startups()
	require.NoError(t, err)
	assert.Equal(t, "Updated pitch.", startups[0].Bio)
	require.Len(t, startups[0].Cofounders, 1)
	assert.False(t, startups[0].LastActivity.IsZero())

	_ = user
}

func TestSaveProfile_RequiresSession(t *testing.T) {
	_, svc := newAccountsFixture(t)

	err := svc.SaveProfile(context.Background(), ProfileUpdate{})
	assert.True(t, errors.Is(err, apperrors.ErrNoSession))
}

func TestIncubationFlow(t *testing.T) {
	store, svc := newAccountsFixture(t)
	ctx := context.Background()

	_, startup, err := svc.Register(ctx, founderInput())
	require.NoError(t, err)

	assessment, err := svc.ApplyForIncubation(ctx, startup.ID)
	require.NoError(t, err)
	require.NotNil(t, assessment)

	startups, err := store.Startups()
	require.NoError(t, err)
	assert.Equal(t, assessment.Metrics, startups[0].Metrics)
	assert.NotEmpty(t, startups[0].AIOpinion)
	assert.Equal(t, models.StartupPending, startups[0].Status, "assessment alone does not approve")

	require.NoError(t, svc.ApproveIncubation(ctx, startup.ID))
	startups, err = store.Startups()
	require.NoError(t, err)
	assert.Equal(t, models.StartupApproved, startups[0].Status)

	// Approving twice finds no pending startup.
	err = svc.ApproveIncubation(ctx, startup.ID)
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
}

func TestRequestService(t *testing.T) {
	store, svc := newAccountsFixture(t)
	ctx := context.Background()

	_, _, err := svc.Register(ctx, founderInput())
	require.NoError(t, err)

	req, err := svc.RequestService(ctx, "legal", "Need incorporation help")
	require.NoError(t, err)
	assert.Equal(t, models.RequestOpen, req.Status)

	reqs, err := store.ServiceRequests()
	require.NoError(t, err)
	require.Len(t, reqs, 1)
	assert.Equal(t, req.ID, reqs[0].ID)
}

func TestRateProgram(t *testing.T) {
	store, svc := newAccountsFixture(t)
	ctx := context.Background()

	require.Error(t, svc.RateProgram(ctx, "u1", models.ProgramRating{Stars: 0}))
	require.NoError(t, svc.RateProgram(ctx, "u1", models.ProgramRating{Stars: 4}))
	require.NoError(t, svc.RateProgram(ctx, "u1", models.ProgramRating{Stars: 5}))

	ratings, err := store.ProgramRatings()
	require.NoError(t, err)
	assert.Equal(t, 5, ratings["u1"].Stars)
}
