package engine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/seedstage-inc/seedstage-engine/pkg/config"
	"github.com/seedstage-inc/seedstage-engine/pkg/models"
	"github.com/seedstage-inc/seedstage-engine/pkg/services"
)

func testConfig() *config.Config {
	return &config.Config{
		AI: config.AIConfig{
			Provider:           config.ProviderHeuristic,
			CallTimeoutSeconds: 5,
		},
		Matching: config.MatchingConfig{
			RoleWeight:       0.35,
			ExperienceWeight: 0.25,
			IndustryWeight:   0.25,
			StyleWeight:      0.15,
		},
	}
}

// TestEngine_FounderJourney walks the whole founder lifecycle through the
// wired engine: register, submit, review, approve, unlock, match.
func TestEngine_FounderJourney(t *testing.T) {
	eng, err := NewInMemory(testConfig(), zap.NewNop())
	require.NoError(t, err)
	defer func() { require.NoError(t, eng.Close()) }()

	ctx := context.Background()

	user, startup, err := eng.Accounts.Register(ctx, services.RegisterInput{
		FirstName:   "Sara",
		LastName:    "Haddad",
		Email:       "sara@eilm.io",
		Role:        models.RoleFounder,
		StartupName: "Eilm",
		StartupBio:  "Adaptive tutoring for underserved school districts.",
		Industry:    "edtech",
	})
	require.NoError(t, err)
	require.NotNil(t, startup)

	// Registration opens a session for a non-demo founder.
	session, ok, err := eng.Store.CurrentSession()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, user.ID, session.UserID)

	// Level 1 task is assigned, the rest locked.
	tasks, err := eng.Store.Tasks()
	require.NoError(t, err)
	require.Len(t, tasks, models.RoadmapLevelCount)
	assert.Equal(t, models.TaskAssigned, tasks[0].Status)
	assert.Equal(t, models.TaskLocked, tasks[1].Status)

	content := "We interviewed forty teachers across three districts and validated " +
		"that grading overhead is the top pain point. Attached are the transcripts " +
		"and a summary of willingness-to-pay signals from the pilot schools."
	require.NoError(t, eng.Progress.Submit(ctx, tasks[0].ID, services.SubmissionFile{
		Name:    "validation.md",
		Content: content,
	}))

	review, err := eng.Progress.ReviewAndRecord(ctx, tasks[0].ID)
	require.NoError(t, err)
	assert.Greater(t, review.Score, 0)

	require.NoError(t, eng.Progress.Approve(ctx, tasks[0].ID))

	levels, err := eng.Progress.RoadmapFor(ctx, user.ID)
	require.NoError(t, err)
	assert.True(t, levels[0].IsCompleted)
	assert.False(t, levels[1].IsLocked)

	// Partner matching over a registered candidate.
	require.NoError(t, eng.Accounts.RegisterPartner(ctx, models.PartnerProfile{
		OwnerID:      "partner-1",
		Name:         "Lina Aboud",
		Role:         models.PartnerRoleCTO,
		Years:        7,
		Skills:       []string{"edtech", "ml"},
		HoursPerWeek: 40,
		Commitment:   models.CommitmentFullTime,
		WorkStyle:    models.WorkStyleStructured,
		Verified:     true,
	}))

	results, err := eng.Matching.Match(ctx, startup.ID)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, 1, results[0].Rank)
	assert.Greater(t, results[0].Aggregate, 0)

	require.NoError(t, eng.Accounts.Logout(ctx))
	_, ok, err = eng.Store.CurrentSession()
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestNew_OpensStoreFile(t *testing.T) {
	cfg := testConfig()
	cfg.StorePath = t.TempDir() + "/engine.db"

	eng, err := New(cfg, zap.NewNop())
	require.NoError(t, err)

	_, _, err = eng.Accounts.Register(context.Background(), services.RegisterInput{
		FirstName: "Omar",
		LastName:  "Nasser",
		Email:     "omar@farmline.co",
		Role:      models.RoleMentor,
	})
	require.NoError(t, err)
	require.NoError(t, eng.Close())

	// Records survive a close/reopen cycle.
	eng, err = New(cfg, zap.NewNop())
	require.NoError(t, err)
	defer func() { require.NoError(t, eng.Close()) }()

	users, err := eng.Store.Users()
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "omar@farmline.co", users[0].Email)
}

func TestNewInMemory_SeedsDemoData(t *testing.T) {
	cfg := testConfig()
	cfg.SeedDemoData = true

	eng, err := NewInMemory(cfg, zap.NewNop())
	require.NoError(t, err)

	users, err := eng.Store.Users()
	require.NoError(t, err)
	assert.Len(t, users, 2)
	for _, u := range users {
		assert.True(t, u.IsDemo)
	}

	partners, err := eng.Store.Partners()
	require.NoError(t, err)
	assert.Len(t, partners, 2)

	// Demo registration never opens a session.
	_, ok, err := eng.Store.CurrentSession()
	require.NoError(t, err)
	assert.False(t, ok)

	// Seeding is idempotent across restarts over the same records.
	require.NoError(t, eng.seedDemoData(context.Background()))
	users, err = eng.Store.Users()
	require.NoError(t, err)
	assert.Len(t, users, 2)
}
