// Package services implements the engine's workflows over the entity store:
// accounts, roadmap progression and partner matching.
package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/seedstage-inc/seedstage-engine/pkg/ai"
	"github.com/seedstage-inc/seedstage-engine/pkg/apperrors"
	"github.com/seedstage-inc/seedstage-engine/pkg/logging"
	"github.com/seedstage-inc/seedstage-engine/pkg/models"
	"github.com/seedstage-inc/seedstage-engine/pkg/roadmap"
	"github.com/seedstage-inc/seedstage-engine/pkg/storage"
)

// RegisterInput is the profile submitted at registration. ID is optional; a
// fresh one is allocated when empty. Ids with the demo prefix mark seeded
// fixture accounts and never start a session.
type RegisterInput struct {
	ID        string
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Role      string

	// Founder-only fields; ignored for other roles.
	StartupName string
	StartupBio  string
	Industry    string
}

// ProfileUpdate carries the editable profile fields for SaveProfile. Nil
// pointers leave the field unchanged.
type ProfileUpdate struct {
	FirstName  *string
	LastName   *string
	Phone      *string
	StartupBio *string
	Cofounders []models.Cofounder
}

// AccountsService covers registration, login, sessions and profile upkeep.
type AccountsService interface {
	// Register creates a user and, for founders, the paired startup with a
	// fresh roadmap snapshot and task set. Non-demo registrations start a
	// session. A returned error may accompany partially created records.
	Register(ctx context.Context, input RegisterInput) (*models.User, *models.Startup, error)

	// Login resolves the first user whose email matches case-insensitively,
	// starts a session and returns the user with the founder's startup, if
	// any. Unknown emails return ErrNotFound without starting a session.
	Login(ctx context.Context, email string) (*models.User, *models.Startup, error)

	// Logout clears the session pointer.
	Logout(ctx context.Context) error

	// SaveProfile updates the signed-in user's editable fields and the
	// founder's startup bio/co-founders, refreshing the activity timestamp.
	SaveProfile(ctx context.Context, update ProfileUpdate) error

	// ApplyForIncubation runs the external startup assessment and stores the
	// metrics triple and opinion on the startup. Status is left untouched.
	ApplyForIncubation(ctx context.Context, startupID string) (*ai.Assessment, error)

	// ApproveIncubation transitions a startup from pending to approved.
	ApproveIncubation(ctx context.Context, startupID string) error

	// RegisterPartner upserts a partner profile keyed by owner user id.
	RegisterPartner(ctx context.Context, profile models.PartnerProfile) error

	// RateProgram upserts the user's rating of the program.
	RateProgram(ctx context.Context, userID string, rating models.ProgramRating) error

	// RequestService appends a service request for the signed-in user.
	RequestService(ctx context.Context, service, note string) (*models.ServiceRequest, error)
}

type accountsService struct {
	store    *storage.Store
	reviewer ai.Reviewer
	logger   *zap.Logger
	now      func() time.Time
}

// NewAccountsService creates a new AccountsService.
func NewAccountsService(store *storage.Store, reviewer ai.Reviewer, logger *zap.Logger) AccountsService {
	return &accountsService{
		store:    store,
		reviewer: reviewer,
		logger:   logger.Named("accounts"),
		now:      time.Now,
	}
}

var _ AccountsService = (*accountsService)(nil)

func (s *accountsService) Register(ctx context.Context, input RegisterInput) (*models.User, *models.Startup, error) {
	if !models.IsValidRole(input.Role) {
		return nil, nil, fmt.Errorf("register role %q: %w", input.Role, apperrors.ErrInvalidRole)
	}

	users, err := s.store.Users()
	if err != nil {
		return nil, nil, fmt.Errorf("load users: %w", err)
	}
	for i := range users {
		if users[i].EmailEquals(input.Email) {
			return nil, nil, fmt.Errorf("register %s: %w", logging.SanitizeEmail(input.Email), apperrors.ErrDuplicateEmail)
		}
	}

	user := models.User{
		ID:        input.ID,
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
		Phone:     input.Phone,
		Role:      input.Role,
	}
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	user.IsDemo = models.IsDemoID(user.ID)

	if err := s.store.AppendUser(user); err != nil {
		return nil, nil, fmt.Errorf("persist user: %w", err)
	}

	var startup *models.Startup
	if user.Role == models.RoleFounder {
		startup, err = s.seedFounder(user, input)
		if err != nil {
			// The user record stands; surface the inconsistency instead of
			// pretending the whole registration failed.
			s.logger.Warn("partial registration",
				zap.String("user_id", user.ID),
				zap.String("error", logging.SanitizeError(err)))
			return &user, startup, fmt.Errorf("seed founder records: %w", err)
		}
	}

	if !user.IsDemo {
		projectID := ""
		if startup != nil {
			projectID = startup.ID
		}
		if err := s.store.StartSession(user.ID, projectID); err != nil {
			return &user, startup, fmt.Errorf("start session: %w", err)
		}
	}

	s.logger.Info("registered",
		zap.String("user_id", user.ID),
		zap.String("role", user.Role),
		zap.Bool("demo", user.IsDemo))

	return &user, startup, nil
}

// seedFounder creates the startup, roadmap snapshot and six tasks paired
// with a founder. Writes are sequential with no transaction; the caller
// tolerates partial completion.
func (s *accountsService) seedFounder(user models.User, input RegisterInput) (*models.Startup, error) {
	startup := models.Startup{
		ID:           uuid.NewString(),
		OwnerID:      user.ID,
		Name:         input.StartupName,
		Bio:          input.StartupBio,
		Industry:     input.Industry,
		Status:       models.StartupPending,
		LastActivity: s.now(),
		IsDemo:       user.IsDemo,
	}
	if user.IsDemo {
		startup.ID = models.DemoIDPrefix + startup.ID
	}

	if err := s.store.AppendStartup(startup); err != nil {
		return nil, fmt.Errorf("persist startup: %w", err)
	}
	if err := s.store.SaveRoadmap(user.ID, roadmap.Template()); err != nil {
		return &startup, fmt.Errorf("persist roadmap snapshot: %w", err)
	}
	if err := s.store.AppendTasks(roadmap.SeedTasks(user.ID, uuid.NewString)); err != nil {
		return &startup, fmt.Errorf("persist tasks: %w", err)
	}
	return &startup, nil
}

func (s *accountsService) Login(_ context.Context, email string) (*models.User, *models.Startup, error) {
	users, err := s.store.Users()
	if err != nil {
		return nil, nil, fmt.Errorf("load users: %w", err)
	}

	// First match in insertion order wins; duplicate emails are a documented
	// looseness of the data, not a guaranteed uniqueness contract.
	var user *models.User
	for i := range users {
		if users[i].EmailEquals(email) {
			user = &users[i]
			break
		}
	}
	if user == nil {
		return nil, nil, fmt.Errorf("login %s: %w", logging.SanitizeEmail(email), apperrors.ErrNotFound)
	}

	var startup *models.Startup
	if user.Role == models.RoleFounder {
		startups, err := s.store.Startups()
		if err != nil {
			return nil, nil, fmt.Errorf("load startups: %w", err)
		}
		for i := range startups {
			if startups[i].OwnerID == user.ID {
				startup = &startups[i]
				break
			}
		}
	}

	projectID := ""
	if startup != nil {
		projectID = startup.ID
	}
	if err := s.store.StartSession(user.ID, projectID); err != nil {
		return nil, nil, fmt.Errorf("start session: %w", err)
	}

	s.logger.Info("logged in", zap.String("user_id", user.ID), zap.String("role", user.Role))
	return user, startup, nil
}

func (s *accountsService) Logout(_ context.Context) error {
	return s.store.EndSession()
}

func (s *accountsService) SaveProfile(_ context.Context, update ProfileUpdate) error {
	sess, ok, err := s.store.CurrentSession()
	if err != nil {
		return fmt.Errorf("load session: %w", err)
	}
	if !ok {
		return apperrors.ErrNoSession
	}

	n, err := s.store.ReplaceUser(
		func(u *models.User) bool { return u.ID == sess.UserID },
		func(u *models.User) {
			if update.FirstName != nil {
				u.FirstName = *update.FirstName
			}
			if update.LastName != nil {
				u.LastName = *update.LastName
			}
			if update.Phone != nil {
				u.Phone = *update.Phone
			}
		})
	if err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("session user %s: %w", sess.UserID, apperrors.ErrNotFound)
	}

	if update.StartupBio != nil || update.Cofounders != nil {
		now := s.now()
		if _, err := s.store.ReplaceStartup(
			func(st *models.Startup) bool { return st.OwnerID == sess.UserID },
			func(st *models.Startup) {
				if update.StartupBio != nil {
					st.Bio = *update.StartupBio
				}
				if update.Cofounders != nil {
					st.Cofounders = update.Cofounders
				}
				st.LastActivity = now
			}); err != nil {
			return fmt.Errorf("update startup: %w", err)
		}
	}

	return nil
}

func (s *accountsService) ApplyForIncubation(ctx context.Context, startupID string) (*ai.Assessment, error) {
	startups, err := s.store.Startups()
	if err != nil {
		return nil, fmt.Errorf("load startups: %w", err)
	}
	var startup *models.Startup
	for i := range startups {
		if startups[i].ID == startupID {
			startup = &startups[i]
			break
		}
	}
	if startup == nil {
		return nil, fmt.Errorf("startup %s: %w", startupID, apperrors.ErrNotFound)
	}

	assessment, err := s.reviewer.AssessStartup(ctx, *startup)
	if err != nil {
		return nil, fmt.Errorf("assess startup: %w", err)
	}

	now := s.now()
	if _, err := s.store.ReplaceStartup(
		func(st *models.Startup) bool { return st.ID == startupID },
		func(st *models.Startup) {
			st.Metrics = assessment.Metrics
			st.AIOpinion = assessment.Opinion
			st.LastActivity = now
		}); err != nil {
		return nil, fmt.Errorf("store assessment: %w", err)
	}

	return assessment, nil
}

func (s *accountsService) ApproveIncubation(_ context.Context, startupID string) error {
	n, err := s.store.ReplaceStartup(
		func(st *models.Startup) bool { return st.ID == startupID && st.Status == models.StartupPending },
		func(st *models.Startup) { st.Status = models.StartupApproved })
	if err != nil {
		return fmt.Errorf("approve startup: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("pending startup %s: %w", startupID, apperrors.ErrNotFound)
	}
	return nil
}

func (s *accountsService) RegisterPartner(_ context.Context, profile models.PartnerProfile) error {
	if !models.IsValidPartnerRole(profile.Role) {
		return fmt.Errorf("partner role %q: %w", profile.Role, apperrors.ErrInvalidRole)
	}
	if err := s.store.UpsertPartner(profile); err != nil {
		return fmt.Errorf("upsert partner: %w", err)
	}
	return nil
}

func (s *accountsService) RateProgram(_ context.Context, userID string, rating models.ProgramRating) error {
	if rating.Stars < 1 || rating.Stars > 5 {
		return fmt.Errorf("rating must be 1..5, got %d", rating.Stars)
	}
	return s.store.PutProgramRating(userID, rating)
}

func (s *accountsService) RequestService(_ context.Context, service, note string) (*models.ServiceRequest, error) {
	sess, ok, err := s.store.CurrentSession()
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	if !ok {
		return nil, apperrors.ErrNoSession
	}

	req := models.ServiceRequest{
		ID:          uuid.NewString(),
		RequesterID: sess.UserID,
		Service:     service,
		Note:        note,
		Status:      models.RequestOpen,
		CreatedAt:   s.now(),
	}
	if err := s.store.AppendServiceRequest(req); err != nil {
		return nil, fmt.Errorf("persist service request: %w", err)
	}
	return &req, nil
}
