package services

import (
	"context"
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/seedstage-inc/seedstage-engine/pkg/ai"
	"github.com/seedstage-inc/seedstage-engine/pkg/apperrors"
	"github.com/seedstage-inc/seedstage-engine/pkg/config"
	"github.com/seedstage-inc/seedstage-engine/pkg/models"
	"github.com/seedstage-inc/seedstage-engine/pkg/storage"
)

// MatchingService ranks partner candidates against a startup. It reads
// records and never mutates the store.
type MatchingService interface {
	// Match scores the store's whole partner pool for the startup.
	Match(ctx context.Context, startupID string) ([]models.MatchResult, error)

	// MatchAgainst scores an explicit candidate pool. Equal aggregates keep
	// the pool's original order, so results are deterministic for identical
	// inputs. At most models.MaxMatchResults results are returned.
	MatchAgainst(ctx context.Context, startupID string, partners []models.PartnerProfile) ([]models.MatchResult, error)
}

type matchingService struct {
	store   *storage.Store
	matcher ai.Matcher
	weights config.MatchingConfig
	logger  *zap.Logger
}

// NewMatchingService creates a new MatchingService with the given aggregate
// weights.
func NewMatchingService(store *storage.Store, matcher ai.Matcher, weights config.MatchingConfig, logger *zap.Logger) MatchingService {
	return &matchingService{
		store:   store,
		matcher: matcher,
		weights: weights,
		logger:  logger.Named("matching"),
	}
}

var _ MatchingService = (*matchingService)(nil)

func (s *matchingService) Match(ctx context.Context, startupID string) ([]models.MatchResult, error) {
	partners, err := s.store.Partners()
	if err != nil {
		return nil, fmt.Errorf("load partners: %w", err)
	}
	return s.MatchAgainst(ctx, startupID, partners)
}

func (s *matchingService) MatchAgainst(ctx context.Context, startupID string, partners []models.PartnerProfile) ([]models.MatchResult, error) {
	startup, err := s.findStartup(startupID)
	if err != nil {
		return nil, err
	}

	// Refuse to rank against a startup whose owner record is gone; an empty
	// list would be misleading.
	if err := s.ownerExists(startup.OwnerID); err != nil {
		return nil, err
	}

	if len(partners) == 0 {
		return nil, nil
	}

	scores, err := s.matcher.ScoreCandidates(ctx, startup, partners)
	if err != nil {
		return nil, fmt.Errorf("score candidates: %w", err)
	}

	byPartner := make(map[string]ai.CandidateScore, len(scores))
	for _, sc := range scores {
		byPartner[sc.PartnerID] = sc
	}

	results := make([]models.MatchResult, 0, len(partners))
	for _, p := range partners {
		sc, ok := byPartner[p.OwnerID]
		if !ok {
			// The matcher skipped a candidate; rank it at the bottom rather
			// than dropping it silently.
			sc = ai.CandidateScore{PartnerID: p.OwnerID, Risk: "Candidate was not scored."}
		}
		sub := clampSubScores(sc.SubScores)
		results = append(results, models.MatchResult{
			Partner:   p,
			SubScores: sub,
			Aggregate: s.aggregate(sub),
			Reasoning: sc.Reasoning,
			Risk:      sc.Risk,
		})
	}

	// Stable sort keeps the pool's original order on exact ties.
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Aggregate > results[j].Aggregate
	})

	if len(results) > models.MaxMatchResults {
		results = results[:models.MaxMatchResults]
	}
	for i := range results {
		results[i].Rank = i + 1
	}

	s.logger.Info("matched partners",
		zap.String("startup_id", startupID),
		zap.Int("candidates", len(partners)),
		zap.Int("results", len(results)))
	return results, nil
}

func (s *matchingService) findStartup(startupID string) (models.Startup, error) {
	startups, err := s.store.Startups()
	if err != nil {
		return models.Startup{}, fmt.Errorf("load startups: %w", err)
	}
	for i := range startups {
		if startups[i].ID == startupID {
			return startups[i], nil
		}
	}
	return models.Startup{}, fmt.Errorf("startup %s: %w", startupID, apperrors.ErrNotFound)
}

func (s *matchingService) ownerExists(ownerID string) error {
	users, err := s.store.Users()
	if err != nil {
		return fmt.Errorf("load users: %w", err)
	}
	for i := range users {
		if users[i].ID == ownerID {
			return nil
		}
	}
	return fmt.Errorf("startup owner %s: %w", ownerID, apperrors.ErrNotFound)
}

// aggregate combines the four sub-scores with the configured weights into a
// single 0-100 value. A weighted mean over non-negative weights is monotonic
// in every sub-score and bounded by the sub-score range.
func (s *matchingService) aggregate(sub models.SubScores) int {
	w := s.weights
	total := w.RoleWeight + w.ExperienceWeight + w.IndustryWeight + w.StyleWeight
	if total <= 0 {
		return 0
	}
	weighted := float64(sub.Role)*w.RoleWeight +
		float64(sub.Experience)*w.ExperienceWeight +
		float64(sub.Industry)*w.IndustryWeight +
		float64(sub.Style)*w.StyleWeight
	v := int(weighted/total + 0.5)
	if v < 0 {
		v = 0
	}
	if v > 100 {
		v = 100
	}
	return v
}

func clampSubScores(sub models.SubScores) models.SubScores {
	return models.SubScores{
		Role:       clampScore(sub.Role),
		Experience: clampScore(sub.Experience),
		Industry:   clampScore(sub.Industry),
		Style:      clampScore(sub.Style),
	}
}

func clampScore(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
