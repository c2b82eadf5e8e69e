package ai

import (
	"context"

	"github.com/seedstage-inc/seedstage-engine/pkg/models"
)

// MockReviewer is a configurable mock for testing review flows.
// Set the function fields to control behavior in tests.
type MockReviewer struct {
	// ReviewTaskFunc is called when ReviewTask is invoked.
	// If nil, returns a zero review and nil error.
	ReviewTaskFunc func(ctx context.Context, task models.Task, startup models.Startup) (*models.Review, error)

	// AssessStartupFunc is called when AssessStartup is invoked.
	// If nil, returns a zero assessment and nil error.
	AssessStartupFunc func(ctx context.Context, startup models.Startup) (*Assessment, error)

	// Call tracking for verification
	ReviewTaskCalls    int
	AssessStartupCalls int
}

// ReviewTask implements Reviewer.
func (m *MockReviewer) ReviewTask(ctx context.Context, task models.Task, startup models.Startup) (*models.Review, error) {
	m.ReviewTaskCalls++
	if m.ReviewTaskFunc != nil {
		return m.ReviewTaskFunc(ctx, task, startup)
	}
	return &models.Review{}, nil
}

// AssessStartup implements Reviewer.
func (m *MockReviewer) AssessStartup(ctx context.Context, startup models.Startup) (*Assessment, error) {
	m.AssessStartupCalls++
	if m.AssessStartupFunc != nil {
		return m.AssessStartupFunc(ctx, startup)
	}
	return &Assessment{}, nil
}

var _ Reviewer = (*MockReviewer)(nil)

// MockMatcher is a configurable mock for testing the matching scorer.
type MockMatcher struct {
	// ScoreCandidatesFunc is called when ScoreCandidates is invoked.
	// If nil, returns nil slice and nil error.
	ScoreCandidatesFunc func(ctx context.Context, startup models.Startup, partners []models.PartnerProfile) ([]CandidateScore, error)

	// Call tracking for verification
	ScoreCandidatesCalls int
}

// ScoreCandidates implements Matcher.
func (m *MockMatcher) ScoreCandidates(ctx context.Context, startup models.Startup, partners []models.PartnerProfile) ([]CandidateScore, error) {
	m.ScoreCandidatesCalls++
	if m.ScoreCandidatesFunc != nil {
		return m.ScoreCandidatesFunc(ctx, startup, partners)
	}
	return nil, nil
}

var _ Matcher = (*MockMatcher)(nil)
