// Package ai defines the engine's ports to the external review/scoring
// model and the clients that implement them. The engine treats these as
// opaque, possibly-slow, possibly-failing functions.
package ai

import (
	"context"

	"github.com/seedstage-inc/seedstage-engine/pkg/models"
)

// Reviewer reviews task submissions and assesses startups.
// Use this interface for dependency injection to enable mocking in tests.
type Reviewer interface {
	// ReviewTask scores a submitted deliverable in the context of its
	// startup. The returned review is advisory; it never changes task state.
	ReviewTask(ctx context.Context, task models.Task, startup models.Startup) (*models.Review, error)

	// AssessStartup produces the metrics triple and a free-text opinion for
	// the incubation-application flow.
	AssessStartup(ctx context.Context, startup models.Startup) (*Assessment, error)
}

// Matcher produces raw per-candidate sub-scores for partner matching.
// Combining, clamping, ranking and truncation stay in the engine.
type Matcher interface {
	ScoreCandidates(ctx context.Context, startup models.Startup, partners []models.PartnerProfile) ([]CandidateScore, error)
}

// Assessment is the Reviewer's verdict on a whole startup.
type Assessment struct {
	Metrics models.Metrics `json:"metrics"`
	Opinion string         `json:"opinion"`
}

// CandidateScore is one candidate's raw scoring from the Matcher.
type CandidateScore struct {
	PartnerID string           `json:"partner_id"`
	SubScores models.SubScores `json:"sub_scores"`
	Reasoning []string         `json:"reasoning,omitempty"`
	Risk      string           `json:"risk,omitempty"`
}
