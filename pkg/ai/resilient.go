package ai

import (
	"context"
	"time"

	"github.com/seedstage-inc/seedstage-engine/pkg/models"
	"github.com/seedstage-inc/seedstage-engine/pkg/retry"
)

// DefaultCallTimeout bounds a single external call when no explicit timeout
// is configured.
const DefaultCallTimeout = 30 * time.Second

// ResilientReviewer wraps a Reviewer with a per-call deadline and backoff
// retry. Timeouts classify as retryable; a call that ultimately fails leaves
// whatever state the caller holds untouched.
type ResilientReviewer struct {
	inner   Reviewer
	timeout time.Duration
	cfg     *retry.Config
}

// NewResilientReviewer wraps inner. A non-positive timeout falls back to
// DefaultCallTimeout; a nil retry config uses retry defaults.
func NewResilientReviewer(inner Reviewer, timeout time.Duration, cfg *retry.Config) *ResilientReviewer {
	if timeout <= 0 {
		timeout = DefaultCallTimeout
	}
	return &ResilientReviewer{inner: inner, timeout: timeout, cfg: cfg}
}

// ReviewTask implements Reviewer.
func (r *ResilientReviewer) ReviewTask(ctx context.Context, task models.Task, startup models.Startup) (*models.Review, error) {
	return retry.DoWithResult(ctx, r.cfg, func() (*models.Review, error) {
		callCtx, cancel := context.WithTimeout(ctx, r.timeout)
		defer cancel()
		review, err := r.inner.ReviewTask(callCtx, task, startup)
		if err != nil {
			return nil, ClassifyError(err)
		}
		return review, nil
	})
}

// AssessStartup implements Reviewer.
func (r *ResilientReviewer) AssessStartup(ctx context.Context, startup models.Startup) (*Assessment, error) {
	return retry.DoWithResult(ctx, r.cfg, func() (*Assessment, error) {
		callCtx, cancel := context.WithTimeout(ctx, r.timeout)
		defer cancel()
		a, err := r.inner.AssessStartup(callCtx, startup)
		if err != nil {
			return nil, ClassifyError(err)
		}
		return a, nil
	})
}

var _ Reviewer = (*ResilientReviewer)(nil)

// ResilientMatcher wraps a Matcher the same way.
type ResilientMatcher struct {
	inner   Matcher
	timeout time.Duration
	cfg     *retry.Config
}

// NewResilientMatcher wraps inner. A non-positive timeout falls back to
// DefaultCallTimeout; a nil retry config uses retry defaults.
func NewResilientMatcher(inner Matcher, timeout time.Duration, cfg *retry.Config) *ResilientMatcher {
	if timeout <= 0 {
		timeout = DefaultCallTimeout
	}
	return &ResilientMatcher{inner: inner, timeout: timeout, cfg: cfg}
}

// ScoreCandidates implements Matcher.
func (m *ResilientMatcher) ScoreCandidates(ctx context.Context, startup models.Startup, partners []models.PartnerProfile) ([]CandidateScore, error) {
	return retry.DoWithResult(ctx, m.cfg, func() ([]CandidateScore, error) {
		callCtx, cancel := context.WithTimeout(ctx, m.timeout)
		defer cancel()
		scores, err := m.inner.ScoreCandidates(callCtx, startup, partners)
		if err != nil {
			return nil, ClassifyError(err)
		}
		return scores, nil
	})
}

var _ Matcher = (*ResilientMatcher)(nil)
