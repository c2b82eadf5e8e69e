package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/seedstage-inc/seedstage-engine/pkg/ai"
	"github.com/seedstage-inc/seedstage-engine/pkg/apperrors"
	"github.com/seedstage-inc/seedstage-engine/pkg/logging"
	"github.com/seedstage-inc/seedstage-engine/pkg/models"
	"github.com/seedstage-inc/seedstage-engine/pkg/roadmap"
	"github.com/seedstage-inc/seedstage-engine/pkg/storage"
)

// PassThreshold is the advisory score at which calling UIs treat a review
// as a pass. The state machine never gates approval on it; approval is a
// separate explicit action.
const PassThreshold = 70

// SubmissionFile is the uploaded deliverable handed to Submit.
type SubmissionFile struct {
	Name    string
	Content string
}

// ProgressService is the roadmap/task state machine.
//
// Task states: locked → assigned → submitted → approved | rejected.
// Level states: locked → unlocked → completed. Level n+1 unlocks exactly
// when level n's task is approved; levels are never re-locked.
type ProgressService interface {
	// Submit stores the file payload and transitions an assigned task to
	// submitted. Any other current state is an invalid transition.
	Submit(ctx context.Context, taskID string, file SubmissionFile) error

	// Resubmit replaces the payload of a rejected task and returns it to
	// submitted. Approved tasks are final.
	Resubmit(ctx context.Context, taskID string, file SubmissionFile) error

	// RecordReview attaches an externally computed review without changing
	// task status; review and approval are deliberately decoupled.
	RecordReview(ctx context.Context, taskID string, review models.Review) error

	// ReviewAndRecord drives the external reviewer for a submitted task and
	// records the result. On external failure the task state is untouched
	// and the caller is expected to offer a retry.
	ReviewAndRecord(ctx context.Context, taskID string) (*models.Review, error)

	// Approve requires a submitted task: marks it approved, completes its
	// roadmap level, unlocks the next level and its task, and awards the
	// level badge (idempotent).
	Approve(ctx context.Context, taskID string) error

	// Reject transitions a submitted task to rejected.
	Reject(ctx context.Context, taskID string) error

	// RoadmapFor returns the user's roadmap snapshot.
	RoadmapFor(ctx context.Context, userID string) ([]models.RoadmapLevel, error)
}

type progressService struct {
	store    *storage.Store
	reviewer ai.Reviewer
	logger   *zap.Logger
	now      func() time.Time
}

// NewProgressService creates a new ProgressService.
func NewProgressService(store *storage.Store, reviewer ai.Reviewer, logger *zap.Logger) ProgressService {
	return &progressService{
		store:    store,
		reviewer: reviewer,
		logger:   logger.Named("progress"),
		now:      time.Now,
	}
}

var _ ProgressService = (*progressService)(nil)

func (s *progressService) findTask(taskID string) (models.Task, error) {
	tasks, err := s.store.Tasks()
	if err != nil {
		return models.Task{}, fmt.Errorf("load tasks: %w", err)
	}
	for i := range tasks {
		if tasks[i].ID == taskID {
			return tasks[i], nil
		}
	}
	return models.Task{}, fmt.Errorf("task %s: %w", taskID, apperrors.ErrNotFound)
}

func (s *progressService) Submit(ctx context.Context, taskID string, file SubmissionFile) error {
	return s.submitFrom(ctx, taskID, file, models.TaskAssigned)
}

func (s *progressService) Resubmit(ctx context.Context, taskID string, file SubmissionFile) error {
	return s.submitFrom(ctx, taskID, file, models.TaskRejected)
}

func (s *progressService) submitFrom(_ context.Context, taskID string, file SubmissionFile, from string) error {
	task, err := s.findTask(taskID)
	if err != nil {
		return err
	}
	if task.Status != from {
		return fmt.Errorf("submit task %s in state %s: %w", taskID, task.Status, apperrors.ErrInvalidTransition)
	}

	submission := &models.Submission{
		FileName:    file.Name,
		Content:     file.Content,
		SubmittedAt: s.now(),
	}

	mutate := func(t *models.Task) {
		t.Status = models.TaskSubmitted
		t.Submission = submission
		t.Review = nil
	}
	_, err = s.store.ReplaceTask(func(t *models.Task) bool { return t.ID == taskID }, mutate)
	if errors.Is(err, apperrors.ErrCapacityExceeded) {
		// The file blob does not fit in the store. Keep the transition and
		// drop the blob rather than failing the whole submission.
		s.logger.Warn("submission content dropped, storage capacity exceeded",
			zap.String("task_id", taskID),
			zap.Int("content_len", len(file.Content)))
		submission.Content = ""
		_, err = s.store.ReplaceTask(func(t *models.Task) bool { return t.ID == taskID }, mutate)
	}
	if err != nil {
		return fmt.Errorf("persist submission: %w", err)
	}

	s.logger.Info("task submitted",
		zap.String("task_id", taskID),
		zap.Int("level", task.LevelID))
	return nil
}

func (s *progressService) RecordReview(_ context.Context, taskID string, review models.Review) error {
	n, err := s.store.ReplaceTask(
		func(t *models.Task) bool { return t.ID == taskID },
		func(t *models.Task) { t.Review = &review })
	if err != nil {
		return fmt.Errorf("persist review: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("task %s: %w", taskID, apperrors.ErrNotFound)
	}
	return nil
}

func (s *progressService) ReviewAndRecord(ctx context.Context, taskID string) (*models.Review, error) {
	task, err := s.findTask(taskID)
	if err != nil {
		return nil, err
	}
	if task.Status != models.TaskSubmitted {
		return nil, fmt.Errorf("review task %s in state %s: %w", taskID, task.Status, apperrors.ErrInvalidTransition)
	}

	startup, err := s.startupForOwner(task.OwnerID)
	if err != nil {
		return nil, err
	}

	review, err := s.reviewer.ReviewTask(ctx, task, startup)
	if err != nil {
		s.logger.Warn("external review failed, task state unchanged",
			zap.String("task_id", taskID),
			zap.String("error", logging.SanitizeError(err)))
		return nil, fmt.Errorf("review task %s: %w", taskID, err)
	}

	if err := s.RecordReview(ctx, taskID, *review); err != nil {
		return nil, err
	}
	return review, nil
}

func (s *progressService) startupForOwner(ownerID string) (models.Startup, error) {
	startups, err := s.store.Startups()
	if err != nil {
		return models.Startup{}, fmt.Errorf("load startups: %w", err)
	}
	for i := range startups {
		if startups[i].OwnerID == ownerID {
			return startups[i], nil
		}
	}
	return models.Startup{}, fmt.Errorf("startup for owner %s: %w", ownerID, apperrors.ErrNotFound)
}

func (s *progressService) Approve(_ context.Context, taskID string) error {
	task, err := s.findTask(taskID)
	if err != nil {
		return err
	}
	if task.Status != models.TaskSubmitted {
		return fmt.Errorf("approve task %s in state %s: %w", taskID, task.Status, apperrors.ErrInvalidTransition)
	}

	if _, err := s.store.ReplaceTask(
		func(t *models.Task) bool { return t.ID == taskID },
		func(t *models.Task) { t.Status = models.TaskApproved }); err != nil {
		return fmt.Errorf("persist approval: %w", err)
	}

	if err := s.completeLevel(task.OwnerID, task.LevelID); err != nil {
		return err
	}

	badge, err := roadmap.BadgeForLevel(task.LevelID)
	if err != nil {
		return fmt.Errorf("resolve badge: %w", err)
	}
	if _, err := s.store.ReplaceUser(
		func(u *models.User) bool { return u.ID == task.OwnerID },
		func(u *models.User) { u.AwardBadge(badge.ID) }); err != nil {
		return fmt.Errorf("award badge: %w", err)
	}

	s.logger.Info("task approved",
		zap.String("task_id", taskID),
		zap.Int("level", task.LevelID),
		zap.String("badge", badge.ID))
	return nil
}

// completeLevel marks level n completed and, when a next level exists,
// unlocks it and flips its task from locked to assigned. Level 6 is
// terminal: nothing beyond the status flip happens.
func (s *progressService) completeLevel(ownerID string, levelID int) error {
	levels, err := s.store.Roadmap(ownerID)
	if err != nil {
		return fmt.Errorf("load roadmap: %w", err)
	}
	if levels == nil {
		return fmt.Errorf("roadmap for %s: %w", ownerID, apperrors.ErrNotFound)
	}

	for i := range levels {
		if levels[i].LevelID == levelID {
			levels[i].IsCompleted = true
		}
		if levels[i].LevelID == levelID+1 {
			levels[i].IsLocked = false
		}
	}
	if err := s.store.SaveRoadmap(ownerID, levels); err != nil {
		return fmt.Errorf("persist roadmap: %w", err)
	}

	if levelID < models.RoadmapLevelCount {
		if _, err := s.store.ReplaceTask(
			func(t *models.Task) bool {
				return t.OwnerID == ownerID && t.LevelID == levelID+1 && t.Status == models.TaskLocked
			},
			func(t *models.Task) { t.Status = models.TaskAssigned }); err != nil {
			return fmt.Errorf("unlock next task: %w", err)
		}
	}
	return nil
}

func (s *progressService) Reject(_ context.Context, taskID string) error {
	task, err := s.findTask(taskID)
	if err != nil {
		return err
	}
	if task.Status != models.TaskSubmitted {
		return fmt.Errorf("reject task %s in state %s: %w", taskID, task.Status, apperrors.ErrInvalidTransition)
	}

	if _, err := s.store.ReplaceTask(
		func(t *models.Task) bool { return t.ID == taskID },
		func(t *models.Task) { t.Status = models.TaskRejected }); err != nil {
		return fmt.Errorf("persist rejection: %w", err)
	}

	s.logger.Info("task rejected", zap.String("task_id", taskID), zap.Int("level", task.LevelID))
	return nil
}

func (s *progressService) RoadmapFor(_ context.Context, userID string) ([]models.RoadmapLevel, error) {
	levels, err := s.store.Roadmap(userID)
	if err != nil {
		return nil, fmt.Errorf("load roadmap: %w", err)
	}
	if levels == nil {
		return nil, fmt.Errorf("roadmap for %s: %w", userID, apperrors.ErrNotFound)
	}
	return levels, nil
}
