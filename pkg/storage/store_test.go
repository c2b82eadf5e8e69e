package storage

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/seedstage-inc/seedstage-engine/pkg/apperrors"
	"github.com/seedstage-inc/seedstage-engine/pkg/models"
)

func newTestStore() *Store {
	return New(NewMemoryMedium(), zap.NewNop())
}

func TestStore_AppendAndAll(t *testing.T) {
	s := newTestStore()

	users, err := s.Users()
	require.NoError(t, err)
	assert.Empty(t, users)

	require.NoError(t, s.AppendUser(models.User{ID: "u1", Email: "a@x.io"}))
	require.NoError(t, s.AppendUser(models.User{ID: "u2", Email: "b@x.io"}))

	users, err = s.Users()
	require.NoError(t, err)
	require.Len(t, users, 2)
	// Insertion order is preserved; login relies on first-match-wins.
	assert.Equal(t, "u1", users[0].ID)
	assert.Equal(t, "u2", users[1].ID)
}

func TestStore_ReplaceWhere(t *testing.T) {
	s := newTestStore()
	require.NoError(t, s.AppendTask(models.Task{ID: "t1", Status: models.TaskAssigned}))
	require.NoError(t, s.AppendTask(models.Task{ID: "t2", Status: models.TaskLocked}))

	n, err := s.ReplaceTask(
		func(task *models.Task) bool { return task.ID == "t1" },
		func(task *models.Task) { task.Status = models.TaskSubmitted })
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	tasks, err := s.Tasks()
	require.NoError(t, err)
	assert.Equal(t, models.TaskSubmitted, tasks[0].Status)
	assert.Equal(t, models.TaskLocked, tasks[1].Status)

	n, err = s.ReplaceTask(
		func(task *models.Task) bool { return task.ID == "missing" },
		func(task *models.Task) { task.Status = models.TaskApproved })
	require.NoError(t, err)
	assert.Zero(t, n, "no match should mean no write and zero count")
}

func TestStore_UpsertPartner(t *testing.T) {
	s := newTestStore()

	require.NoError(t, s.UpsertPartner(models.PartnerProfile{OwnerID: "p1", Name: "First"}))
	require.NoError(t, s.UpsertPartner(models.PartnerProfile{OwnerID: "p2", Name: "Other"}))
	require.NoError(t, s.UpsertPartner(models.PartnerProfile{OwnerID: "p1", Name: "Replaced"}))

	partners, err := s.Partners()
	require.NoError(t, err)
	require.Len(t, partners, 2, "re-registering must replace in place, not append")
	assert.Equal(t, "Replaced", partners[0].Name)
	assert.Equal(t, "p1", partners[0].OwnerID)
}

func TestStore_Session(t *testing.T) {
	s := newTestStore()

	_, ok, err := s.CurrentSession()
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.StartSession("u1", "proj1"))
	sess, ok, err := s.CurrentSession()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "u1", sess.UserID)
	assert.Equal(t, "proj1", sess.ProjectID)

	// A second start replaces the pointer; exactly one session at a time.
	require.NoError(t, s.StartSession("u2", ""))
	sess, ok, err = s.CurrentSession()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "u2", sess.UserID)

	require.NoError(t, s.EndSession())
	_, ok, err = s.CurrentSession()
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.EndSession(), "ending a missing session is a no-op")
}

func TestStore_RoadmapSnapshot(t *testing.T) {
	s := newTestStore()

	levels, err := s.Roadmap("u1")
	require.NoError(t, err)
	assert.Nil(t, levels)

	require.NoError(t, s.SaveRoadmap("u1", []models.RoadmapLevel{
		{LevelID: 1, IsLocked: false},
		{LevelID: 2, IsLocked: true},
	}))

	levels, err = s.Roadmap("u1")
	require.NoError(t, err)
	require.Len(t, levels, 2)
	assert.True(t, levels[1].IsLocked)

	// Snapshots are per user.
	other, err := s.Roadmap("u2")
	require.NoError(t, err)
	assert.Nil(t, other)
}

func TestStore_ProgramRatings(t *testing.T) {
	s := newTestStore()

	require.NoError(t, s.PutProgramRating("u1", models.ProgramRating{Stars: 4}))
	require.NoError(t, s.PutProgramRating("u1", models.ProgramRating{Stars: 5, Comment: "better"}))

	ratings, err := s.ProgramRatings()
	require.NoError(t, err)
	require.Len(t, ratings, 1)
	assert.Equal(t, 5, ratings["u1"].Stars)
}

func TestMemoryMedium_Quota(t *testing.T) {
	m := NewMemoryMediumWithQuota(64)

	require.NoError(t, m.Put("small", []byte("fits")))

	big := make([]byte, 128)
	err := m.Put("blob", big)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrCapacityExceeded),
		"over-quota writes must report ErrCapacityExceeded, got %v", err)
}
