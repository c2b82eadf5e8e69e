package storage

import (
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/seedstage-inc/seedstage-engine/pkg/models"
)

// Collection keys. Each collection is a flat JSON list (or object) stored
// under a single key; every write re-serializes the whole collection.
const (
	keyUsers           = "users"
	keyStartups        = "startups"
	keyTasks           = "tasks"
	keyPartners        = "partners"
	keyServiceRequests = "service_requests"
	keyProgramRatings  = "program_ratings"
	keySession         = "session"
	roadmapKeyPrefix   = "roadmap:"
)

// Store is the explicit entity-store handle injected into the workflow
// services. There is deliberately no package-level singleton.
//
// The write contract is whole-collection rewrite: no partial update of a
// single record exists beyond "map over the list, replace the matching
// item", and there are no transactions across keys. Callers performing
// multiple related writes must tolerate partial completion.
type Store struct {
	medium Medium
	logger *zap.Logger
}

// New creates a Store over the given medium.
func New(medium Medium, logger *zap.Logger) *Store {
	return &Store{
		medium: medium,
		logger: logger.Named("storage"),
	}
}

func getList[T any](s *Store, key string) ([]T, error) {
	raw, found, err := s.medium.Get(key)
	if err != nil {
		return nil, err
	}
	if !found || len(raw) == 0 {
		return nil, nil
	}
	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("decode %q: %w", key, err)
	}
	return items, nil
}

func putList[T any](s *Store, key string, items []T) error {
	if items == nil {
		items = []T{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode %q: %w", key, err)
	}
	return s.medium.Put(key, raw)
}

func appendItem[T any](s *Store, key string, item T) error {
	items, err := getList[T](s, key)
	if err != nil {
		return err
	}
	return putList(s, key, append(items, item))
}

// replaceWhere maps over the list and mutates every matching item in place,
// then writes the whole list back. Returns how many items matched. Nothing
// is written when no item matches.
func replaceWhere[T any](s *Store, key string, match func(*T) bool, mutate func(*T)) (int, error) {
	items, err := getList[T](s, key)
	if err != nil {
		return 0, err
	}
	n := 0
	for i := range items {
		if match(&items[i]) {
			mutate(&items[i])
			n++
		}
	}
	if n == 0 {
		return 0, nil
	}
	if err := putList(s, key, items); err != nil {
		return 0, err
	}
	return n, nil
}

// Users returns all user records in insertion order.
func (s *Store) Users() ([]models.User, error) { return getList[models.User](s, keyUsers) }

// AppendUser appends a user record.
func (s *Store) AppendUser(u models.User) error { return appendItem(s, keyUsers, u) }

// ReplaceUser mutates every user matched by the predicate and reports how
// many matched.
func (s *Store) ReplaceUser(match func(*models.User) bool, mutate func(*models.User)) (int, error) {
	return replaceWhere(s, keyUsers, match, mutate)
}

// Startups returns all startup records in insertion order.
func (s *Store) Startups() ([]models.Startup, error) { return getList[models.Startup](s, keyStartups) }

// AppendStartup appends a startup record.
func (s *Store) AppendStartup(st models.Startup) error { return appendItem(s, keyStartups, st) }

// ReplaceStartup mutates every startup matched by the predicate.
func (s *Store) ReplaceStartup(match func(*models.Startup) bool, mutate func(*models.Startup)) (int, error) {
	return replaceWhere(s, keyStartups, match, mutate)
}

// Tasks returns all task records in insertion order.
func (s *Store) Tasks() ([]models.Task, error) { return getList[models.Task](s, keyTasks) }

// AppendTask appends a task record.
func (s *Store) AppendTask(t models.Task) error { return appendItem(s, keyTasks, t) }

// AppendTasks appends several tasks in one collection rewrite.
func (s *Store) AppendTasks(tasks []models.Task) error {
	existing, err := getList[models.Task](s, keyTasks)
	if err != nil {
		return err
	}
	return putList(s, keyTasks, append(existing, tasks...))
}

// ReplaceTask mutates every task matched by the predicate.
func (s *Store) ReplaceTask(match func(*models.Task) bool, mutate func(*models.Task)) (int, error) {
	return replaceWhere(s, keyTasks, match, mutate)
}

// Partners returns all partner profiles in insertion order.
func (s *Store) Partners() ([]models.PartnerProfile, error) {
	return getList[models.PartnerProfile](s, keyPartners)
}

// UpsertPartner replaces the profile with the same owner id in place, or
// appends when none exists.
func (s *Store) UpsertPartner(p models.PartnerProfile) error {
	n, err := replaceWhere(s, keyPartners,
		func(existing *models.PartnerProfile) bool { return existing.OwnerID == p.OwnerID },
		func(existing *models.PartnerProfile) { *existing = p })
	if err != nil {
		return err
	}
	if n == 0 {
		return appendItem(s, keyPartners, p)
	}
	return nil
}

// ServiceRequests returns all service requests in insertion order.
func (s *Store) ServiceRequests() ([]models.ServiceRequest, error) {
	return getList[models.ServiceRequest](s, keyServiceRequests)
}

// AppendServiceRequest appends a service request.
func (s *Store) AppendServiceRequest(r models.ServiceRequest) error {
	return appendItem(s, keyServiceRequests, r)
}

// ProgramRatings returns the uid → rating map.
func (s *Store) ProgramRatings() (map[string]models.ProgramRating, error) {
	raw, found, err := s.medium.Get(keyProgramRatings)
	if err != nil {
		return nil, err
	}
	ratings := make(map[string]models.ProgramRating)
	if !found || len(raw) == 0 {
		return ratings, nil
	}
	if err := json.Unmarshal(raw, &ratings); err != nil {
		return nil, fmt.Errorf("decode %q: %w", keyProgramRatings, err)
	}
	return ratings, nil
}

// PutProgramRating upserts one user's rating of the program.
func (s *Store) PutProgramRating(userID string, rating models.ProgramRating) error {
	ratings, err := s.ProgramRatings()
	if err != nil {
		return err
	}
	ratings[userID] = rating
	raw, err := json.Marshal(ratings)
	if err != nil {
		return fmt.Errorf("encode %q: %w", keyProgramRatings, err)
	}
	return s.medium.Put(keyProgramRatings, raw)
}

// Roadmap returns the per-user roadmap snapshot, or nil when none exists.
func (s *Store) Roadmap(userID string) ([]models.RoadmapLevel, error) {
	return getList[models.RoadmapLevel](s, roadmapKeyPrefix+userID)
}

// SaveRoadmap overwrites the per-user roadmap snapshot.
func (s *Store) SaveRoadmap(userID string, levels []models.RoadmapLevel) error {
	return putList(s, roadmapKeyPrefix+userID, levels)
}
