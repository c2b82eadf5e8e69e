package storage

import (
	"encoding/json"
	"fmt"

	"github.com/seedstage-inc/seedstage-engine/pkg/models"
)

// StartSession stores the session pointer, replacing any prior one. The
// pointer is the sole source of truth for "who is signed in".
func (s *Store) StartSession(userID, projectID string) error {
	raw, err := json.Marshal(models.Session{UserID: userID, ProjectID: projectID})
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	return s.medium.Put(keySession, raw)
}

// CurrentSession returns the session pointer, or false when nobody is
// signed in.
func (s *Store) CurrentSession() (models.Session, bool, error) {
	raw, found, err := s.medium.Get(keySession)
	if err != nil {
		return models.Session{}, false, err
	}
	if !found || len(raw) == 0 {
		return models.Session{}, false, nil
	}
	var sess models.Session
	if err := json.Unmarshal(raw, &sess); err != nil {
		return models.Session{}, false, fmt.Errorf("decode session: %w", err)
	}
	return sess, true, nil
}

// EndSession clears the session pointer. Ending a missing session is a
// no-op.
func (s *Store) EndSession() error {
	return s.medium.Delete(keySession)
}
