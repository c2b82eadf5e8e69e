package storage

import (
	"fmt"

	"github.com/seedstage-inc/seedstage-engine/pkg/apperrors"
)

// MemoryMedium is an in-memory Medium for tests and ephemeral sessions.
// A non-zero Quota caps the total stored bytes, letting tests exercise the
// capacity-exceeded path the way a browser key-value store would.
type MemoryMedium struct {
	data  map[string][]byte
	quota int
}

// NewMemoryMedium creates an unbounded in-memory medium.
func NewMemoryMedium() *MemoryMedium {
	return &MemoryMedium{data: make(map[string][]byte)}
}

// NewMemoryMediumWithQuota creates a medium that rejects writes once total
// stored bytes would exceed quota.
func NewMemoryMediumWithQuota(quota int) *MemoryMedium {
	return &MemoryMedium{data: make(map[string][]byte), quota: quota}
}

// Get implements Medium.
func (m *MemoryMedium) Get(key string) ([]byte, bool, error) {
	v, ok := m.data[key]
	if !ok {
		return nil, false, nil
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, true, nil
}

// Put implements Medium.
func (m *MemoryMedium) Put(key string, value []byte) error {
	if m.quota > 0 {
		total := len(value)
		for k, v := range m.data {
			if k == key {
				continue
			}
			total += len(v)
		}
		if total > m.quota {
			return fmt.Errorf("put %q: %w", key, apperrors.ErrCapacityExceeded)
		}
	}
	stored := make([]byte, len(value))
	copy(stored, value)
	m.data[key] = stored
	return nil
}

// Delete implements Medium.
func (m *MemoryMedium) Delete(key string) error {
	delete(m.data, key)
	return nil
}

var _ Medium = (*MemoryMedium)(nil)
