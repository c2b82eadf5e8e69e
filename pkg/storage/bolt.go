package storage

import (
	"errors"
	"fmt"
	"os"

	bolt "go.etcd.io/bbolt"

	"github.com/seedstage-inc/seedstage-engine/pkg/apperrors"
)

var boltBucket = []byte("seedstage")

// BoltMedium is a Medium backed by a single-file bbolt database. It is the
// durable stand-in for the host key-value store: one bucket, one key per
// collection.
type BoltMedium struct {
	db *bolt.DB
}

// OpenBolt opens (or creates) the database file at path.
func OpenBolt(path string) (*BoltMedium, error) {
	db, err := bolt.Open(path, 0o600, nil)
	if err != nil {
		return nil, fmt.Errorf("open store file: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(boltBucket)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create bucket: %w", err)
	}

	return &BoltMedium{db: db}, nil
}

// Get implements Medium.
func (m *BoltMedium) Get(key string) ([]byte, bool, error) {
	var out []byte
	var found bool

	err := m.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(boltBucket).Get([]byte(key))
		if v == nil {
			return nil
		}
		found = true
		out = make([]byte, len(v))
		copy(out, v)
		return nil
	})
	if err != nil {
		return nil, false, fmt.Errorf("get %q: %w", key, err)
	}
	return out, found, nil
}

// Put implements Medium. Writes that fail because the value is too large or
// the disk is full surface as ErrCapacityExceeded.
func (m *BoltMedium) Put(key string, value []byte) error {
	err := m.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(boltBucket).Put([]byte(key), value)
	})
	if err != nil {
		if errors.Is(err, bolt.ErrKeyTooLarge) || errors.Is(err, bolt.ErrValueTooLarge) || isNoSpace(err) {
			return fmt.Errorf("put %q: %w", key, apperrors.ErrCapacityExceeded)
		}
		return fmt.Errorf("put %q: %w", key, err)
	}
	return nil
}

// Delete implements Medium.
func (m *BoltMedium) Delete(key string) error {
	err := m.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(boltBucket).Delete([]byte(key))
	})
	if err != nil {
		return fmt.Errorf("delete %q: %w", key, err)
	}
	return nil
}

// Close releases the underlying file.
func (m *BoltMedium) Close() error {
	return m.db.Close()
}

func isNoSpace(err error) bool {
	var pathErr *os.PathError
	if errors.As(err, &pathErr) {
		return pathErr.Err.Error() == "no space left on device"
	}
	return false
}

var _ Medium = (*BoltMedium)(nil)
