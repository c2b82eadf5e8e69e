// Package storage implements the engine's entity store: named collections
// serialized as JSON lists under single keys in a local key-value medium.
package storage

// Medium is the durable key-value layer under the store. Implementations
// must report write failures caused by capacity limits as
// apperrors.ErrCapacityExceeded (wrapped or bare) instead of panicking, so
// callers can degrade gracefully.
type Medium interface {
	// Get returns the value for key and whether the key exists.
	Get(key string) ([]byte, bool, error)

	// Put stores value under key, replacing any prior value.
	Put(key string, value []byte) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(key string) error
}
