package store

import "sync/atomic"

// Holder publishes the current Store to concurrent readers. A reload swaps
// in a new Store; readers keep whatever snapshot they already loaded.
type Holder struct {
	current atomic.Pointer[Store]
}

// NewHolder returns a Holder initialised with s.
func NewHolder(s *Store) *Holder {
	h := &Holder{}
	h.current.Store(s)

	return h
}

// Load returns the current store.
func (h *Holder) Load() *Store {
	return h.current.Load()
}

// Swap replaces the current store and returns the previous one.
func (h *Holder) Swap(s *Store) *Store {
	return h.current.Swap(s)
}
