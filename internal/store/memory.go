package store

import (
	"context"
	"sync"
)

// Memory is a simple in-memory store used by tests.
type Memory struct {
	mu  sync.Mutex
	raw []byte
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{}
}

// Load returns a copy of the stored blob, or (nil, nil) before the first save.
func (m *Memory) Load(ctx context.Context) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.raw == nil {
		return nil, nil
	}
	out := make([]byte, len(m.raw))
	copy(out, m.raw)
	return out, nil
}

// Save replaces the stored blob.
func (m *Memory) Save(ctx context.Context, raw []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.raw = make([]byte, len(raw))
	copy(m.raw, raw)
	return nil
}
