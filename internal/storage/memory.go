package storage

import "context"

// Ensure Memory implements Store
var _ Store = (*Memory)(nil)

// Memory is a Store kept entirely in process memory. It backs unit tests
// and sessions that degrade to in-memory-only mode when the profile file
// cannot be opened. Nothing survives a restart.
type Memory struct {
	entries map[string][]byte
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{entries: make(map[string][]byte)}
}

// Get retrieves the value for key.
func (m *Memory) Get(_ context.Context, key string) ([]byte, bool, error) {
	value, found := m.entries[key]
	if !found {
		return nil, false, nil
	}
	out := make([]byte, len(value))
	copy(out, value)
	return out, true, nil
}

// Put stores value under key.
func (m *Memory) Put(_ context.Context, key string, value []byte) error {
	stored := make([]byte, len(value))
	copy(stored, value)
	m.entries[key] = stored
	return nil
}

// Delete removes key.
func (m *Memory) Delete(_ context.Context, key string) error {
	delete(m.entries, key)
	return nil
}

// Close is a no-op.
func (m *Memory) Close() error {
	return nil
}
