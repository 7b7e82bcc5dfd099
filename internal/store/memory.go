package store

import (
	"sync"

	"github.com/theirongolddev/dledger/internal/model"
)

// Memory is an in-process Store holding the encoded payload, so it
// exercises the same codec as the on-disk backends.
type Memory struct {
	mu    sync.Mutex
	data  []byte
	saves int
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{}
}

// Load implements Store.
func (m *Memory) Load() ([]model.DebtRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return Decode(m.data), nil
}

// Save implements Store.
func (m *Memory) Save(records []model.DebtRecord) error {
	data, err := Encode(records)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = data
	m.saves++
	return nil
}

// Close implements Store.
func (m *Memory) Close() error { return nil }

// Raw returns the stored payload.
func (m *Memory) Raw() []byte {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]byte(nil), m.data...)
}

// SetRaw replaces the stored payload verbatim.
func (m *Memory) SetRaw(data []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = append([]byte(nil), data...)
}

// Saves returns how many times Save has been called.
func (m *Memory) Saves() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saves
}
