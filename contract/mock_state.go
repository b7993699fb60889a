package contract

// MockState is the in-memory State used by tests and local debug runs. Not
// safe for concurrent use on its own; the engine's lock serializes access in
// practice.
type MockState struct {
	db map[string]string
}

func NewMockState() *MockState {
	return &MockState{
		db: make(map[string]string),
	}
}

func (m *MockState) Set(key, value string) {
	m.db[key] = value
}

func (m *MockState) Get(key string) *string {
	val, ok := m.db[key]
	if !ok {
		return nil
	}
	return &val
}

func (m *MockState) Delete(key string) {
	delete(m.db, key)
}

// Dump clones the full map so tests can diff state across a failing call.
func (m *MockState) Dump() map[string]string {
	out := make(map[string]string, len(m.db))
	for k, v := range m.db {
		out[k] = v
	}
	return out
}
