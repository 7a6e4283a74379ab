package catalog

import "sync"

// MemoryStore implements Store using an in-memory map (not persistent). It
// backs catalog-less runs and tests.
type MemoryStore struct {
	runs map[string]*Run
	mu   sync.RWMutex
}

// NewMemoryStore creates a new in-memory run store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		runs: make(map[string]*Run),
	}
}

func (m *MemoryStore) SaveRun(run *Run) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	stamp(run)

	// Copy to prevent external modifications
	runCopy := *run
	m.runs[run.ID] = &runCopy

	return nil
}

func (m *MemoryStore) LoadRuns() (map[string]*Run, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	runs := make(map[string]*Run, len(m.runs))
	for id, run := range m.runs {
		if !IsCompatibleVersion(run.Tool) {
			continue
		}
		runCopy := *run
		runs[id] = &runCopy
	}

	return runs, nil
}

func (m *MemoryStore) DeleteRun(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.runs, id)

	return nil
}

// Close is a no-op for the memory store
func (m *MemoryStore) Close() error {
	return nil
}
