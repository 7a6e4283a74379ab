// Package catalog records completed generation runs in a local manifest so
// datasets can be listed, forgotten, and cross-checked after the fact.
package catalog

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"golang.org/x/mod/semver"
)

// Version is the tool version stamped into every recorded run
const Version = "v0.1.0"

// Run is one recorded generation run
type Run struct {
	ID         string    `json:"id"`
	Path       string    `json:"path"`
	Records    int64     `json:"records"`
	Bytes      int64     `json:"bytes"`
	Checksum   string    `json:"checksum"` // XXH3 of the file, 16 hex digits
	Seed       uint64    `json:"seed"`
	Tool       string    `json:"tool"` // version that wrote the entry
	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at"`
}

// Duration returns the wall-clock time the run took
func (r *Run) Duration() time.Duration {
	return r.FinishedAt.Sub(r.StartedAt)
}

// Store defines the interface for persisting runs
type Store interface {
	SaveRun(run *Run) error
	LoadRuns() (map[string]*Run, error)
	DeleteRun(id string) error

	// Cleanup
	Close() error
}

// IsCompatibleVersion checks if a recorded entry can be used by this build.
// Compatibility rules:
// - Major version must match exactly.
// - Minor and patch versions can differ.
func IsCompatibleVersion(entryVersion string) bool {
	if !semver.IsValid(entryVersion) {
		return false
	}
	return semver.Major(entryVersion) == semver.Major(Version)
}

// Sorted returns runs ordered newest first
func Sorted(runs map[string]*Run) []*Run {
	out := make([]*Run, 0, len(runs))
	for _, run := range runs {
		out = append(out, run)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].StartedAt.After(out[j].StartedAt)
	})
	return out
}

// stamp fills defaults on a run before it is persisted
func stamp(run *Run) {
	if run.Tool == "" {
		run.Tool = Version
	}
}

func encodeJSON(v interface{}) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to encode JSON: %w", err)
	}
	return data, nil
}

func decodeJSON(data []byte, v interface{}) error {
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to decode JSON: %w", err)
	}
	return nil
}
