package state

import (
	"sort"
	"time"
)

// StateVersion is the schema version for state file migration
const StateVersion = 1

// RunState records the outcome of the most recent generation run of a project
type RunState struct {
	Version int                  `json:"version"`
	Project string               `json:"project"`
	LastRun time.Time            `json:"last_run"`
	Lists   map[string]ListState `json:"lists"`
}

// ListState records the last generated manifest of one list
type ListState struct {
	Task        string    `json:"task"`
	OutputPath  string    `json:"output_path"`
	Digest      string    `json:"digest"`
	Entries     int       `json:"entries"`
	Changed     bool      `json:"changed"`

	// GeneratedAt is when the manifest content was last written
	GeneratedAt time.Time `json:"generated_at"`
}

// NewRunState creates a new empty run state
func NewRunState(project string) *RunState {
	return &RunState{
		Version: StateVersion,
		Project: project,
		Lists:   make(map[string]ListState),
	}
}

// ListCount returns the number of lists in the state
func (s *RunState) ListCount() int {
	return len(s.Lists)
}

// HasList checks if a list exists in the state
func (s *RunState) HasList(name string) bool {
	_, exists := s.Lists[name]
	return exists
}

// GetList returns a list state by name
func (s *RunState) GetList(name string) (ListState, bool) {
	list, exists := s.Lists[name]
	return list, exists
}

// SetList updates or adds a list to the state
func (s *RunState) SetList(name string, list ListState) {
	s.Lists[name] = list
}

// RemoveList removes a list from the state
func (s *RunState) RemoveList(name string) {
	delete(s.Lists, name)
}

// Names returns the recorded list names in ascending order
func (s *RunState) Names() []string {
	names := make([]string, 0, len(s.Lists))
	for name := range s.Lists {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Clone returns a copy that shares nothing with s
func (s *RunState) Clone() *RunState {
	c := *s
	c.Lists = make(map[string]ListState, len(s.Lists))
	for name, list := range s.Lists {
		c.Lists[name] = list
	}
	return &c
}
