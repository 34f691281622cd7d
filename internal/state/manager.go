package state

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sync"
	"time"

	"github.com/gofrs/flock"
	"github.com/quantmind-br/resourcelist-go/internal/utils"
	"github.com/spf13/afero"
)

const StateFileName = ".resourcelist-state.json"

// lockRetryDelay is the polling interval while waiting for the state lock
const lockRetryDelay = 50 * time.Millisecond

type Manager struct {
	fs       afero.Fs
	baseDir  string
	state    *RunState
	mu       sync.RWMutex
	dirty    bool
	logger   *utils.Logger
	disabled bool
	seen     sync.Map
	now      func() time.Time
}

type ManagerOptions struct {
	Fs       afero.Fs
	BaseDir  string
	Project  string
	Logger   *utils.Logger
	Disabled bool
}

func NewManager(opts ManagerOptions) *Manager {
	fsys := opts.Fs
	if fsys == nil {
		fsys = afero.NewOsFs()
	}
	logger := opts.Logger
	if logger == nil {
		logger = utils.NewNopLogger()
	}
	return &Manager{
		fs:       fsys,
		baseDir:  opts.BaseDir,
		logger:   logger,
		disabled: opts.Disabled,
		state:    NewRunState(opts.Project),
		now:      time.Now,
	}
}

// Load reads the state file. On ErrVersionMismatch or ErrStateCorrupted the
// manager keeps an empty state and the next Save rebuilds the file.
func (m *Manager) Load(ctx context.Context) error {
	if m.disabled {
		return nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	path := m.Path()
	data, err := afero.ReadFile(m.fs, path)
	if errors.Is(err, fs.ErrNotExist) {
		return ErrStateNotFound
	}
	if err != nil {
		return err
	}

	var state RunState
	if err := json.Unmarshal(data, &state); err != nil {
		return ErrStateCorrupted
	}

	if state.Version != StateVersion {
		m.logger.Warn().
			Int("file_version", state.Version).
			Int("expected_version", StateVersion).
			Msg("State version mismatch, will rebuild state")
		return ErrVersionMismatch
	}

	if state.Lists == nil {
		state.Lists = make(map[string]ListState)
	}
	if m.state.Project != "" {
		state.Project = m.state.Project
	}
	m.state = &state
	return nil
}

// Save writes the state file if anything changed since the last Load or
// Save. Concurrent runs against the same build directory are serialized by
// an exclusive lock on the state file.
func (m *Manager) Save(ctx context.Context) error {
	if m.disabled {
		return nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.dirty {
		return nil
	}

	path := m.Path()
	if err := utils.EnsureDir(m.fs, path); err != nil {
		return err
	}

	unlock, err := m.lock(ctx, path)
	if err != nil {
		return err
	}
	defer unlock()

	m.state.LastRun = m.now()

	data, err := json.MarshalIndent(m.state, "", "  ")
	if err != nil {
		return err
	}

	tmp := path + ".tmp"
	if err := afero.WriteFile(m.fs, tmp, data, 0644); err != nil {
		return err
	}
	if err := m.fs.Rename(tmp, path); err != nil {
		_ = m.fs.Remove(tmp)
		return err
	}

	m.dirty = false
	m.logger.Debug().
		Int("lists", len(m.state.Lists)).
		Str("path", path).
		Msg("State saved")
	return nil
}

// lock takes the file lock next to path. Only the OS filesystem can be
// locked; other afero backends are process-local and need none.
func (m *Manager) lock(ctx context.Context, path string) (func(), error) {
	if _, ok := m.fs.(*afero.OsFs); !ok {
		return func() {}, nil
	}

	fl := flock.New(path + ".lock")
	locked, err := fl.TryLockContext(ctx, lockRetryDelay)
	if err != nil {
		return nil, fmt.Errorf("lock state file: %w", err)
	}
	if !locked {
		return nil, ErrLocked
	}
	return func() { _ = fl.Unlock() }, nil
}

// Update records the latest generation of a list and marks it seen
func (m *Manager) Update(name string, list ListState) {
	m.MarkSeen(name)
	if m.disabled {
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.state.Lists[name] = list
	m.dirty = true
}

// MarkSeen records that a list is still defined, so Prune keeps it
func (m *Manager) MarkSeen(name string) {
	m.seen.Store(name, true)
}

// Stale returns the recorded lists that were not marked seen
func (m *Manager) Stale() []string {
	if m.disabled {
		return nil
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	var stale []string
	for _, name := range m.state.Names() {
		if _, seen := m.seen.Load(name); !seen {
			stale = append(stale, name)
		}
	}
	return stale
}

// Prune removes every list that was not marked seen and returns their names
func (m *Manager) Prune() []string {
	stale := m.Stale()
	if len(stale) == 0 {
		return nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for _, name := range stale {
		m.state.RemoveList(name)
	}
	m.dirty = true
	return stale
}

// Get returns the recorded state of one list
func (m *Manager) Get(name string) (ListState, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.state.GetList(name)
}

// Snapshot returns a copy of the current state
func (m *Manager) Snapshot() *RunState {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.state.Clone()
}

func (m *Manager) IsDisabled() bool {
	return m.disabled
}

// Path returns the location of the state file
func (m *Manager) Path() string {
	return filepath.Join(m.baseDir, StateFileName)
}
