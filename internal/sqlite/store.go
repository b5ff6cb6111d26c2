package sqlite

import (
	"database/sql"
	"fmt"
	"io"
	"os"
	"sync"

	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/larder/pkg/types"
)

// Store implements types.Store on one SQLite file. A Store holds at most one
// live connection; Open and Create acquire it, Close releases it exactly
// once, and every other transition fails without side effects.
type Store struct {
	mu        sync.Mutex
	path      string
	db        *sql.DB
	version   string
	verbosity int
	chatter   io.Writer
	confirm   types.ConfirmFunc
}

// NewStore creates a closed Store with the given configuration.
// A nil Confirm defaults to deny-all; a nil Chatter discards traces.
func NewStore(config types.Config) (*Store, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	confirm := config.Confirm
	if confirm == nil {
		confirm = types.ConfirmDeny
	}
	chatter := config.Chatter
	if chatter == nil {
		chatter = io.Discard
	}
	return &Store{
		version:   types.VersionUnset,
		verbosity: config.Verbosity,
		chatter:   chatter,
		confirm:   confirm,
	}, nil
}

// engineErr wraps an underlying engine failure, preserving its message while
// keeping errors.Is(err, types.ErrEngine) matching.
func engineErr(op string, err error) error {
	return fmt.Errorf("%s: %w: %v", op, types.ErrEngine, err)
}

// chat echoes an informational trace when the verbosity level admits it.
// Persisted history is never affected.
func (s *Store) chat(level int, format string, args ...any) {
	if s.verbosity >= level {
		fmt.Fprintf(s.chatter, format+"\n", args...)
	}
}

// Open connects to an existing store file and caches its version.
func (s *Store) Open(path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db != nil {
		return types.ErrAlreadyOpen
	}
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return fmt.Errorf("%w: %s", types.ErrNotFound, path)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return engineErr(fmt.Sprintf("open store %s", path), err)
	}

	version, err := resolveVersion(db, path)
	if err != nil {
		db.Close()
		return err
	}

	s.db = db
	s.path = path
	s.version = version
	s.chat(1, "store %s (version %s) opened", path, version)
	return nil
}

// Create builds a new store file at path and leaves the store open. An
// existing file consults the confirmation gate unless force is set; a
// declined confirmation is a no-op reported as (false, nil).
func (s *Store) Create(path, version string, force bool) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db != nil {
		return false, types.ErrAlreadyOpen
	}
	if version == "" {
		return false, types.ErrVersionEmpty
	}

	if _, err := os.Stat(path); err == nil {
		if !force && !s.confirm(path, types.EntityStoreFile) {
			s.chat(1, "create store %s cancelled", path)
			return false, nil
		}
		s.chat(1, "deleting store file %s", path)
		if err := os.Remove(path); err != nil {
			return false, fmt.Errorf("remove existing store %s: %w", path, err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return false, engineErr(fmt.Sprintf("create store %s", path), err)
	}

	abort := func() {
		db.Close()
		os.Remove(path)
		s.db = nil
		s.path = ""
	}

	if _, err := db.Exec(createHistoryTable); err != nil {
		abort()
		return false, engineErr(fmt.Sprintf("create history table in %s", path), err)
	}
	if _, err := db.Exec(idxHistoryType); err != nil {
		abort()
		return false, engineErr(fmt.Sprintf("index history table in %s", path), err)
	}

	s.db = db
	s.path = path

	if err := s.appendLocked(types.KindMessage, "file created"); err != nil {
		abort()
		return false, err
	}
	if err := s.appendLocked(types.KindVersion, version); err != nil {
		abort()
		return false, err
	}

	s.version = version
	s.chat(1, "store %s (version %s) created", path, version)
	return true, nil
}

// Close releases the connection and resets the cached version.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return types.ErrNotOpen
	}
	if err := s.db.Close(); err != nil {
		return engineErr(fmt.Sprintf("close store %s", s.path), err)
	}

	s.chat(1, "store %s closed", s.path)
	s.db = nil
	s.path = ""
	s.version = types.VersionUnset
	return nil
}

// Path returns the backing file path, or "" when closed.
func (s *Store) Path() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.path
}

// Version returns the cached version, or types.VersionUnset when closed.
func (s *Store) Version() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.version
}

// SetVerbosity sets the trace level for subsequent operations.
func (s *Store) SetVerbosity(level int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.verbosity = level
}
