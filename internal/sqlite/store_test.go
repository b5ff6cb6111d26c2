// Tests for store lifecycle: open, create, close, and the state machine
// between them.
package sqlite

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/mesh-intelligence/larder/pkg/types"
)

// newTestStore returns a closed store with an allow-all gate.
func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(types.Config{Confirm: types.ConfirmAllow})
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}
	return s
}

func TestNewStore_InvalidConfig(t *testing.T) {
	_, err := NewStore(types.Config{Verbosity: -1})
	if err != types.ErrVerbosityInvalid {
		t.Errorf("expected ErrVerbosityInvalid, got %v", err)
	}
}

func TestCreate_FreshPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "larder.db")
	s := newTestStore(t)

	created, err := s.Create(path, "1.0", false)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if !created {
		t.Fatal("Create reported no-op on fresh path")
	}
	defer s.Close()

	if _, err := os.Stat(path); err != nil {
		t.Errorf("store file not created: %v", err)
	}
	if got := s.Path(); got != path {
		t.Errorf("Path() = %q, want %q", got, path)
	}
	if got := s.Version(); got != "1.0" {
		t.Errorf("Version() = %q, want %q", got, "1.0")
	}

	version, err := s.ResolveVersion()
	if err != nil {
		t.Fatalf("ResolveVersion failed: %v", err)
	}
	if version != "1.0" {
		t.Errorf("ResolveVersion() = %q, want %q", version, "1.0")
	}

	// Creation writes the "file created" message before the version stamp.
	entries, err := s.History()
	if err != nil {
		t.Fatalf("History failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("history has %d entries, want 2", len(entries))
	}
	if entries[0].Kind != types.KindMessage || entries[0].Event != "file created" {
		t.Errorf("first entry = %q %q, want message %q", entries[0].Kind, entries[0].Event, "file created")
	}
	if entries[1].Kind != types.KindVersion || entries[1].Event != "1.0" {
		t.Errorf("second entry = %q %q, want version %q", entries[1].Kind, entries[1].Event, "1.0")
	}
}

func TestCreate_EmptyVersion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "larder.db")
	s := newTestStore(t)

	_, err := s.Create(path, "", false)
	if err != types.ErrVersionEmpty {
		t.Errorf("expected ErrVersionEmpty, got %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("store file created despite empty version")
	}
}

func TestCreate_WhileOpen(t *testing.T) {
	dir := t.TempDir()
	s := newTestStore(t)

	if _, err := s.Create(filepath.Join(dir, "a.db"), "1.0", false); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	defer s.Close()

	// The already-open check is unconditional: force does not bypass it.
	for _, force := range []bool{false, true} {
		_, err := s.Create(filepath.Join(dir, "b.db"), "1.0", force)
		if err != types.ErrAlreadyOpen {
			t.Errorf("Create(force=%v) on open store: expected ErrAlreadyOpen, got %v", force, err)
		}
	}
	if _, err := os.Stat(filepath.Join(dir, "b.db")); !os.IsNotExist(err) {
		t.Error("second store file created despite open connection")
	}
}

func TestCreate_DeclinedOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "larder.db")

	s := newTestStore(t)
	if _, err := s.Create(path, "1.0", false); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	var trace bytes.Buffer
	denying, err := NewStore(types.Config{Confirm: types.ConfirmDeny, Chatter: &trace, Verbosity: 1})
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}

	created, err := denying.Create(path, "2.0", false)
	if err != nil {
		t.Fatalf("declined Create returned error: %v", err)
	}
	if created {
		t.Error("declined Create reported success")
	}
	if trace.Len() == 0 {
		t.Error("declined Create emitted no informational trace")
	}

	// The original file survives untouched with its original version.
	if err := denying.Open(path); err != nil {
		t.Fatalf("Open after declined create failed: %v", err)
	}
	defer denying.Close()
	if got := denying.Version(); got != "1.0" {
		t.Errorf("Version() = %q after declined create, want %q", got, "1.0")
	}
}

func TestCreate_ForcedOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "larder.db")

	s, err := NewStore(types.Config{Confirm: types.ConfirmDeny})
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}
	if _, err := s.Create(path, "1.0", false); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	// force bypasses the gate even though the gate would deny.
	created, err := s.Create(path, "2.0", true)
	if err != nil {
		t.Fatalf("forced Create failed: %v", err)
	}
	if !created {
		t.Fatal("forced Create reported no-op")
	}
	defer s.Close()

	version, err := s.ResolveVersion()
	if err != nil {
		t.Fatalf("ResolveVersion failed: %v", err)
	}
	if version != "2.0" {
		t.Errorf("ResolveVersion() = %q after forced overwrite, want %q", version, "2.0")
	}
}

func TestOpen_MissingFile(t *testing.T) {
	s := newTestStore(t)

	err := s.Open(filepath.Join(t.TempDir(), "absent.db"))
	if !errors.Is(err, types.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if got := s.Version(); got != types.VersionUnset {
		t.Errorf("Version() = %q after failed open, want unset", got)
	}
}

func TestOpen_Twice(t *testing.T) {
	path := filepath.Join(t.TempDir(), "larder.db")
	s := newTestStore(t)

	if _, err := s.Create(path, "1.0", false); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	defer s.Close()

	if err := s.Open(path); err != types.ErrAlreadyOpen {
		t.Errorf("expected ErrAlreadyOpen, got %v", err)
	}
}

func TestOpen_Reopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "larder.db")
	s := newTestStore(t)

	if _, err := s.Create(path, "1.0", false); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if got := s.Version(); got != types.VersionUnset {
		t.Errorf("Version() = %q after close, want unset", got)
	}

	if err := s.Open(path); err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer s.Close()
	if got := s.Version(); got != "1.0" {
		t.Errorf("Version() = %q after reopen, want %q", got, "1.0")
	}
}

func TestOpen_NoVersionRecorded(t *testing.T) {
	path := filepath.Join(t.TempDir(), "larder.db")
	s := newTestStore(t)

	if _, err := s.Create(path, "1.0", false); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	// Strip the version rows so the log records no version at all.
	if _, err := s.db.Exec("DELETE FROM history WHERE type = ?", types.KindVersion); err != nil {
		t.Fatalf("delete version rows: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	err := s.Open(path)
	if !errors.Is(err, types.ErrNoVersion) {
		t.Errorf("expected ErrNoVersion, got %v", err)
	}
	// The failed open leaves the store closed.
	if err := s.Close(); err != types.ErrNotOpen {
		t.Errorf("expected ErrNotOpen after failed open, got %v", err)
	}
}

func TestClose_NeverOpened(t *testing.T) {
	s := newTestStore(t)
	if err := s.Close(); err != types.ErrNotOpen {
		t.Errorf("expected ErrNotOpen, got %v", err)
	}
}

func TestClose_Twice(t *testing.T) {
	path := filepath.Join(t.TempDir(), "larder.db")
	s := newTestStore(t)

	if _, err := s.Create(path, "1.0", false); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if err := s.Close(); err != types.ErrNotOpen {
		t.Errorf("expected ErrNotOpen on second close, got %v", err)
	}
}

func TestChatter_VerbosityGate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "larder.db")

	var trace bytes.Buffer
	s, err := NewStore(types.Config{Confirm: types.ConfirmAllow, Chatter: &trace})
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}

	// Verbosity 0 suppresses level-1 traces.
	if _, err := s.Create(path, "1.0", false); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if trace.Len() != 0 {
		t.Errorf("trace written at verbosity 0: %q", trace.String())
	}

	s.SetVerbosity(1)
	if err := s.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if trace.Len() == 0 {
		t.Error("no trace written at verbosity 1")
	}
}
