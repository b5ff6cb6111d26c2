package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mesh-intelligence/larder/pkg/types"
)

// newEntryID generates a UUID v7 string for a history row.
func newEntryID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}

// appendLocked writes one history row with the current wall-clock timestamp.
// Each call is its own implicit transaction, so a crash between calls never
// loses a prior entry. The caller must hold s.mu.
func (s *Store) appendLocked(kind, event string) error {
	if s.db == nil {
		return types.ErrNotOpen
	}
	_, err := s.db.Exec(
		"INSERT INTO history (entry_id, time, type, event) VALUES (?, ?, ?, ?)",
		newEntryID(), time.Now().Unix(), kind, event)
	if err != nil {
		return engineErr(fmt.Sprintf("append %s to history in %s", kind, s.path), err)
	}
	return nil
}

// LogMessage appends a message entry to the history log.
func (s *Store) LogMessage(text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.appendLocked(types.KindMessage, text)
}

// LogWarning appends a warning entry to the history log.
func (s *Store) LogWarning(text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.appendLocked(types.KindWarning, text)
}

// LogError appends an error entry to the history log.
func (s *Store) LogError(text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.appendLocked(types.KindError, text)
}

// LogVersion appends a version entry and refreshes the cached version, so
// Version() never drifts from the log-derived ResolveVersion().
func (s *Store) LogVersion(version string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.appendLocked(types.KindVersion, version); err != nil {
		return err
	}
	s.version = version
	return nil
}

// ResolveVersion returns the payload of the most recent version entry.
func (s *Store) ResolveVersion() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.db == nil {
		return "", types.ErrNotOpen
	}
	return resolveVersion(s.db, s.path)
}

// resolveVersion selects the most recent version entry, ordered by timestamp
// then insertion order so same-second stamps resolve to the later insert.
func resolveVersion(db *sql.DB, path string) (string, error) {
	var event string
	err := db.QueryRow(
		"SELECT event FROM history WHERE type = ? ORDER BY time DESC, seq DESC LIMIT 1",
		types.KindVersion).Scan(&event)
	if errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("%w in %s", types.ErrNoVersion, path)
	}
	if err != nil {
		return "", engineErr(fmt.Sprintf("resolve version of %s", path), err)
	}
	return event, nil
}

// History returns every history entry in insertion order.
func (s *Store) History() ([]types.HistoryEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.db == nil {
		return nil, types.ErrNotOpen
	}

	rows, err := s.db.Query(
		"SELECT seq, entry_id, time, type, event FROM history ORDER BY time, seq")
	if err != nil {
		return nil, engineErr(fmt.Sprintf("read history of %s", s.path), err)
	}
	defer rows.Close()

	var entries []types.HistoryEntry
	for rows.Next() {
		var e types.HistoryEntry
		var unix int64
		if err := rows.Scan(&e.Seq, &e.EntryID, &unix, &e.Kind, &e.Event); err != nil {
			return nil, engineErr("scan history entry", err)
		}
		e.Time = time.Unix(unix, 0).UTC()
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, engineErr(fmt.Sprintf("read history of %s", s.path), err)
	}
	return entries, nil
}
