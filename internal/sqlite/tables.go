package sqlite

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/mesh-intelligence/larder/pkg/types"
)

// AddTable creates table name with the given column spec. When the table
// already exists the confirmation gate decides whether to replace it; the
// replace runs as one transaction so engine failure leaves the prior table
// intact.
func (s *Store) AddTable(name string, columns []types.Column, force bool) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return false, types.ErrNotOpen
	}
	if err := validateTableName(name); err != nil {
		return false, err
	}

	if !force {
		exists, err := s.tableExistsLocked(name)
		if err != nil {
			return false, err
		}
		if exists && !s.confirm(name, types.EntityTable) {
			s.chat(1, "add table %s cancelled", name)
			return false, nil
		}
	}

	tx, err := s.db.Begin()
	if err != nil {
		return false, engineErr(fmt.Sprintf("begin table replace for %s", name), err)
	}
	if _, err := tx.Exec("DROP TABLE IF EXISTS " + quoteIdent(name)); err != nil {
		tx.Rollback()
		return false, engineErr(fmt.Sprintf("drop table %s in %s", name, s.path), err)
	}
	if _, err := tx.Exec(createTableSQL(name, columns)); err != nil {
		tx.Rollback()
		return false, engineErr(fmt.Sprintf("create table %s in %s", name, s.path), err)
	}
	if err := tx.Commit(); err != nil {
		tx.Rollback()
		return false, engineErr(fmt.Sprintf("commit table %s in %s", name, s.path), err)
	}

	s.chat(1, "table %s added to %s", name, s.path)
	return true, nil
}

// DropTable removes table name. Dropping a missing table fails with
// ErrTableNotFound; dropping an existing one consults the confirmation gate
// unless force is set.
func (s *Store) DropTable(name string, force bool) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return false, types.ErrNotOpen
	}
	if err := validateTableName(name); err != nil {
		return false, err
	}

	exists, err := s.tableExistsLocked(name)
	if err != nil {
		return false, err
	}
	if !exists {
		return false, fmt.Errorf("%w: %s", types.ErrTableNotFound, name)
	}

	if !force && !s.confirm(name, types.EntityTable) {
		s.chat(1, "drop table %s cancelled", name)
		return false, nil
	}

	if _, err := s.db.Exec("DROP TABLE " + quoteIdent(name)); err != nil {
		return false, engineErr(fmt.Sprintf("drop table %s in %s", name, s.path), err)
	}

	s.chat(1, "table %s dropped from %s", name, s.path)
	return true, nil
}

// Tables lists caller-defined tables, excluding the reserved history table
// and SQLite internals.
func (s *Store) Tables() ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return nil, types.ErrNotOpen
	}

	rows, err := s.db.Query(
		"SELECT name FROM sqlite_master WHERE type = 'table' AND name <> ? AND name NOT LIKE 'sqlite_%' ORDER BY name",
		types.HistoryTable)
	if err != nil {
		return nil, engineErr(fmt.Sprintf("list tables in %s", s.path), err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, engineErr("scan table name", err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, engineErr(fmt.Sprintf("list tables in %s", s.path), err)
	}
	return names, nil
}

// tableExistsLocked reports whether a table exists, using a parameterized
// sqlite_master query. The caller must hold s.mu.
func (s *Store) tableExistsLocked(name string) (bool, error) {
	var found string
	err := s.db.QueryRow(
		"SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?", name).Scan(&found)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	return false, engineErr(fmt.Sprintf("check table %s in %s", name, s.path), err)
}
