// Package sqlite implements the SQLite storage backend for larder. It owns
// the lifecycle of one backing file and the append-only history log that
// records lifecycle events and version stamps.
package sqlite

import (
	"regexp"
	"strings"

	"github.com/mesh-intelligence/larder/pkg/types"
)

// History table DDL. The seq column records insertion order so that version
// entries written within the same second still resolve deterministically.
const createHistoryTable = `CREATE TABLE history (
    seq INTEGER PRIMARY KEY AUTOINCREMENT,
    entry_id TEXT NOT NULL,
    time INTEGER NOT NULL,
    type TEXT NOT NULL,
    event TEXT NOT NULL
);`

const idxHistoryType = `CREATE INDEX idx_history_type ON history(type);`

// identPattern matches the table names the store accepts: one plain
// identifier, nothing the engine could misread as SQL.
var identPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// validateTableName rejects reserved and non-identifier table names.
func validateTableName(name string) error {
	if name == types.HistoryTable {
		return types.ErrReservedTable
	}
	if !identPattern.MatchString(name) {
		return types.ErrInvalidName
	}
	return nil
}

// quoteIdent quotes an identifier for use in generated DDL. Identifiers
// cannot be bound as parameters, so embedded quotes are doubled.
func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

// createTableSQL renders the CREATE TABLE statement for a column spec.
// Column names are quoted; declared types are opaque caller text.
func createTableSQL(name string, columns []types.Column) string {
	var b strings.Builder
	b.WriteString("CREATE TABLE ")
	b.WriteString(quoteIdent(name))
	b.WriteString(" (")
	for i, col := range columns {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(quoteIdent(col.Name))
		b.WriteString(" ")
		b.WriteString(col.Type)
	}
	b.WriteString(");")
	return b.String()
}
