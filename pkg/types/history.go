package types

import "time"

// History entry kinds.
const (
	KindMessage = "message"
	KindWarning = "warning"
	KindError   = "error"
	KindVersion = "version"
)

// HistoryTable is the reserved table name holding the audit log.
// Caller-defined tables must not use it.
const HistoryTable = "history"

// HistoryEntry is one row of the append-only audit log. Seq records
// insertion order independently of the one-second timestamp granularity;
// version resolution orders by (Time, Seq).
type HistoryEntry struct {
	Seq     int64     `json:"seq"`
	EntryID string    `json:"entry_id"`
	Time    time.Time `json:"time"`
	Kind    string    `json:"kind"`
	Event   string    `json:"event"`
}
