package types

import "errors"

// VersionUnset is the cached version value of a Store that holds no open
// connection. It is distinct from ErrNoVersion, which reports an open store
// whose history contains no version entries.
const VersionUnset = ""

// Store manages one backing file as a versioned container for tabular data.
// A Store holds at most one live connection: Open and Create transition it
// from Closed to Open, Close transitions it back, and every other transition
// is rejected without side effects.
type Store interface {
	// Open connects to an existing store file and caches its version from
	// the history log. Returns ErrAlreadyOpen if a connection is held,
	// ErrNotFound if path does not reference an existing file, and
	// ErrNoVersion if the file's history records no version.
	Open(path string) error

	// Create builds a new store file at path, stamps it with the mandatory
	// version string, and leaves the store open. An existing file at path
	// consults the confirmation gate unless force is set; a declined
	// confirmation returns (false, nil) and touches nothing. Returns
	// ErrAlreadyOpen if a connection is held regardless of force.
	Create(path, version string, force bool) (bool, error)

	// Close releases the connection and resets the cached version to
	// VersionUnset. Returns ErrNotOpen if no connection is held.
	Close() error

	// Path returns the backing file path, or "" when closed.
	Path() string

	// Version returns the cached version, or VersionUnset when closed.
	Version() string

	// SetVerbosity sets the level above which informational traces are
	// echoed to the configured chatter writer. Persisted history is not
	// affected.
	SetVerbosity(level int)

	// AddTable creates table name with the given column spec. An existing
	// table of the same name consults the confirmation gate unless force is
	// set; declining returns (false, nil). Proceeding replaces the table in
	// a single transaction: on engine failure the prior table survives.
	AddTable(name string, columns []Column, force bool) (bool, error)

	// DropTable removes table name, consulting the confirmation gate unless
	// force is set. Returns ErrTableNotFound if no such table exists.
	DropTable(name string, force bool) (bool, error)

	// Tables lists caller-defined tables in the store, excluding the
	// reserved history table.
	Tables() ([]string, error)

	// LogMessage, LogWarning and LogError append one history entry of the
	// corresponding kind. Each append commits immediately.
	LogMessage(text string) error
	LogWarning(text string) error
	LogError(text string) error

	// LogVersion appends a version entry and refreshes the cached version.
	LogVersion(version string) error

	// ResolveVersion returns the payload of the most recent version entry,
	// ordered by timestamp then insertion order. Returns ErrNoVersion if
	// the history records no version.
	ResolveVersion() (string, error)

	// History returns every history entry in insertion order.
	History() ([]HistoryEntry, error)
}

// Store lifecycle errors.
var (
	ErrAlreadyOpen = errors.New("store is already open")
	ErrNotOpen     = errors.New("store is not open")
	ErrNotFound    = errors.New("store file not found")
)

// Engine and history errors.
var (
	ErrEngine    = errors.New("engine error")
	ErrNoVersion = errors.New("no version recorded")
)

// Table management errors.
var (
	ErrTableNotFound = errors.New("table not found")
	ErrReservedTable = errors.New("table name is reserved")
	ErrInvalidName   = errors.New("invalid table name")
	ErrVersionEmpty  = errors.New("version must not be empty")
)
