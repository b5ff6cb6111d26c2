// Shared helpers for larder CLI commands.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/mesh-intelligence/larder/pkg/sqlite"
	"github.com/mesh-intelligence/larder/pkg/types"
)

// newStore builds a closed store wired with the CLI's verbosity, stderr
// chatter, and confirmation policy (--yes injects allow-all, otherwise the
// interactive prompt).
func newStore() (types.Store, error) {
	verbosity := flagVerbosity
	if verbosity == 0 {
		verbosity = configVerbosity
	}

	confirm := types.ConfirmFunc(confirmFromTerminal)
	if flagYes {
		confirm = types.ConfirmAllow
	}

	return sqlite.NewStore(types.Config{
		Verbosity: verbosity,
		Chatter:   os.Stderr,
		Confirm:   confirm,
	})
}

// confirmFromTerminal binds the interactive prompt to stdin/stderr.
func confirmFromTerminal(entity, entityKind string) bool {
	return promptConfirm(os.Stdin, os.Stderr, entity, entityKind)
}

// openStore resolves the store path and opens it. The caller must defer
// store.Close().
func openStore() (types.Store, error) {
	path, err := resolveStorePath()
	if err != nil {
		return nil, fmt.Errorf("resolve store path: %w", err)
	}

	store, err := newStore()
	if err != nil {
		return nil, err
	}
	if err := store.Open(path); err != nil {
		return nil, err
	}
	return store, nil
}

// parseColumns parses a schema description like "Id INTEGER, Name TEXT"
// into column (name, declared type) pairs. The first word of each
// comma-separated part is the column name; the rest is its declared type.
func parseColumns(spec string) ([]types.Column, error) {
	var columns []types.Column
	for _, part := range strings.Split(spec, ",") {
		fields := strings.Fields(part)
		if len(fields) < 2 {
			return nil, fmt.Errorf("malformed column %q (want \"name TYPE\")", strings.TrimSpace(part))
		}
		columns = append(columns, types.Column{
			Name: fields[0],
			Type: strings.Join(fields[1:], " "),
		})
	}
	if len(columns) == 0 {
		return nil, fmt.Errorf("empty column spec")
	}
	return columns, nil
}
