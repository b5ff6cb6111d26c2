// Package sqlite provides the public API for the SQLite larder store.
// It exposes the factory function for creating stores while keeping
// implementation details internal.
package sqlite

import (
	"github.com/mesh-intelligence/larder/internal/sqlite"
	"github.com/mesh-intelligence/larder/pkg/types"
)

// NewStore creates a closed SQLite store; call Open or Create to start a
// session.
//
// Example:
//
//	store, err := sqlite.NewStore(types.Config{
//	    Confirm: types.ConfirmAllow,
//	})
//	created, err := store.Create("larder.db", "1.0", false)
//	defer store.Close()
func NewStore(config types.Config) (types.Store, error) {
	store, err := sqlite.NewStore(config)
	if err != nil {
		return nil, err
	}
	return store, nil
}
