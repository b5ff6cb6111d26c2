// Package types defines the Store interface, history entry and column types,
// the confirmation gate, and standard errors for the larder storage system.
package types
