package types

// Column is one (name, declared type) pair of a table schema. Names are
// quoted into the generated DDL; Type is opaque caller text passed to the
// engine as written, so a malformed type surfaces as an engine error.
type Column struct {
	Name string `json:"name" yaml:"name"`
	Type string `json:"type" yaml:"type"`
}
