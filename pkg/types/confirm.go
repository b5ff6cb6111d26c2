package types

// Entity kinds passed to the confirmation gate.
const (
	EntityStoreFile = "store file"
	EntityTable     = "table"
)

// ConfirmFunc decides whether a destructive operation on the named entity may
// proceed. The core never prompts on its own: callers inject a policy here
// (the CLI injects an interactive prompt, pipelines inject ConfirmAllow or
// ConfirmDeny). Declining is always a safe no-op.
type ConfirmFunc func(entity, entityKind string) bool

// ConfirmAllow approves every destructive operation.
func ConfirmAllow(entity, entityKind string) bool { return true }

// ConfirmDeny declines every destructive operation. It is the default gate
// when Config.Confirm is nil, so an unconfigured store never destroys data.
func ConfirmDeny(entity, entityKind string) bool { return false }
