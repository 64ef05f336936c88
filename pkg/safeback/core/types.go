package core

// OperationID uniquely identifies a single backup, restore, or delete
// invocation in diagnostic logs.
type OperationID string

// Actions recorded in the audit log.
const (
	ActionBackup  = "backup"
	ActionRestore = "restore"
	ActionDelete  = "delete"
)
