package models

// ReconcileResult summarises one reconciliation run.
type ReconcileResult struct {
	// ConfigPath is the config file that was reconciled.
	ConfigPath string

	// BackupPath is the backup copy written before mutation, if any.
	BackupPath string

	// Bootstrapped is true when a default document had to be created first.
	Bootstrapped bool

	// ServerName is the "mcpServers" key that was set.
	ServerName string

	// Descriptor is the launch descriptor written under ServerName.
	Descriptor ServerLaunchDescriptor

	// Source tells whether Descriptor is the packaged or the local form.
	Source LaunchSource

	// Document is the serialized document that was (or should have been)
	// written. It is populated as soon as encoding succeeds, so a failed
	// write still carries the content for manual application.
	Document []byte
}
