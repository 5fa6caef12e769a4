package main

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort = "Bootstrap a zsh environment"
	MsgRootLong  = `zshboot sets up a personal zsh environment from scratch: it installs the
required tools, provisions asdf at its latest tag, downloads Antigen, writes
the managed base config, makes .zshrc source it, and switches the default
shell to zsh.

Every step is idempotent, so rerunning zshboot converges on the same setup.`

	MsgVersionShort = "Print version information"
	MsgConfigShort  = "Show the effective settings"
	MsgConfigLong   = `Show the effective settings as TOML: built-in defaults merged with the
optional settings file and ZSHBOOT_* environment variables.`

	// Flag descriptions
	MsgFlagVerbose       = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagStrictInstall = "Abort the run when the package installer exits non-zero"

	// Output formats
	MsgConfigHeader = "# effective settings (file: %s)\n"

	// Error messages
	MsgErrMarshalConfig = "failed to render settings: %w"
)
