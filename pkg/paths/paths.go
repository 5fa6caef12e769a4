// Package paths provides centralized path handling for zshboot.
// Every file the bootstrap touches lives at a fixed location under the
// invoking user's home directory; this package is the single source of
// truth for those locations.
package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/zshboot/pkg/errors"
)

// Environment variable names
const (
	// EnvZshbootHome overrides the home directory used for all fixed
	// paths. Intended for tests and sandboxed runs.
	EnvZshbootHome = "ZSHBOOT_HOME"

	// EnvShell is the standard login-shell variable
	EnvShell = "SHELL"
)

// Fixed file and directory names under the home directory.
// These are not user-configurable; the whole point of the tool is that
// every run converges on the same layout.
const (
	// ZshrcName is the user's primary zsh startup file
	ZshrcName = ".zshrc"

	// SSHDirName is the SSH configuration directory
	SSHDirName = ".ssh"

	// AntigenScriptName is the antigen bootstrap script file
	AntigenScriptName = ".antigen.zsh"

	// BaseConfigName is the managed base zsh config file
	BaseConfigName = ".zshrc-base.zsh"

	// AsdfDirName is the asdf version-manager checkout directory
	AsdfDirName = ".asdf"

	// ConfigFileName is the optional zshboot settings file
	ConfigFileName = "config.toml"
)

// SourceLine is the exact directive the config linker looks for in
// .zshrc (compared after trimming trailing whitespace)
const SourceLine = "source ~/" + BaseConfigName

// Paths resolves the fixed locations zshboot operates on
type Paths struct {
	home string
}

// New creates a Paths instance rooted at the user's home directory,
// honoring the ZSHBOOT_HOME override
func New() (*Paths, error) {
	if home := os.Getenv(EnvZshbootHome); home != "" {
		return &Paths{home: home}, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "cannot determine home directory")
	}
	return &Paths{home: home}, nil
}

// NewAt creates a Paths instance rooted at an explicit home directory
func NewAt(home string) *Paths {
	return &Paths{home: home}
}

// Home returns the resolved home directory
func (p *Paths) Home() string {
	return p.home
}

// Zshrc returns the path to the user's .zshrc
func (p *Paths) Zshrc() string {
	return filepath.Join(p.home, ZshrcName)
}

// SSHDir returns the path to the user's .ssh directory
func (p *Paths) SSHDir() string {
	return filepath.Join(p.home, SSHDirName)
}

// AntigenScript returns the path the antigen bootstrap script is
// written to
func (p *Paths) AntigenScript() string {
	return filepath.Join(p.home, AntigenScriptName)
}

// BaseConfig returns the path of the managed base zsh config
func (p *Paths) BaseConfig() string {
	return filepath.Join(p.home, BaseConfigName)
}

// AsdfDir returns the asdf checkout directory
func (p *Paths) AsdfDir() string {
	return filepath.Join(p.home, AsdfDirName)
}

// ConfigFile returns the path of the optional settings file under the
// XDG config directory
func ConfigFile() string {
	return filepath.Join(xdg.ConfigHome, "zshboot", ConfigFileName)
}
