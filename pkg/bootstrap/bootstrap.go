// Package bootstrap implements the zshboot run: a fixed sequence of
// idempotent steps that converge the user's environment on the same
// zsh setup regardless of prior state. Steps run strictly in order
// with no rollback; the first propagated error ends the run.
package bootstrap

import (
	"context"
	"fmt"
	"os"
	"os/exec"

	"github.com/mattn/go-isatty"
	"github.com/pterm/pterm"

	"github.com/arthur-debert/zshboot/pkg/cmdexec"
	"github.com/arthur-debert/zshboot/pkg/config"
	"github.com/arthur-debert/zshboot/pkg/fetch"
	"github.com/arthur-debert/zshboot/pkg/logging"
	"github.com/arthur-debert/zshboot/pkg/paths"
)

// Remote endpoints. Fixed: the tool bootstraps one specific setup.
const (
	// AsdfRepoURL is the asdf version-manager repository
	AsdfRepoURL = "https://github.com/asdf-vm/asdf.git"

	// AntigenURL serves the antigen bootstrap script
	AntigenURL = "https://git.io/antigen"
)

// RequiredTools are the packages installed on every run, in one bulk
// apt call. The list is fixed; config.ExtraTools extends it.
var RequiredTools = []string{
	"zsh",
	"git",
	"neovim",
	"byobu",
}

// Bootstrapper runs the bootstrap sequence. Collaborators are fields
// so tests can substitute fakes; New fills in the real ones.
type Bootstrapper struct {
	Paths     *paths.Paths
	Config    *config.Config
	Commander cmdexec.Commander
	Fetcher   fetch.Fetcher

	// LookPath resolves a binary on PATH (exec.LookPath in production)
	LookPath func(file string) (string, error)

	// Getenv reads an environment variable (os.Getenv in production)
	Getenv func(key string) string
}

// New creates a Bootstrapper wired with the production collaborators
func New(p *paths.Paths, cfg *config.Config) *Bootstrapper {
	return &Bootstrapper{
		Paths:     p,
		Config:    cfg,
		Commander: &cmdexec.RealCommander{},
		Fetcher:   &fetch.HTTPFetcher{},
		LookPath:  exec.LookPath,
		Getenv:    os.Getenv,
	}
}

// Run executes all bootstrap steps in their fixed order
func (b *Bootstrapper) Run(ctx context.Context) error {
	logger := logging.GetLogger("bootstrap")
	logger.Info().Str("home", b.Paths.Home()).Msg("Starting bootstrap run")

	steps := []struct {
		name string
		fn   func(context.Context) error
	}{
		{"install-tools", b.InstallTools},
		{"provision-asdf", b.ProvisionAsdf},
		{"ensure-files", b.EnsureFiles},
		{"fetch-antigen", b.FetchAntigen},
		{"write-base-config", b.WriteBaseConfig},
		{"link-base-config", b.LinkBaseConfig},
		{"switch-shell", b.SwitchShell},
	}

	for _, step := range steps {
		logger.Debug().Str("step", step.name).Msg("Step started")
		if err := step.fn(ctx); err != nil {
			logger.Error().Err(err).Str("step", step.name).Msg("Step failed")
			return err
		}
		logger.Debug().Str("step", step.name).Msg("Step completed")
	}

	b.say(MsgDone)
	return nil
}

// say prints a user-facing progress line, bold on terminals
func (b *Bootstrapper) say(msg string) {
	if isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		pterm.Println(pterm.Bold.Sprint(msg))
		return
	}
	fmt.Println(msg)
}
