// pkg/bootstrap/tools_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: FakeCommander
// PURPOSE: Test the tool installer's apt invocations and strict mode

package bootstrap_test

import (
	"context"
	"errors"
	"testing"

	zerrors "github.com/arthur-debert/zshboot/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstallToolsInvokesAptTwice(t *testing.T) {
	b, commander, _ := newTestBootstrapper(t)

	require.NoError(t, b.InstallTools(context.Background()))

	require.Len(t, commander.Calls, 2)
	assert.Equal(t, "sudo apt update", commander.Calls[0])
	assert.Equal(t, "sudo apt install zsh git neovim byobu", commander.Calls[1])
}

func TestInstallToolsAppendsExtraTools(t *testing.T) {
	b, commander, _ := newTestBootstrapper(t)
	b.Config.ExtraTools = []string{"ripgrep", "fzf"}

	require.NoError(t, b.InstallTools(context.Background()))

	assert.Equal(t, "sudo apt install zsh git neovim byobu ripgrep fzf", commander.Calls[1])
}

func TestInstallToolsLenientByDefault(t *testing.T) {
	b, commander, _ := newTestBootstrapper(t)
	commander.Register("sudo apt update", "", errors.New("exit status 100"))
	commander.Register("sudo apt install", "", errors.New("exit status 100"))

	// Without strict mode a failing installer does not stop the run
	assert.NoError(t, b.InstallTools(context.Background()))
	assert.Len(t, commander.Calls, 2)
}

func TestInstallToolsStrictMode(t *testing.T) {
	b, commander, _ := newTestBootstrapper(t)
	b.Config.StrictInstall = true
	commander.Register("sudo apt install", "", errors.New("exit status 100"))

	err := b.InstallTools(context.Background())
	require.Error(t, err)
	assert.True(t, zerrors.IsCode(err, zerrors.ErrToolInstall))
}

func TestInstallToolsStrictModeUpdateFailure(t *testing.T) {
	b, commander, _ := newTestBootstrapper(t)
	b.Config.StrictInstall = true
	commander.Register("sudo apt update", "", errors.New("exit status 100"))

	err := b.InstallTools(context.Background())
	require.Error(t, err)
	assert.True(t, zerrors.IsCode(err, zerrors.ErrToolInstall))
	// install must not run after a fatal update failure
	assert.Len(t, commander.Calls, 1)
}
