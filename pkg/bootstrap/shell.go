package bootstrap

import (
	"context"

	"github.com/arthur-debert/zshboot/pkg/errors"
	"github.com/arthur-debert/zshboot/pkg/logging"
	"github.com/arthur-debert/zshboot/pkg/paths"
)

// SwitchShell changes the user's login shell to zsh when it isn't
// already. zsh missing from PATH is the one fatal-by-design failure
// of the whole run: everything the previous steps set up is useless
// without it, so the error carries ErrShellNotFound and the CLI layer
// turns it into an immediate non-zero exit with a plain message.
func (b *Bootstrapper) SwitchShell(ctx context.Context) error {
	logger := logging.GetLogger("bootstrap.shell")

	zshPath, err := b.LookPath("zsh")
	if err != nil {
		return errors.New(errors.ErrShellNotFound, MsgShellNotFound)
	}

	b.say(MsgCheckingShell)
	current := b.Getenv(paths.EnvShell)
	logger.Debug().Str("current", current).Str("zsh", zshPath).Msg("Comparing shells")

	if current == "" || current == zshPath {
		return nil
	}

	b.say(MsgChangingShell)
	if err := b.Commander.Run(ctx, "chsh", "-s", zshPath); err != nil {
		return errors.Wrap(err, errors.ErrShellChange, "chsh failed")
	}
	return nil
}
