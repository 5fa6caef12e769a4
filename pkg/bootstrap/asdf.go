package bootstrap

import (
	"context"
	"os"

	"github.com/arthur-debert/zshboot/pkg/errors"
	"github.com/arthur-debert/zshboot/pkg/logging"
	"github.com/arthur-debert/zshboot/pkg/workdir"
)

// ProvisionAsdf clones asdf into ~/.asdf when missing, then checks out
// its most recent tag. The tag lookup and checkout happen inside a
// scoped directory change; the original working directory is restored
// even when either of them fails.
//
// A ~/.asdf that exists but is not a git checkout makes the tag lookup
// fail, which propagates like any other error.
func (b *Bootstrapper) ProvisionAsdf(ctx context.Context) error {
	logger := logging.GetLogger("bootstrap.asdf")
	dir := b.Paths.AsdfDir()

	b.say(MsgCheckingAsdf)
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		if err := b.Commander.Run(ctx, "git", "clone", AsdfRepoURL, dir); err != nil {
			return errors.Wrapf(err, errors.ErrGitClone, "failed to clone asdf into %s", dir)
		}
		logger.Info().Str("dir", dir).Msg("Cloned asdf")
	}

	b.say(MsgUpdatingAsdf)
	return workdir.In(dir, func() error {
		tag, err := b.Commander.Output(ctx, "git", "describe", "--abbrev=0", "--tags")
		if err != nil {
			return errors.Wrapf(err, errors.ErrGitDescribe, "cannot resolve latest asdf tag in %s", dir)
		}
		if err := b.Commander.Run(ctx, "git", "checkout", tag); err != nil {
			return errors.Wrapf(err, errors.ErrGitCheckout, "failed to checkout asdf tag %s", tag)
		}
		logger.Info().Str("tag", tag).Msg("Checked out latest asdf tag")
		return nil
	})
}
