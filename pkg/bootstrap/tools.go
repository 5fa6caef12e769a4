package bootstrap

import (
	"context"
	"fmt"
	"strings"

	"github.com/arthur-debert/zshboot/pkg/errors"
	"github.com/arthur-debert/zshboot/pkg/logging"
)

// InstallTools refreshes the package index and installs the required
// tools (plus any configured extras) in a single bulk call. With
// StrictInstall off, a failing apt invocation is logged and the run
// continues; with it on, the failure aborts the run.
func (b *Bootstrapper) InstallTools(ctx context.Context) error {
	logger := logging.GetLogger("bootstrap.tools")

	tools := make([]string, 0, len(RequiredTools)+len(b.Config.ExtraTools))
	tools = append(tools, RequiredTools...)
	tools = append(tools, b.Config.ExtraTools...)

	b.say(fmt.Sprintf(MsgInstallingTools, strings.Join(tools, ", ")))

	if err := b.Commander.Run(ctx, "sudo", "apt", "update"); err != nil {
		if b.Config.StrictInstall {
			return errors.Wrap(err, errors.ErrToolInstall, "apt update failed")
		}
		logger.Warn().Err(err).Msg("apt update failed, continuing")
	}

	args := append([]string{"apt", "install"}, tools...)
	if err := b.Commander.Run(ctx, "sudo", args...); err != nil {
		if b.Config.StrictInstall {
			return errors.Wrap(err, errors.ErrToolInstall, "apt install failed")
		}
		logger.Warn().Err(err).Strs("tools", tools).Msg("apt install failed, continuing")
	}

	return nil
}
