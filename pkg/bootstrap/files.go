package bootstrap

import (
	"context"
	"os"

	"github.com/arthur-debert/zshboot/pkg/errors"
)

// EnsureFiles guarantees the files later steps depend on exist:
// ~/.zshrc as a regular file (created empty, never truncated) and
// ~/.ssh as a directory (parents included). Both are no-ops when
// already present.
func (b *Bootstrapper) EnsureFiles(_ context.Context) error {
	b.say(MsgEnsureFiles)

	// touch semantics: O_CREATE without O_TRUNC
	f, err := os.OpenFile(b.Paths.Zshrc(), os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileCreate, "failed to ensure %s exists", b.Paths.Zshrc())
	}
	if err := f.Close(); err != nil {
		return errors.Wrapf(err, errors.ErrFileCreate, "failed to close %s", b.Paths.Zshrc())
	}

	if err := os.MkdirAll(b.Paths.SSHDir(), 0700); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "failed to create %s", b.Paths.SSHDir())
	}

	return nil
}
