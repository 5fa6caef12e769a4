package bootstrap

import (
	"context"
	"fmt"
	"os"

	"github.com/arthur-debert/zshboot/pkg/errors"
)

// FetchAntigen downloads the antigen bootstrap script and writes it
// verbatim to ~/.antigen.zsh, overwriting any previous copy. No
// retries: a network failure aborts the run.
func (b *Bootstrapper) FetchAntigen(ctx context.Context) error {
	dest := b.Paths.AntigenScript()
	b.say(fmt.Sprintf(MsgInstallingAntigen, dest))

	body, err := b.Fetcher.Get(ctx, AntigenURL)
	if err != nil {
		return err
	}

	if err := os.WriteFile(dest, []byte(body), 0644); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "failed to write %s", dest)
	}

	return nil
}
