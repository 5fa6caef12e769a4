package bootstrap

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"unicode"

	"github.com/arthur-debert/zshboot/pkg/errors"
	"github.com/arthur-debert/zshboot/pkg/logging"
	"github.com/arthur-debert/zshboot/pkg/paths"
)

// WriteBaseConfig writes the fixed template to ~/.zshrc-base.zsh,
// always overwriting. The result is identical regardless of prior
// state, which is what makes rerunning the tool safe.
func (b *Bootstrapper) WriteBaseConfig(_ context.Context) error {
	dest := b.Paths.BaseConfig()
	b.say(fmt.Sprintf(MsgWritingBaseConfig, dest))

	if err := os.WriteFile(dest, []byte(BaseConfigTemplate), 0644); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "failed to write %s", dest)
	}
	return nil
}

// LinkBaseConfig makes sure ~/.zshrc sources the base config. When a
// line already equals the source directive (trailing whitespace
// ignored), the file is left byte-identical; otherwise the directive
// is appended after one blank separator line. Existing content is
// never modified or reordered.
func (b *Bootstrapper) LinkBaseConfig(_ context.Context) error {
	logger := logging.GetLogger("bootstrap.zshrc")
	zshrc := b.Paths.Zshrc()

	b.say(MsgLinkingBaseConfig)

	if found, err := containsSourceLine(zshrc); err != nil {
		return err
	} else if found {
		logger.Debug().Str("file", zshrc).Msg("Source line already present")
		return nil
	}

	b.say(MsgAddingSourceLine)
	f, err := os.OpenFile(zshrc, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "failed to open %s for append", zshrc)
	}
	defer func() { _ = f.Close() }()

	if _, err := fmt.Fprintf(f, "\n%s\n", paths.SourceLine); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "failed to append to %s", zshrc)
	}

	return nil
}

// containsSourceLine reports whether any line of the file, after
// trimming trailing whitespace, exactly equals the source directive.
// A missing file counts as not containing it.
func containsSourceLine(path string) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, errors.Wrapf(err, errors.ErrFileRead, "failed to read %s", path)
	}
	defer func() { _ = f.Close() }()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimRightFunc(scanner.Text(), unicode.IsSpace)
		if line == paths.SourceLine {
			return true, nil
		}
	}
	if err := scanner.Err(); err != nil {
		return false, errors.Wrapf(err, errors.ErrFileRead, "failed to scan %s", path)
	}
	return false, nil
}
