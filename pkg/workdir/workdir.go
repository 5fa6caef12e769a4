// Package workdir implements a pushd/popd-style working-directory
// stack. The process working directory is global state, so the only
// safe usage pattern is a strictly paired push/pop within one
// operation; the In helper enforces the pairing with a deferred
// restore that runs even when the work fails.
package workdir

import (
	"os"

	"github.com/arthur-debert/zshboot/pkg/errors"
)

// Stack holds previous working directories, most recent last
type Stack struct {
	dirs []string
}

// Push records the current working directory and changes into dir
func (s *Stack) Push(dir string) error {
	cwd, err := os.Getwd()
	if err != nil {
		return errors.Wrap(err, errors.ErrInternal, "cannot determine working directory")
	}
	if err := os.Chdir(dir); err != nil {
		return errors.Wrapf(err, errors.ErrInternal, "cannot change directory to %s", dir)
	}
	s.dirs = append(s.dirs, cwd)
	return nil
}

// Pop restores the most recently pushed working directory
func (s *Stack) Pop() error {
	if len(s.dirs) == 0 {
		return errors.New(errors.ErrInternal, "working-directory stack is empty")
	}
	last := s.dirs[len(s.dirs)-1]
	s.dirs = s.dirs[:len(s.dirs)-1]
	if err := os.Chdir(last); err != nil {
		return errors.Wrapf(err, errors.ErrInternal, "cannot restore directory %s", last)
	}
	return nil
}

// Len returns the number of saved directories
func (s *Stack) Len() int {
	return len(s.dirs)
}

// In runs fn with the working directory changed to dir, restoring the
// previous working directory afterwards regardless of fn's outcome.
// fn's error wins over a restore error.
func In(dir string, fn func() error) error {
	var stack Stack
	if err := stack.Push(dir); err != nil {
		return err
	}

	fnErr := fn()
	popErr := stack.Pop()

	if fnErr != nil {
		return fnErr
	}
	return popErr
}
