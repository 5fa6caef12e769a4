// Package cmdexec abstracts external command execution for
// testability. Production code uses the Commander interface; tests
// inject the fake from pkg/testutil.
package cmdexec

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"unicode"

	"github.com/arthur-debert/zshboot/pkg/logging"
)

// Commander abstracts external command execution
type Commander interface {
	// Run executes a command with stdout/stderr attached to the
	// current process and returns its exit error, if any. Interactive
	// prompts from the child (apt confirmation, chsh password) reach
	// the user directly.
	Run(ctx context.Context, name string, args ...string) error

	// Output executes a command, returning its captured stdout with
	// surrounding whitespace trimmed. A non-zero exit is an error.
	Output(ctx context.Context, name string, args ...string) (string, error)
}

// RealCommander executes actual external commands via os/exec,
// echoing each command line to stdout before running it.
type RealCommander struct{}

// Run executes the command with inherited stdio
func (c *RealCommander) Run(ctx context.Context, name string, args ...string) error {
	echo(name, args)
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

// Output executes the command and captures its stdout
func (c *RealCommander) Output(ctx context.Context, name string, args ...string) (string, error) {
	echo(name, args)
	out, err := exec.CommandContext(ctx, name, args...).Output()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}

// echo prints the command line the way a user would retype it, and
// mirrors it to the debug log
func echo(name string, args []string) {
	fmt.Println("RUN:", FormatCommand(name, args))

	logger := logging.GetLogger("cmdexec")
	logger.Debug().Str("command", name).Strs("args", args).Msg("Executing command")
}

// FormatCommand renders a command and its arguments as a single
// space-joined line, quoting any argument containing whitespace
func FormatCommand(name string, args []string) string {
	parts := make([]string, 0, len(args)+1)
	parts = append(parts, quoteArg(name))
	for _, arg := range args {
		parts = append(parts, quoteArg(arg))
	}
	return strings.Join(parts, " ")
}

func quoteArg(s string) string {
	if strings.IndexFunc(s, unicode.IsSpace) >= 0 {
		return strconv.Quote(s)
	}
	return s
}
