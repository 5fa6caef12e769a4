// Package testutil provides shared test doubles for zshboot.
package testutil

import (
	"context"
	"fmt"
	"strings"
)

// Response is a pre-configured command result for FakeCommander
type Response struct {
	Output string
	Err    error
}

// FakeCommander implements cmdexec.Commander with canned responses.
// Responses are keyed by "name arg1 arg2 ..."; when no exact match
// exists, the longest registered prefix wins.
type FakeCommander struct {
	Responses map[string]Response

	// Calls records every command executed, in order
	Calls []string

	// DefaultResponse is returned when no match is found. If nil,
	// unmatched commands are an error.
	DefaultResponse *Response

	// Hook, when set, runs before each command is resolved. It lets
	// tests mimic a command's side effects, e.g. creating the target
	// directory of a git clone.
	Hook func(fullCmd string)
}

// NewFakeCommander creates a FakeCommander with an empty response map
func NewFakeCommander() *FakeCommander {
	return &FakeCommander{
		Responses: make(map[string]Response),
	}
}

// Register adds a response for the given command key
func (c *FakeCommander) Register(key string, output string, err error) {
	c.Responses[key] = Response{Output: output, Err: err}
}

// Run records the command and returns the matching response's error
func (c *FakeCommander) Run(ctx context.Context, name string, args ...string) error {
	_, err := c.Output(ctx, name, args...)
	return err
}

// Output records the command and returns the matching response
func (c *FakeCommander) Output(_ context.Context, name string, args ...string) (string, error) {
	fullCmd := name
	if len(args) > 0 {
		fullCmd = name + " " + strings.Join(args, " ")
	}

	c.Calls = append(c.Calls, fullCmd)

	if c.Hook != nil {
		c.Hook(fullCmd)
	}

	if resp, ok := c.Responses[fullCmd]; ok {
		return resp.Output, resp.Err
	}

	bestKey := ""
	for key := range c.Responses {
		if strings.HasPrefix(fullCmd, key) && len(key) > len(bestKey) {
			bestKey = key
		}
	}
	if bestKey != "" {
		resp := c.Responses[bestKey]
		return resp.Output, resp.Err
	}

	if c.DefaultResponse != nil {
		return c.DefaultResponse.Output, c.DefaultResponse.Err
	}

	return "", fmt.Errorf("FakeCommander: no response registered for %q", fullCmd)
}

// Called reports whether a command matching the given prefix ran
func (c *FakeCommander) Called(prefix string) bool {
	for _, call := range c.Calls {
		if strings.HasPrefix(call, prefix) {
			return true
		}
	}
	return false
}
