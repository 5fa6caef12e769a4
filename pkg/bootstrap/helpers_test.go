package bootstrap_test

import (
	"testing"

	"github.com/arthur-debert/zshboot/pkg/bootstrap"
	"github.com/arthur-debert/zshboot/pkg/config"
	"github.com/arthur-debert/zshboot/pkg/paths"
	"github.com/arthur-debert/zshboot/pkg/testutil"
)

// newTestBootstrapper builds a Bootstrapper over a throwaway home
// directory with all external surfaces faked: commands are recorded
// by the FakeCommander, downloads served by the FakeFetcher, and zsh
// resolves to a fixed path.
func newTestBootstrapper(t *testing.T) (*bootstrap.Bootstrapper, *testutil.FakeCommander, *testutil.FakeFetcher) {
	t.Helper()

	commander := testutil.NewFakeCommander()
	commander.DefaultResponse = &testutil.Response{}
	fetcher := &testutil.FakeFetcher{Body: "# antigen script\n"}

	b := &bootstrap.Bootstrapper{
		Paths:     paths.NewAt(t.TempDir()),
		Config:    config.Default(),
		Commander: commander,
		Fetcher:   fetcher,
		LookPath: func(file string) (string, error) {
			return "/usr/bin/" + file, nil
		},
		Getenv: func(string) string { return "/bin/bash" },
	}
	return b, commander, fetcher
}
