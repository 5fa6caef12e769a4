// pkg/bootstrap/files_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: real filesystem (t.TempDir)
// PURPOSE: Test idempotent creation of .zshrc and .ssh

package bootstrap_test

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureFilesCreatesBoth(t *testing.T) {
	b, _, _ := newTestBootstrapper(t)

	require.NoError(t, b.EnsureFiles(context.Background()))

	info, err := os.Stat(b.Paths.Zshrc())
	require.NoError(t, err)
	assert.False(t, info.IsDir())
	assert.Zero(t, info.Size())

	sshInfo, err := os.Stat(b.Paths.SSHDir())
	require.NoError(t, err)
	assert.True(t, sshInfo.IsDir())
}

func TestEnsureFilesDoesNotTruncateZshrc(t *testing.T) {
	b, _, _ := newTestBootstrapper(t)
	require.NoError(t, os.WriteFile(b.Paths.Zshrc(), []byte("alias ll='ls -l'\n"), 0644))

	require.NoError(t, b.EnsureFiles(context.Background()))

	content, err := os.ReadFile(b.Paths.Zshrc())
	require.NoError(t, err)
	assert.Equal(t, "alias ll='ls -l'\n", string(content))
}

func TestEnsureFilesIdempotent(t *testing.T) {
	b, _, _ := newTestBootstrapper(t)

	require.NoError(t, b.EnsureFiles(context.Background()))
	require.NoError(t, b.EnsureFiles(context.Background()))

	assert.FileExists(t, b.Paths.Zshrc())
	assert.DirExists(t, b.Paths.SSHDir())
}
