// pkg/workdir/workdir_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None (uses real process working directory)
// PURPOSE: Test scoped directory changes restore the original cwd

package workdir_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/zshboot/pkg/workdir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resolve keeps macOS happy, where t.TempDir lives under /var -> /private/var
func resolve(t *testing.T, dir string) string {
	t.Helper()
	resolved, err := filepath.EvalSymlinks(dir)
	require.NoError(t, err)
	return resolved
}

func TestInRunsInDirectory(t *testing.T) {
	target := resolve(t, t.TempDir())
	before, err := os.Getwd()
	require.NoError(t, err)

	var seen string
	err = workdir.In(target, func() error {
		cwd, err := os.Getwd()
		seen = cwd
		return err
	})
	require.NoError(t, err)

	assert.Equal(t, target, seen)

	after, err := os.Getwd()
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestInRestoresOnError(t *testing.T) {
	target := resolve(t, t.TempDir())
	before, err := os.Getwd()
	require.NoError(t, err)

	wantErr := errors.New("tag lookup failed")
	err = workdir.In(target, func() error {
		return wantErr
	})
	assert.ErrorIs(t, err, wantErr)

	after, err := os.Getwd()
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestInMissingDirectory(t *testing.T) {
	before, err := os.Getwd()
	require.NoError(t, err)

	err = workdir.In(filepath.Join(t.TempDir(), "does-not-exist"), func() error {
		t.Fatal("fn must not run when the chdir fails")
		return nil
	})
	assert.Error(t, err)

	after, err := os.Getwd()
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestStackPushPop(t *testing.T) {
	dirA := resolve(t, t.TempDir())
	dirB := resolve(t, t.TempDir())
	before, err := os.Getwd()
	require.NoError(t, err)
	t.Cleanup(func() { _ = os.Chdir(before) })

	var stack workdir.Stack
	require.NoError(t, stack.Push(dirA))
	require.NoError(t, stack.Push(dirB))
	assert.Equal(t, 2, stack.Len())

	require.NoError(t, stack.Pop())
	cwd, err := os.Getwd()
	require.NoError(t, err)
	assert.Equal(t, dirA, cwd)

	require.NoError(t, stack.Pop())
	cwd, err = os.Getwd()
	require.NoError(t, err)
	assert.Equal(t, before, cwd)
}

func TestPopEmptyStack(t *testing.T) {
	var stack workdir.Stack
	assert.Error(t, stack.Pop())
}
