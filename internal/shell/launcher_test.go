package shell_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/hbjs97/starshift/internal/shell"
	"github.com/hbjs97/starshift/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecLauncher_Launch(t *testing.T) {
	fc := testutil.NewFakeCommander()
	fc.Register("zsh -c", "", nil)

	l := shell.NewExecLauncher(fc, "zsh", "STARSHIP_CONFIG", nil)
	err := l.Launch(context.Background(), presetPath)
	require.NoError(t, err)

	require.Len(t, fc.InteractiveCalls, 1)
	assert.Equal(t, "zsh -c exec zsh", fc.InteractiveCalls[0])
	require.Len(t, fc.EnvCalls, 1)
	assert.Equal(t, map[string]string{"STARSHIP_CONFIG": presetPath}, fc.EnvCalls[0])
}

func TestExecLauncher_CustomShell(t *testing.T) {
	fc := testutil.NewFakeCommander()
	fc.Register("bash -c", "", nil)

	l := shell.NewExecLauncher(fc, "bash", "STARSHIP_CONFIG", nil)
	require.NoError(t, l.Launch(context.Background(), presetPath))
	assert.Equal(t, "bash -c exec bash", fc.InteractiveCalls[0])
}

func TestExecLauncher_SpawnFailure(t *testing.T) {
	fc := testutil.NewFakeCommander()
	fc.Register("zsh", "", fmt.Errorf(`exec: "zsh": executable file not found in $PATH`))

	l := shell.NewExecLauncher(fc, "zsh", "STARSHIP_CONFIG", nil)
	err := l.Launch(context.Background(), presetPath)
	require.Error(t, err)
	assert.ErrorIs(t, err, shell.ErrLaunch)
	assert.Contains(t, err.Error(), "zsh")
}
