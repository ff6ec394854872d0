package cmdexec

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapToEnvSlice_Sorted(t *testing.T) {
	got := mapToEnvSlice(map[string]string{
		"STARSHIP_CONFIG": "/tmp/a.toml",
		"A":               "1",
	})
	assert.Equal(t, []string{"A=1", "STARSHIP_CONFIG=/tmp/a.toml"}, got)
}

func TestMapToEnvSlice_Nil(t *testing.T) {
	assert.Nil(t, mapToEnvSlice(nil))
}

func TestRealCommander_Run(t *testing.T) {
	c := &RealCommander{}
	out, err := c.Run(context.Background(), "sh", "-c", "printf ok")
	require.NoError(t, err)
	assert.Equal(t, "ok", string(out))
}

func TestRealCommander_RunInteractive_MissingBinary(t *testing.T) {
	c := &RealCommander{}
	err := c.RunInteractive(context.Background(), nil, "starshift-no-such-binary")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cmdexec.RunInteractive")
}

func TestRealCommander_RunInteractive_NonZeroExitIsNotError(t *testing.T) {
	c := &RealCommander{}
	err := c.RunInteractive(context.Background(),
		map[string]string{"STARSHIP_CONFIG": "/tmp/minimal.toml"},
		"sh", "-c", "exit 3")
	assert.NoError(t, err)
}

func TestRealCommander_RunInteractive_PassesEnvAndWaits(t *testing.T) {
	out := filepath.Join(t.TempDir(), "seen")
	preset := "/home/u/.config/starship_presets/verbose.toml"

	c := &RealCommander{}
	err := c.RunInteractive(context.Background(),
		map[string]string{"STARSHIP_CONFIG": preset, "SEEN_FILE": out},
		"sh", "-c", `sleep 0.2; printf %s "$STARSHIP_CONFIG" > "$SEEN_FILE"`)
	require.NoError(t, err)

	// The child has exited by the time RunInteractive returns, so the file is complete.
	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, preset, string(data))
}
