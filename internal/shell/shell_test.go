package shell_test

import (
	"os/exec"
	"testing"

	"github.com/hbjs97/starshift/internal/shell"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const presetPath = "/home/user/.config/starship_presets/minimal.toml"

func TestExport_PosixShell(t *testing.T) {
	output := shell.Export("STARSHIP_CONFIG", presetPath, "zsh")
	assert.Equal(t, `export STARSHIP_CONFIG='/home/user/.config/starship_presets/minimal.toml'`+"\n", output)
}

func TestExport_Bash(t *testing.T) {
	output := shell.Export("STARSHIP_CONFIG", presetPath, "bash")
	assert.Contains(t, output, `export STARSHIP_CONFIG='/home/user/.config/starship_presets/minimal.toml'`)
}

func TestExport_Fish(t *testing.T) {
	output := shell.Export("STARSHIP_CONFIG", presetPath, "fish")
	assert.Equal(t, `set -gx STARSHIP_CONFIG '/home/user/.config/starship_presets/minimal.toml'`+"\n", output)
}

func TestExport_QuotesShellMetacharacters(t *testing.T) {
	tests := []struct {
		name      string
		path      string
		shellType string
		want      string
	}{
		{"posix dollar and backtick", "/p/$HOME/`id`.toml", "zsh", "export STARSHIP_CONFIG='/p/$HOME/`id`.toml'\n"},
		{"posix single quote", "/p/it's.toml", "bash", `export STARSHIP_CONFIG='/p/it'\''s.toml'` + "\n"},
		{"fish dollar", "/p/$HOME.toml", "fish", "set -gx STARSHIP_CONFIG '/p/$HOME.toml'\n"},
		{"fish single quote", "/p/it's.toml", "fish", `set -gx STARSHIP_CONFIG '/p/it\'s.toml'` + "\n"},
		{"fish backslash", `/p/a\b.toml`, "fish", `set -gx STARSHIP_CONFIG '/p/a\\b.toml'` + "\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, shell.Export("STARSHIP_CONFIG", tt.path, tt.shellType))
		})
	}
}

func TestUnset_PosixShell(t *testing.T) {
	assert.Equal(t, "unset STARSHIP_CONFIG\n", shell.Unset("STARSHIP_CONFIG", "zsh"))
}

func TestUnset_Fish(t *testing.T) {
	assert.Equal(t, "set -e STARSHIP_CONFIG\n", shell.Unset("STARSHIP_CONFIG", "fish"))
}

func TestExport_PosixEvalRoundTrip(t *testing.T) {
	path := "/p/$HOME/`echo x`/it's.toml"
	snippet := shell.Export("STARSHIP_CONFIG", path, "sh")

	out, err := exec.Command("sh", "-c", `eval "$1"; printf %s "$STARSHIP_CONFIG"`, "sh", snippet).Output()
	require.NoError(t, err)
	assert.Equal(t, path, string(out))
}
