package doctor_test

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/hbjs97/starshift/internal/doctor"
	"github.com/hbjs97/starshift/internal/preset"
	"github.com/hbjs97/starshift/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckPresetDir_OK(t *testing.T) {
	dir := testutil.TempPresetDir(t, "minimal.toml", "verbose.toml")

	result := doctor.CheckPresetDir(dir)
	assert.Equal(t, doctor.StatusOK, result.Status)
	assert.Contains(t, result.Message, "2")
}

func TestCheckPresetDir_Empty(t *testing.T) {
	result := doctor.CheckPresetDir(testutil.TempPresetDir(t, "notes.txt"))
	assert.Equal(t, doctor.StatusWarn, result.Status)
	assert.NotEmpty(t, result.Fix)
}

func TestCheckPresetDir_Missing(t *testing.T) {
	result := doctor.CheckPresetDir(filepath.Join(t.TempDir(), "missing"))
	assert.Equal(t, doctor.StatusFail, result.Status)
	assert.Contains(t, result.Fix, "starshift init")
}

func TestCheckConfig(t *testing.T) {
	ok := doctor.CheckConfig("/home/u/.config/starshift/config.toml", nil)
	assert.Equal(t, doctor.StatusOK, ok.Status)
	assert.Equal(t, "/home/u/.config/starshift/config.toml", ok.Message)

	failed := doctor.CheckConfig("/home/u/.config/starshift/config.toml", fmt.Errorf("config.Load: toml: line 1"))
	assert.Equal(t, doctor.StatusFail, failed.Status)
	assert.Contains(t, failed.Message, "toml: line 1")
	assert.Equal(t, "starshift init --force", failed.Fix)
}

func TestCheckShell_Present(t *testing.T) {
	fake := testutil.NewFakeCommander()
	fake.Register("zsh --version", "zsh 5.9 (x86_64-pc-linux-gnu)\n", nil)

	result := doctor.CheckShell(context.Background(), fake, "zsh")
	assert.Equal(t, doctor.StatusOK, result.Status)
	assert.Equal(t, "zsh 5.9 (x86_64-pc-linux-gnu)", result.Message)
}

func TestCheckShell_Missing(t *testing.T) {
	fake := testutil.NewFakeCommander()
	fake.Register("zsh --version", "", fmt.Errorf("not found"))

	result := doctor.CheckShell(context.Background(), fake, "zsh")
	assert.Equal(t, doctor.StatusFail, result.Status)
	assert.NotEmpty(t, result.Fix)
}

func TestCheckTogglePresets(t *testing.T) {
	dir := testutil.TempPresetDir(t, "minimal.toml")

	results := doctor.CheckTogglePresets(dir, "minimal", "verbose")
	require.Len(t, results, 2)
	assert.Equal(t, doctor.StatusOK, results[0].Status)
	assert.Equal(t, doctor.StatusWarn, results[1].Status)
	assert.Contains(t, results[1].Message, "verbose.toml")
}

func TestCheckActive(t *testing.T) {
	dir := testutil.TempPresetDir(t, "minimal.toml")

	tests := []struct {
		name string
		env  preset.MapEnv
		want doctor.Status
	}{
		{"unset", preset.MapEnv{}, doctor.StatusOK},
		{"existing file", preset.MapEnv{"STARSHIP_CONFIG": filepath.Join(dir, "minimal.toml")}, doctor.StatusOK},
		{"missing file", preset.MapEnv{"STARSHIP_CONFIG": filepath.Join(dir, "gone.toml")}, doctor.StatusWarn},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, doctor.CheckActive(tt.env, "STARSHIP_CONFIG").Status)
		})
	}
}

func TestRunAll_SkipsToggleWhenDisabled(t *testing.T) {
	dir := testutil.TempPresetDir(t, "minimal.toml", "verbose.toml")
	fake := testutil.NewFakeCommander()
	fake.Register("zsh --version", "zsh 5.9", nil)

	opts := doctor.Options{
		PresetDir: dir,
		Shell:     "zsh",
		EnvVar:    "STARSHIP_CONFIG",
		Minimal:   "minimal",
		Verbose:   "verbose",
	}

	results := doctor.RunAll(context.Background(), fake, preset.MapEnv{}, opts)
	assert.Len(t, results, 4)

	opts.Toggle = true
	results = doctor.RunAll(context.Background(), fake, preset.MapEnv{}, opts)
	assert.Len(t, results, 6)
	for _, r := range results {
		assert.Equal(t, doctor.StatusOK, r.Status, "check %s should be OK", r.Name)
	}
}
