package cli_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/hbjs97/starshift/internal/cli"
	"github.com/stretchr/testify/assert"
)

func TestMapExitCode(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		err  error
		want cli.ExitCode
	}{
		{"nil", nil, cli.ExitSuccess},
		{"preset not found", fmt.Errorf("wrap: %w", cli.ErrPresetNotFound), cli.ExitPresetNotFound},
		{"config", fmt.Errorf("config.Load: %w", cli.ErrConfig), cli.ExitConfigError},
		{"launch", fmt.Errorf("shell.Launch: %w", cli.ErrLaunch), cli.ExitGeneral},
		{"no home", cli.ErrNoHome, cli.ExitGeneral},
		{"toggle disabled", cli.ErrToggleDisabled, cli.ExitGeneral},
		{"other", errors.New("boom"), cli.ExitGeneral},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cli.MapExitCode(tt.err))
		})
	}
}
