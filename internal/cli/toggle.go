package cli

import (
	"path/filepath"
	"strings"

	"github.com/hbjs97/starshift/internal/preset"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func (a *App) newToggleCmd() *cobra.Command {
	var opts setOptions

	cmd := &cobra.Command{
		Use:   "toggle",
		Short: "minimal과 verbose 프리셋을 전환한다",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runToggle(cmd, opts)
		},
	}
	opts.bind(cmd)
	return cmd
}

func (a *App) runToggle(cmd *cobra.Command, opts setOptions) error {
	if err := a.requireConfig(); err != nil {
		return err
	}
	if !a.cfg.IsToggleEnabled() {
		return ErrToggleDisabled
	}

	dir := a.cfg.PresetDir
	minimal := preset.Path(dir, a.cfg.Toggle.Minimal)
	verbose := preset.Path(dir, a.cfg.Toggle.Verbose)

	target := preset.Toggle(a.Env, a.cfg.EnvVar, minimal, verbose)
	name := strings.TrimSuffix(filepath.Base(target), preset.Ext)
	a.Logger.Debug("toggle decided", zap.String("target", target))

	return a.runSet(cmd, name, opts)
}
