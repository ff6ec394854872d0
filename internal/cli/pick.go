package cli

import (
	"github.com/hbjs97/starshift/internal/preset"
	"github.com/spf13/cobra"
)

func (a *App) newPickCmd() *cobra.Command {
	var opts setOptions

	cmd := &cobra.Command{
		Use:   "pick",
		Short: "프리셋을 대화형으로 선택한다",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runPick(cmd, opts)
		},
	}
	opts.bind(cmd)
	return cmd
}

func (a *App) runPick(cmd *cobra.Command, opts setOptions) error {
	if err := a.requireConfig(); err != nil {
		return err
	}
	names, err := preset.List(a.cfg.PresetDir)
	if err != nil {
		return err
	}
	current, _ := preset.Current(a.Env, a.cfg.EnvVar, a.cfg.PresetDir)

	name, err := a.FormRunner.RunPresetSelect(names, current)
	if err != nil {
		return err
	}
	return a.runSet(cmd, name, opts)
}
