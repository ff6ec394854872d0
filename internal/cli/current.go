package cli

import (
	"fmt"

	"github.com/hbjs97/starshift/internal/preset"
	"github.com/spf13/cobra"
)

func (a *App) newCurrentCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "current",
		Short: "현재 셸의 활성 프리셋을 표시한다",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runCurrent(cmd)
		},
	}
}

func (a *App) runCurrent(cmd *cobra.Command) error {
	if err := a.requireConfig(); err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if name, ok := preset.Current(a.Env, a.cfg.EnvVar, a.cfg.PresetDir); ok {
		fmt.Fprintln(out, name)
		return nil
	}
	if active, ok := a.Env.LookupEnv(a.cfg.EnvVar); ok && active != "" {
		fmt.Fprintln(out, active)
		return nil
	}
	fmt.Fprintf(out, "%s가 설정되지 않았습니다.\n", a.cfg.EnvVar)
	return nil
}
