package cli

import (
	"github.com/hbjs97/starshift/internal/setup"
	"github.com/spf13/cobra"
)

func (a *App) newInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "프리셋 디렉토리와 설정 파일을 만든다",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r := &setup.Runner{
				CfgPath:    a.CfgPath,
				PresetDir:  a.cfg.PresetDir,
				FormRunner: a.FormRunner,
				Force:      force,
				Out:        cmd.OutOrStdout(),
			}
			return r.Run()
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "기존 설정 파일을 확인 없이 덮어쓴다")
	return cmd
}
