package cli

import (
	"fmt"

	"github.com/hbjs97/starshift/internal/setup"
	"github.com/hbjs97/starshift/internal/shell"
	"github.com/spf13/cobra"
)

func (a *App) newResetCmd() *cobra.Command {
	var shellType string

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "활성 프리셋 변수를 해제하는 셸 명령을 출력한다 (eval \"$(starshift reset)\")",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runReset(cmd, shellType)
		},
	}
	cmd.Flags().StringVar(&shellType, "shell", "", "출력 형식 (bash, zsh, fish). 기본값은 $SHELL")
	return cmd
}

func (a *App) runReset(cmd *cobra.Command, shellType string) error {
	if err := a.requireConfig(); err != nil {
		return err
	}
	if shellType == "" {
		shellType = setup.DetectShell()
	}
	fmt.Fprint(cmd.OutOrStdout(), shell.Unset(a.cfg.EnvVar, shellType))
	return nil
}
