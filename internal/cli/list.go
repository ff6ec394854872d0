package cli

import (
	"fmt"

	"github.com/hbjs97/starshift/internal/preset"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func (a *App) newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "프리셋 디렉토리의 프리셋 목록을 표시한다",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runList(cmd)
		},
	}
}

// runList는 디렉토리를 읽지 못해도 에러를 출력만 하고 정상 종료한다.
func (a *App) runList(cmd *cobra.Command) error {
	if err := a.requireConfig(); err != nil {
		return err
	}
	dir := a.cfg.PresetDir
	fmt.Fprintf(cmd.OutOrStdout(), "Available presets in %s:\n", dir)

	names, err := preset.List(dir)
	if err != nil {
		a.Logger.Debug("list failed", zap.Error(err))
		fmt.Fprintf(cmd.ErrOrStderr(), "디렉토리를 읽을 수 없습니다: %s\n", dir)
		return nil
	}
	for _, n := range names {
		fmt.Fprintln(cmd.OutOrStdout(), n)
	}
	return nil
}
