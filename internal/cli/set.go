package cli

import (
	"fmt"

	"github.com/hbjs97/starshift/internal/preset"
	"github.com/hbjs97/starshift/internal/setup"
	"github.com/hbjs97/starshift/internal/shell"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// setOptions는 set 계열 명령의 출력 방식이다.
type setOptions struct {
	print     bool
	shellType string
}

func (o *setOptions) bind(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&o.print, "print", false, "셸을 실행하지 않고 export 명령만 출력 (eval 용)")
	cmd.Flags().StringVar(&o.shellType, "shell", "", "--print 출력 형식 (bash, zsh, fish). 기본값은 $SHELL")
}

func (a *App) newSetCmd() *cobra.Command {
	var opts setOptions

	cmd := &cobra.Command{
		Use:   "set <preset_name>",
		Short: "프리셋을 활성화한 셸을 실행한다",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runSet(cmd, args[0], opts)
		},
	}
	opts.bind(cmd)
	return cmd
}

func (a *App) runSet(cmd *cobra.Command, name string, opts setOptions) error {
	if err := a.requireConfig(); err != nil {
		return err
	}
	path, err := preset.Resolve(a.cfg.PresetDir, name)
	if err != nil {
		return err
	}
	return a.activate(cmd, name, path, opts)
}

// activate는 검증된 프리셋 경로로 셸을 실행하거나 export 명령을 출력한다.
func (a *App) activate(cmd *cobra.Command, name, path string, opts setOptions) error {
	if opts.print {
		shellType := opts.shellType
		if shellType == "" {
			shellType = setup.DetectShell()
		}
		fmt.Fprint(cmd.OutOrStdout(), shell.Export(a.cfg.EnvVar, path, shellType))
		return nil
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "프리셋 '%s' 활성화 중...\n", name)
	fmt.Fprintf(out, "%s=%s\n", a.cfg.EnvVar, path)

	a.Logger.Debug("activating preset", zap.String("preset", name), zap.String("path", path))
	return a.launcher().Launch(cmd.Context(), path)
}
