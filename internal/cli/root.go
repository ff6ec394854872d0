package cli

import (
	"fmt"

	"github.com/hbjs97/starshift/internal/cmdexec"
	"github.com/hbjs97/starshift/internal/config"
	"github.com/hbjs97/starshift/internal/preset"
	"github.com/hbjs97/starshift/internal/setup"
	"github.com/hbjs97/starshift/internal/shell"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const guidance = `명령이 주어지지 않았습니다.
프리셋 목록은 list, 프리셋 선택은 set <preset> 을 사용하세요.
예시: starshift set mypreset
`

// App은 starshift CLI의 의존성을 묶는다. 테스트에서는 각 필드를 fake로 교체한다.
type App struct {
	Commander  cmdexec.Commander
	Env        preset.Env
	FormRunner setup.FormRunner
	// Launcher가 nil이면 설정의 shell/env_var로 ExecLauncher를 만든다.
	Launcher shell.Launcher
	Logger   *zap.Logger

	CfgPath   string
	PresetDir string
	Verbose   bool

	home string
	cfg  *config.Config
	// cfgErr는 설정 파일 로드 실패다. cfg는 이때 기본값이다.
	cfgErr error
}

// NewApp은 실제 프로세스 환경을 사용하는 App을 생성한다.
func NewApp() *App {
	return &App{
		Commander:  &cmdexec.RealCommander{},
		Env:        preset.OSEnv{},
		FormRunner: &setup.HuhFormRunner{},
	}
}

// NewRootCmd는 starshift CLI의 루트 명령을 생성한다.
func (a *App) NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "starshift",
		Short:        "starship 프리셋 매니저",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.prepare()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.Logger != nil {
				_ = a.Logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprint(cmd.OutOrStdout(), guidance)
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&a.CfgPath, "config", a.CfgPath, "설정 파일 경로 (기본값: ~/.config/starshift/config.toml)")
	cmd.PersistentFlags().StringVar(&a.PresetDir, "preset-dir", a.PresetDir, "프리셋 디렉토리 (기본값: ~/.config/starship_presets)")
	cmd.PersistentFlags().BoolVar(&a.Verbose, "verbose", a.Verbose, "상세 출력")

	cmd.AddCommand(
		a.newListCmd(),
		a.newSetCmd(),
		a.newToggleCmd(),
		a.newCurrentCmd(),
		a.newPickCmd(),
		a.newDoctorCmd(),
		a.newInitCmd(),
		a.newResetCmd(),
	)
	return cmd
}

// prepare는 HOME, 로거, 설정 파일을 순서대로 준비한다.
func (a *App) prepare() error {
	home, ok := a.Env.LookupEnv("HOME")
	if !ok || home == "" {
		return fmt.Errorf("cli: %w", ErrNoHome)
	}
	a.home = home

	if a.Logger == nil {
		logger, err := newLogger(a.Verbose)
		if err != nil {
			return fmt.Errorf("cli: 로거 초기화 실패: %w", err)
		}
		a.Logger = logger
	}

	if a.CfgPath == "" {
		a.CfgPath = config.DefaultPath(home)
	}
	cfg, err := config.Load(a.CfgPath, home)
	a.cfgErr = nil
	if err != nil {
		// init과 doctor는 깨진 설정에서도 동작해야 하므로 기본값으로 계속한다.
		a.Logger.Debug("config load failed, using defaults", zap.Error(err))
		a.cfgErr = err
		cfg = config.Default(home)
	}
	if a.PresetDir != "" {
		cfg.PresetDir = config.ExpandHome(a.PresetDir, home)
	}
	a.cfg = cfg

	a.Logger.Debug("config loaded",
		zap.String("config", a.CfgPath),
		zap.String("preset_dir", cfg.PresetDir),
		zap.String("shell", cfg.Shell),
		zap.Bool("toggle", cfg.IsToggleEnabled()),
	)
	return nil
}

// requireConfig는 설정 파일 로드 실패를 반환한다. 설정에 의존하는 명령이 먼저 호출한다.
func (a *App) requireConfig() error {
	return a.cfgErr
}

func (a *App) launcher() shell.Launcher {
	if a.Launcher != nil {
		return a.Launcher
	}
	return shell.NewExecLauncher(a.Commander, a.cfg.Shell, a.cfg.EnvVar, a.Logger)
}

// newLogger는 --verbose일 때만 stderr로 debug 로그를 남기는 로거를 만든다.
func newLogger(verbose bool) (*zap.Logger, error) {
	if !verbose {
		return zap.NewNop(), nil
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	cfg.DisableStacktrace = true
	return cfg.Build()
}
