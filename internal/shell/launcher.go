package shell

import (
	"context"
	"errors"
	"fmt"

	"github.com/hbjs97/starshift/internal/cmdexec"
	"go.uber.org/zap"
)

// ErrLaunch는 셸 프로세스를 생성하지 못했을 때의 sentinel error다.
var ErrLaunch = errors.New("failed to launch shell")

// Launcher는 프리셋을 적용한 대화형 셸 세션을 실행한다.
type Launcher interface {
	// Launch는 presetPath를 활성 프리셋 변수로 설정한 셸을 실행하고 종료까지 대기한다.
	Launch(ctx context.Context, presetPath string) error
}

// ExecLauncher는 `<shell> -c "exec <shell>"` 형태로 셸을 실행하는 Launcher다.
type ExecLauncher struct {
	Commander cmdexec.Commander
	Shell     string
	EnvVar    string
	Logger    *zap.Logger
}

var _ Launcher = (*ExecLauncher)(nil)

// NewExecLauncher는 ExecLauncher를 생성한다. logger가 nil이면 no-op logger를 쓴다.
func NewExecLauncher(cmd cmdexec.Commander, shellName, envVar string, logger *zap.Logger) *ExecLauncher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExecLauncher{
		Commander: cmd,
		Shell:     shellName,
		EnvVar:    envVar,
		Logger:    logger,
	}
}

// Launch는 셸을 실행한다. 셸이 스스로를 exec로 대체하므로 사용자가 세션을 끝낼 때까지 반환하지 않는다.
func (l *ExecLauncher) Launch(ctx context.Context, presetPath string) error {
	env := map[string]string{l.EnvVar: presetPath}
	args := []string{"-c", "exec " + l.Shell}

	l.Logger.Debug("launching shell",
		zap.String("shell", l.Shell),
		zap.Strings("args", args),
		zap.String("env_var", l.EnvVar),
		zap.String("preset_path", presetPath),
	)

	if err := l.Commander.RunInteractive(ctx, env, l.Shell, args...); err != nil {
		l.Logger.Debug("shell launch failed", zap.Error(err))
		return fmt.Errorf("shell.Launch: %w: %s: %w", ErrLaunch, l.Shell, err)
	}

	l.Logger.Debug("shell exited", zap.String("shell", l.Shell))
	return nil
}
