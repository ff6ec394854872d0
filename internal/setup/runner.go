package setup

import (
	"fmt"
	"io"
	"os"

	"github.com/hbjs97/starshift/internal/config"
)

// Runner는 starshift init의 진입점이다.
type Runner struct {
	CfgPath    string
	PresetDir  string
	FormRunner FormRunner
	Force      bool
	Out        io.Writer
}

// Run은 프리셋 디렉토리와 설정 파일을 준비한다.
func (r *Runner) Run() error {
	if err := os.MkdirAll(r.PresetDir, 0700); err != nil {
		return fmt.Errorf("setup.Run: 프리셋 디렉토리 생성 실패: %w", err)
	}
	fmt.Fprintf(r.Out, "프리셋 디렉토리: %s\n", r.PresetDir)

	_, err := os.Stat(r.CfgPath)
	switch {
	case os.IsNotExist(err):
	case err != nil:
		return fmt.Errorf("setup.Run: %w", err)
	case !r.Force:
		ok, err := r.FormRunner.RunConfirm(fmt.Sprintf("%s 파일을 덮어쓰시겠습니까?", r.CfgPath))
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(r.Out, "기존 설정 파일을 유지합니다.")
			return nil
		}
	}

	if err := config.WriteTemplate(r.CfgPath, true); err != nil {
		return err
	}
	fmt.Fprintf(r.Out, "설정 파일이 생성되었습니다: %s\n", r.CfgPath)
	if sh := DetectShell(); sh != "" && sh != config.DefaultShell {
		fmt.Fprintf(r.Out, "현재 셸은 %s 입니다. 필요하면 config.toml에 shell = %q 를 설정하세요.\n", sh, sh)
	}
	return nil
}
