package doctor

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/hbjs97/starshift/internal/cmdexec"
	"github.com/hbjs97/starshift/internal/preset"
)

// Status는 진단 결과 상태다.
type Status string

const (
	// StatusOK는 정상 상태다.
	StatusOK Status = "OK"
	// StatusWarn는 경고 상태다.
	StatusWarn Status = "WARN"
	// StatusFail는 실패 상태다.
	StatusFail Status = "FAIL"
)

// DiagResult는 하나의 진단 결과다.
type DiagResult struct {
	Name    string
	Status  Status
	Message string
	Fix     string
}

// Options는 RunAll이 검사할 대상이다.
type Options struct {
	ConfigPath string
	// ConfigErr는 설정 파일 로드 결과다. 나머지 필드는 이때 기본값이다.
	ConfigErr error
	PresetDir string
	Shell     string
	EnvVar    string
	Minimal   string
	Verbose   string
	Toggle    bool
}

// CheckConfig는 설정 파일 로드 결과를 진단 결과로 바꾼다.
func CheckConfig(path string, loadErr error) DiagResult {
	if loadErr != nil {
		return DiagResult{
			Name:    "config",
			Status:  StatusFail,
			Message: loadErr.Error(),
			Fix:     "starshift init --force",
		}
	}
	return DiagResult{
		Name:    "config",
		Status:  StatusOK,
		Message: path,
	}
}

// CheckPresetDir는 프리셋 디렉토리를 읽을 수 있고 프리셋이 있는지 확인한다.
func CheckPresetDir(dir string) DiagResult {
	names, err := preset.List(dir)
	if err != nil {
		return DiagResult{
			Name:    "preset_dir",
			Status:  StatusFail,
			Message: fmt.Sprintf("%s 읽기 실패", dir),
			Fix:     "starshift init 실행",
		}
	}
	if len(names) == 0 {
		return DiagResult{
			Name:    "preset_dir",
			Status:  StatusWarn,
			Message: fmt.Sprintf("%s 에 프리셋 없음", dir),
			Fix:     fmt.Sprintf("starship preset <name> -o %s", preset.Path(dir, "<name>")),
		}
	}
	return DiagResult{
		Name:    "preset_dir",
		Status:  StatusOK,
		Message: fmt.Sprintf("프리셋 %d개", len(names)),
	}
}

// CheckShell은 셸 바이너리 존재 여부를 확인한다.
func CheckShell(ctx context.Context, cmd cmdexec.Commander, shellName string) DiagResult {
	out, err := cmd.Run(ctx, shellName, "--version")
	if err != nil {
		return DiagResult{
			Name:    "shell",
			Status:  StatusFail,
			Message: fmt.Sprintf("%s 없음", shellName),
			Fix:     "config.toml의 shell 값을 설치된 셸로 변경",
		}
	}
	return DiagResult{
		Name:    "shell",
		Status:  StatusOK,
		Message: strings.TrimSpace(string(out)),
	}
}

// CheckTogglePresets는 toggle 대상 프리셋 파일이 있는지 확인한다.
func CheckTogglePresets(dir, minimal, verbose string) []DiagResult {
	var results []DiagResult
	for _, name := range []string{minimal, verbose} {
		r := DiagResult{Name: "toggle_" + name}
		if _, err := preset.Resolve(dir, name); err != nil {
			r.Status = StatusWarn
			r.Message = fmt.Sprintf("%s 없음", preset.Path(dir, name))
			r.Fix = "프리셋 파일을 만들거나 config.toml의 [toggle] 값을 변경"
		} else {
			r.Status = StatusOK
			r.Message = preset.Path(dir, name)
		}
		results = append(results, r)
	}
	return results
}

// CheckActive는 활성 프리셋 변수가 존재하는 파일을 가리키는지 확인한다.
func CheckActive(env preset.Env, envVar string) DiagResult {
	active, ok := env.LookupEnv(envVar)
	if !ok || active == "" {
		return DiagResult{
			Name:    "active",
			Status:  StatusOK,
			Message: fmt.Sprintf("%s 미설정 (starship 기본 설정 사용)", envVar),
		}
	}
	if _, err := os.Stat(active); err != nil {
		return DiagResult{
			Name:    "active",
			Status:  StatusWarn,
			Message: fmt.Sprintf("%s=%s 파일 없음", envVar, active),
			Fix:     "starshift set <preset> 실행",
		}
	}
	return DiagResult{
		Name:    "active",
		Status:  StatusOK,
		Message: fmt.Sprintf("%s=%s", envVar, active),
	}
}

// RunAll은 모든 진단을 실행한다.
func RunAll(ctx context.Context, cmd cmdexec.Commander, env preset.Env, opts Options) []DiagResult {
	var results []DiagResult
	results = append(results, CheckConfig(opts.ConfigPath, opts.ConfigErr))
	results = append(results, CheckPresetDir(opts.PresetDir))
	results = append(results, CheckShell(ctx, cmd, opts.Shell))
	if opts.Toggle {
		results = append(results, CheckTogglePresets(opts.PresetDir, opts.Minimal, opts.Verbose)...)
	}
	results = append(results, CheckActive(env, opts.EnvVar))
	return results
}
