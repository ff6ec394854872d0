package cli

import (
	"errors"

	"github.com/hbjs97/starshift/internal/config"
	"github.com/hbjs97/starshift/internal/preset"
	"github.com/hbjs97/starshift/internal/shell"
)

// 각 도메인 패키지의 sentinel error를 CLI 레이어에서 편의상 re-export한다.
var (
	// ErrPresetNotFound는 요청한 프리셋 파일이 없을 때의 sentinel error다.
	ErrPresetNotFound = preset.ErrNotFound
	// ErrLaunch는 셸 프로세스 생성 실패 sentinel error다.
	ErrLaunch = shell.ErrLaunch
	// ErrConfig는 설정 파일 오류를 나타내는 sentinel error다.
	ErrConfig = config.ErrConfig
)

var (
	// ErrNoHome는 HOME 환경변수가 없을 때의 sentinel error다.
	ErrNoHome = errors.New("HOME is not set")
	// ErrToggleDisabled는 설정에서 toggle이 꺼져 있을 때의 sentinel error다.
	ErrToggleDisabled = errors.New("toggle is disabled (enable_toggle = false)")
)
