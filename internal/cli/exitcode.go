package cli

import (
	"errors"
)

// ExitCode는 starshift의 종료 코드다.
type ExitCode int

const (
	// ExitSuccess는 정상 종료다. list, 명령 없음도 포함한다.
	ExitSuccess ExitCode = 0
	// ExitGeneral는 일반 에러다 (셸 실행 실패, HOME 없음).
	ExitGeneral ExitCode = 1
	// ExitPresetNotFound는 요청한 프리셋이 없을 때다.
	ExitPresetNotFound ExitCode = 1
	// ExitConfigError는 설정 파일 오류다.
	ExitConfigError ExitCode = 2
)

// MapExitCode는 sentinel error를 기반으로 적절한 종료 코드를 반환한다.
func MapExitCode(err error) ExitCode {
	if err == nil {
		return ExitSuccess
	}
	switch {
	case errors.Is(err, ErrPresetNotFound):
		return ExitPresetNotFound
	case errors.Is(err, ErrConfig):
		return ExitConfigError
	default:
		return ExitGeneral
	}
}
