package shell

import (
	"fmt"
	"strings"
)

// Export는 프리셋 경로를 envVar에 설정하는 shell 명령을 생성한다.
// 값은 작은따옴표로 감싸 eval 시 $나 `가 확장되지 않는다.
func Export(envVar, presetPath, shellType string) string {
	switch shellType {
	case "fish":
		return fmt.Sprintf("set -gx %s %s\n", envVar, fishQuote(presetPath))
	default: // bash, zsh, sh
		return fmt.Sprintf("export %s=%s\n", envVar, posixQuote(presetPath))
	}
}

// Unset은 envVar를 해제하는 shell 명령을 생성한다.
func Unset(envVar, shellType string) string {
	switch shellType {
	case "fish":
		return fmt.Sprintf("set -e %s\n", envVar)
	default:
		return fmt.Sprintf("unset %s\n", envVar)
	}
}

// posixQuote는 s를 POSIX 셸의 작은따옴표 문자열로 만든다. 내부의 작은따옴표는 따옴표 밖에서 백슬래시로 이스케이프한다.
func posixQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

// fishQuote는 s를 fish의 작은따옴표 문자열로 만든다.
// fish는 작은따옴표 안에서도 \\ 와 \' 를 해석한다.
func fishQuote(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `'`, `\'`)
	return "'" + r.Replace(s) + "'"
}
