package setup

import (
	"os"
	"path/filepath"
)

// DetectShell은 현재 사용자의 셸을 감지한다.
func DetectShell() string {
	sh := os.Getenv("SHELL")
	if sh == "" {
		return ""
	}
	return filepath.Base(sh)
}
