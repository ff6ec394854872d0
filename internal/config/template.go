package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Template은 starshift init이 생성하는 기본 config.toml 내용이다.
const Template = `# starshift configuration file

version = 1
# preset_dir = "~/.config/starship_presets"
# shell = "zsh"
# env_var = "STARSHIP_CONFIG"
# enable_toggle = true

[toggle]
minimal = "minimal"
verbose = "verbose"
`

// WriteTemplate은 path에 설정 템플릿을 기록한다 (0600 권한).
// 파일이 이미 있고 force가 false이면 에러를 반환한다.
func WriteTemplate(path string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("config.WriteTemplate: 설정 파일이 이미 존재합니다: %s", path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("config.WriteTemplate: 디렉토리 생성 실패: %w", err)
	}
	if err := os.WriteFile(path, []byte(Template), 0600); err != nil {
		return fmt.Errorf("config.WriteTemplate: 설정 파일 생성 실패: %w", err)
	}
	return nil
}
