package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// ErrConfig는 설정 파일 오류를 나타내는 sentinel error다.
var ErrConfig = errors.New("config error")

const (
	// DefaultEnvVar는 starship이 설정 파일 위치를 찾는 환경변수다.
	DefaultEnvVar = "STARSHIP_CONFIG"
	// DefaultShell은 프리셋 적용 후 실행할 기본 셸이다.
	DefaultShell = "zsh"
	// DefaultMinimal은 toggle의 기본 minimal 프리셋 이름이다.
	DefaultMinimal = "minimal"
	// DefaultVerbose는 toggle의 기본 verbose 프리셋 이름이다.
	DefaultVerbose = "verbose"
)

// Config는 starshift 설정 파일의 최상위 구조체다.
type Config struct {
	Version      int    `toml:"version"`
	PresetDir    string `toml:"preset_dir"`
	Shell        string `toml:"shell"`
	EnvVar       string `toml:"env_var"`
	EnableToggle *bool  `toml:"enable_toggle"`
	Toggle       Toggle `toml:"toggle"`
}

// Toggle은 toggle 명령이 오가는 두 프리셋이다.
type Toggle struct {
	Minimal string `toml:"minimal"`
	Verbose string `toml:"verbose"`
}

// DefaultPresetDir는 홈 디렉토리 기준 기본 프리셋 디렉토리를 반환한다.
func DefaultPresetDir(home string) string {
	return filepath.Join(home, ".config", "starship_presets")
}

// DefaultPath는 홈 디렉토리 기준 기본 설정 파일 경로를 반환한다.
func DefaultPath(home string) string {
	return filepath.Join(home, ".config", "starshift", "config.toml")
}

// Default는 설정 파일 없이 사용할 기본 설정을 반환한다.
func Default(home string) *Config {
	cfg := &Config{Version: 1}
	cfg.applyDefaults(home)
	return cfg
}

// Load는 config.toml을 파싱하여 Config를 반환한다.
// 파일이 없으면 기본 설정을 반환한다.
func Load(path, home string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(home), nil
		}
		return nil, fmt.Errorf("config.Load: %w: %w", ErrConfig, err)
	}
	cfg.applyDefaults(home)
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// IsToggleEnabled는 enable_toggle 설정값을 반환한다.
func (c *Config) IsToggleEnabled() bool {
	if c.EnableToggle == nil {
		return true
	}
	return *c.EnableToggle
}

func (c *Config) applyDefaults(home string) {
	if c.Version == 0 {
		c.Version = 1
	}
	if c.PresetDir == "" {
		c.PresetDir = DefaultPresetDir(home)
	}
	c.PresetDir = ExpandHome(c.PresetDir, home)
	if c.Shell == "" {
		c.Shell = DefaultShell
	}
	if c.EnvVar == "" {
		c.EnvVar = DefaultEnvVar
	}
	if c.EnableToggle == nil {
		t := true
		c.EnableToggle = &t
	}
	if c.Toggle.Minimal == "" {
		c.Toggle.Minimal = DefaultMinimal
	}
	if c.Toggle.Verbose == "" {
		c.Toggle.Verbose = DefaultVerbose
	}
}

func (c *Config) validate() error {
	if c.Version != 1 {
		return fmt.Errorf("config.Load: %w: 지원하지 않는 version %d", ErrConfig, c.Version)
	}
	if c.Toggle.Minimal == c.Toggle.Verbose {
		return fmt.Errorf("config.Load: %w: toggle.minimal과 toggle.verbose가 같습니다 (%s)", ErrConfig, c.Toggle.Minimal)
	}
	for _, name := range []string{c.Toggle.Minimal, c.Toggle.Verbose} {
		if strings.ContainsRune(name, filepath.Separator) {
			return fmt.Errorf("config.Load: %w: toggle 프리셋 이름에 경로 구분자를 쓸 수 없습니다: %s", ErrConfig, name)
		}
	}
	return nil
}

// ExpandHome은 "~" 또는 "~/"로 시작하는 경로를 home 기준으로 확장한다.
func ExpandHome(path, home string) string {
	if path == "~" {
		return home
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(home, path[2:])
	}
	return path
}
