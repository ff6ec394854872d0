package preset

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Ext는 프리셋 파일 확장자다.
const Ext = ".toml"

// ErrNotFound는 요청한 프리셋 파일이 없을 때의 sentinel error다.
var ErrNotFound = errors.New("preset not found")

// List는 dir 안의 .toml 파일 이름(확장자 제외)을 디렉토리 순회 순서대로 반환한다.
func List(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("preset.List: %w", err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if filepath.Ext(e.Name()) != Ext {
			continue
		}
		stem := strings.TrimSuffix(e.Name(), Ext)
		if stem == "" {
			continue
		}
		names = append(names, stem)
	}
	return names, nil
}

// Path는 프리셋 이름에 해당하는 파일 경로 <dir>/<name>.toml을 반환한다.
func Path(dir, name string) string {
	return filepath.Join(dir, name+Ext)
}

// Resolve는 프리셋 파일 경로를 만들고 존재 여부를 확인한다.
// List에 나오지 않는 이름(빈 이름, 경로 구분자 포함)은 없는 프리셋으로 취급한다.
func Resolve(dir, name string) (string, error) {
	if name == "" || strings.ContainsRune(name, filepath.Separator) || strings.ContainsRune(name, '/') {
		return "", fmt.Errorf("%w: '%s' in %s", ErrNotFound, name, dir)
	}
	path := Path(dir, name)
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("%w: '%s' in %s", ErrNotFound, name, dir)
		}
		return "", fmt.Errorf("preset.Resolve: %w", err)
	}
	return path, nil
}

// Current는 활성 프리셋 변수가 dir 안의 프리셋을 가리키면 그 이름을 반환한다.
func Current(env Env, envVar, dir string) (string, bool) {
	active, ok := env.LookupEnv(envVar)
	if !ok || active == "" {
		return "", false
	}
	if filepath.Dir(active) != filepath.Clean(dir) || filepath.Ext(active) != Ext {
		return "", false
	}
	return strings.TrimSuffix(filepath.Base(active), Ext), true
}
