package preset

import "os"

// Env는 환경변수 읽기/쓰기를 추상화한다.
type Env interface {
	LookupEnv(key string) (string, bool)
	Setenv(key, value string) error
}

// OSEnv는 현재 프로세스 환경변수를 사용하는 Env 구현이다.
type OSEnv struct{}

var _ Env = OSEnv{}

// LookupEnv는 os.LookupEnv를 호출한다.
func (OSEnv) LookupEnv(key string) (string, bool) { return os.LookupEnv(key) }

// Setenv는 os.Setenv를 호출한다.
func (OSEnv) Setenv(key, value string) error { return os.Setenv(key, value) }

// MapEnv는 메모리 기반 Env 구현이다.
type MapEnv map[string]string

var _ Env = MapEnv(nil)

// LookupEnv는 key에 해당하는 값을 반환한다.
func (m MapEnv) LookupEnv(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

// Setenv는 key에 value를 기록한다.
func (m MapEnv) Setenv(key, value string) error {
	m[key] = value
	return nil
}
