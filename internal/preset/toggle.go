package preset

// Toggle은 envVar의 현재 값으로 다음 프리셋 경로를 결정한다.
// 현재 값이 minimal과 정확히 같으면 verbose, 그 외(미설정 포함)에는 minimal이다.
func Toggle(env Env, envVar, minimal, verbose string) string {
	current, _ := env.LookupEnv(envVar)
	if current == minimal {
		return verbose
	}
	return minimal
}
