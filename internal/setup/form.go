package setup

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
)

// ErrNoPresets는 선택할 프리셋이 없을 때의 sentinel error다.
var ErrNoPresets = errors.New("no presets to select")

// HuhFormRunner는 charmbracelet/huh 기반의 FormRunner 구현이다.
type HuhFormRunner struct{}

var _ FormRunner = (*HuhFormRunner)(nil)

// RunPresetSelect는 프리셋 선택 UI를 표시한다.
func (h *HuhFormRunner) RunPresetSelect(names []string, current string) (string, error) {
	if len(names) == 0 {
		return "", fmt.Errorf("setup.RunPresetSelect: %w", ErrNoPresets)
	}

	options := make([]huh.Option[string], 0, len(names))
	for _, n := range names {
		label := n
		if n == current {
			label = n + " (현재)"
		}
		options = append(options, huh.NewOption(label, n))
	}

	selected := current
	form := huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title("프리셋을 선택하세요").
			Options(options...).
			Value(&selected),
	))
	if err := form.Run(); err != nil {
		return "", fmt.Errorf("setup.RunPresetSelect: %w", err)
	}
	return selected, nil
}

// RunConfirm은 확인 프롬프트를 표시한다.
func (h *HuhFormRunner) RunConfirm(message string) (bool, error) {
	var confirmed bool
	form := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().
			Title(message).
			Affirmative("예").
			Negative("아니오").
			Value(&confirmed),
	))
	if err := form.Run(); err != nil {
		return false, fmt.Errorf("setup.RunConfirm: %w", err)
	}
	return confirmed, nil
}
