package cli

import (
	"fmt"
	"io"

	"github.com/hbjs97/starshift/internal/doctor"
	"github.com/spf13/cobra"
)

func (a *App) newDoctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "환경 설정을 진단한다",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			results := doctor.RunAll(cmd.Context(), a.Commander, a.Env, doctor.Options{
				ConfigPath: a.CfgPath,
				ConfigErr:  a.cfgErr,
				PresetDir:  a.cfg.PresetDir,
				Shell:      a.cfg.Shell,
				EnvVar:     a.cfg.EnvVar,
				Minimal:    a.cfg.Toggle.Minimal,
				Verbose:    a.cfg.Toggle.Verbose,
				Toggle:     a.cfg.IsToggleEnabled(),
			})
			printDiagResults(cmd.OutOrStdout(), results)
			return nil
		},
	}
}

// printDiagResults는 진단 결과 목록을 출력한다.
func printDiagResults(w io.Writer, results []doctor.DiagResult) {
	for _, r := range results {
		icon := statusIcon(r.Status)
		fmt.Fprintf(w, "  [%s] %s: %s\n", icon, r.Name, r.Message)
		if r.Fix != "" {
			fmt.Fprintf(w, "      Fix: %s\n", r.Fix)
		}
	}
}

func statusIcon(s doctor.Status) string {
	switch s {
	case doctor.StatusOK:
		return "OK"
	case doctor.StatusWarn:
		return "!!"
	case doctor.StatusFail:
		return "FAIL"
	default:
		return "??"
	}
}
