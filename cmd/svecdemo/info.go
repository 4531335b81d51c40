package main

import (
	"encoding/json"
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/ajroetker/go-shortvec/svec"
)

type infoReport struct {
	Version string `json:"version"`
	GOARCH  string `json:"goarch"`
	Level   string `json:"level"`
	FMA     bool   `json:"hardware_fma"`
	NoSimd  bool   `json:"no_simd"`
	Widths  []int  `json:"widths"`
}

func newInfoCmd(cfg *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Report the detected CPU features",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			r := infoReport{
				Version: version,
				GOARCH:  runtime.GOARCH,
				Level:   svec.CurrentName(),
				FMA:     svec.HasHardwareFMA(),
				NoSimd:  svec.NoSimdEnv(),
			}
			for n := 1; n <= svec.MaxWidth; n++ {
				if svec.ValidWidth(n) {
					r.Widths = append(r.Widths, n)
				}
			}

			w := cmd.OutOrStdout()
			if cfg.JSON {
				data, err := json.MarshalIndent(r, "", "  ")
				if err != nil {
					return errWithCode(fmt.Errorf("marshaling json output: %w", err), exitError)
				}
				fmt.Fprintln(w, string(data))
				return nil
			}
			fmt.Fprintf(w, "svecdemo %s (%s)\n", r.Version, r.GOARCH)
			fmt.Fprintf(w, "SIMD level:    %s\n", r.Level)
			fmt.Fprintf(w, "hardware FMA:  %t\n", r.FMA)
			fmt.Fprintf(w, "SVEC_NO_SIMD:  %t\n", r.NoSimd)
			fmt.Fprintf(w, "widths:        %v\n", r.Widths)
			return nil
		},
	}
}
