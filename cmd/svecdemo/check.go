// Copyright 2025 go-shortvec Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ajroetker/go-shortvec/internal/cases"
)

func newCheckCmd(cfg *Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [paths...]",
		Short: "Evaluate YAML conformance cases",
		Long: `check loads conformance cases from YAML files or directories and evaluates
each one against the svec package. It exits with status 1 when any case fails.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			paths := append(append([]string{}, cfg.Cases...), args...)
			if len(paths) == 0 {
				return errWithCode(errors.New("check: no case files given"), exitError)
			}

			slog.Info("loading cases", "paths", paths)
			cs, err := cases.LoadAll(paths...)
			if err != nil {
				return errWithCode(fmt.Errorf("load cases: %w", err), exitError)
			}
			slog.Info("loaded cases", "num", len(cs))

			results := cases.RunAll(cs)
			if err := writeResults(cmd.OutOrStdout(), results, cfg); err != nil {
				return errWithCode(fmt.Errorf("format results: %w", err), exitError)
			}
			if failed := cases.Failed(results); len(failed) > 0 {
				return errWithCode(fmt.Errorf("%d of %d cases failed", len(failed), len(results)), exitCasesFailed)
			}
			return nil
		},
	}
	cmd.Flags().StringSliceVar(&cfg.Cases, "cases", nil, "Case files or directories")
	return cmd
}

type jResult struct {
	Name   string    `json:"name"`
	File   string    `json:"file"`
	Passed bool      `json:"passed"`
	Lanes  []float64 `json:"lanes,omitempty"`
	Mask   []bool    `json:"mask,omitempty"`
	Error  string    `json:"error,omitempty"`
	Diff   string    `json:"diff,omitempty"`
}

func writeResults(w io.Writer, results []cases.Result, cfg *Config) error {
	if cfg.JSON {
		out := make([]jResult, 0, len(results))
		for _, r := range results {
			j := jResult{
				Name:   r.Case.Name,
				File:   r.Case.Path,
				Passed: r.Passed(),
				Lanes:  r.Lanes,
				Mask:   r.Mask,
				Diff:   r.Diff,
			}
			if r.Err != nil {
				j.Error = r.Err.Error()
			}
			out = append(out, j)
		}
		data, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling json output: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	}

	var b strings.Builder
	passed := 0
	for _, r := range results {
		if r.Passed() {
			passed++
			if cfg.Verbose {
				fmt.Fprintf(&b, "ok   %s\n", r.Case.Name)
			}
			continue
		}
		fmt.Fprintf(&b, "FAIL %s (%s)\n", r.Case.Name, r.Case.Path)
		for _, line := range strings.Split(strings.TrimRight(r.Diff, "\n"), "\n") {
			fmt.Fprintf(&b, "     %s\n", line)
		}
	}
	fmt.Fprintf(&b, "%d passed, %d failed\n", passed, len(results)-passed)
	_, err := io.WriteString(w, b.String())
	return err
}
