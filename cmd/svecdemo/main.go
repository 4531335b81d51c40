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

// Package main implements svecdemo, a small driver for the svec package: it
// runs the example vector program, checks YAML conformance cases and reports
// the detected CPU features.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// Config holds the command-line options shared by all subcommands.
type Config struct {
	Verbose bool     // enables debug logging on stderr
	JSON    bool     // JSON output and JSON logs
	Format  string   // fmt verb used for float lanes
	Cases   []string // case files or directories for check
}

const (
	exitCasesFailed = 1
	exitError       = 2
)

// Set via ldflags during build.
var version = "dev"

func main() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		if err.Error() != "" {
			fmt.Fprintln(os.Stderr, err.Error())
		}
		var cErr codedError
		if errors.As(err, &cErr) {
			os.Exit(cErr.code)
		}
		os.Exit(exitError)
	}
}

func newRootCmd() *cobra.Command {
	cfg := &Config{}
	root := &cobra.Command{
		Use:   "svecdemo",
		Short: "Exercise short vectors and swizzles",
		Example: `  svecdemo run                        # Run the example vector program
  svecdemo run --format %.3f          # Print lanes with three decimals
  svecdemo check internal/cases/testdata
  svecdemo info --json`,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			setupLogging(cmd.ErrOrStderr(), cfg)
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version,
	}

	root.PersistentFlags().BoolVarP(&cfg.Verbose, "verbose", "v", false, "Enable verbose output")
	root.PersistentFlags().BoolVar(&cfg.JSON, "json", false, "Output in JSON format")

	root.AddCommand(newRunCmd(cfg), newCheckCmd(cfg), newInfoCmd(cfg))
	return root
}

// setupLogging discards logs unless verbose is set.
func setupLogging(w io.Writer, cfg *Config) {
	slog.SetDefault(slog.New(slog.DiscardHandler))
	if !cfg.Verbose {
		return
	}
	opts := &slog.HandlerOptions{Level: slog.LevelDebug}
	var handler slog.Handler = slog.NewTextHandler(w, opts)
	if cfg.JSON {
		handler = slog.NewJSONHandler(w, opts)
	}
	slog.SetDefault(slog.New(handler))
}

func errWithCode(err error, code int) error {
	return codedError{err: err, code: code}
}

type codedError struct {
	err  error
	code int
}

func (e codedError) Error() string {
	if e.err != nil {
		return e.err.Error()
	}
	return ""
}

func (e codedError) Unwrap() error { return e.err }
