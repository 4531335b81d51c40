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
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/ajroetker/go-shortvec/queue"
	"github.com/ajroetker/go-shortvec/svec"
	vmath "github.com/ajroetker/go-shortvec/svec/contrib/math"
)

func newRunCmd(cfg *Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the example vector program",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			q := queue.New()
			defer q.Close()

			steps, err := example(cmd.Context(), q)
			if err != nil {
				return errWithCode(fmt.Errorf("run: %w", err), exitError)
			}
			return writeSteps(cmd.OutOrStdout(), steps, cfg)
		},
	}
	cmd.Flags().StringVar(&cfg.Format, "format", "%f", "fmt verb for float lanes")
	return cmd
}

// step is one printed vector of the example program.
type step struct {
	Label string `json:"label"`
	Lanes any    `json:"lanes"`

	line func(verb string) string
}

func floatStep(label string, v svec.Vec[float32]) step {
	return step{Label: label, Lanes: v.Slice(), line: func(verb string) string { return v.Join(" ", verb) }}
}

func intStep(label string, v svec.Vec[int32]) step {
	return step{Label: label, Lanes: v.Slice(), line: func(string) string { return v.Join(" ", "%d") }}
}

// example builds a mixed vector from scalars and a splat, applies math
// functions and FMA, compares, and then reads and writes through swizzles.
// The whole program runs as a single task on q.
func example(ctx context.Context, q *queue.Queue) ([]step, error) {
	var steps []step
	err := q.SingleTask(ctx, func() error {
		v1 := svec.Splat[float32](4, 1)
		v2, err := svec.New[float32](8, svec.Scalar[float32](1), svec.Scalar[float32](2), svec.Scalar[float32](3),
			v1, svec.Scalar[float32](4))
		if err != nil {
			return err
		}
		steps = append(steps,
			floatStep("v1", v1),
			floatStep("v2", v2),
			floatStep("sin(v2)", vmath.Sin(v2)),
		)

		v2 = svec.FMA(v2, v2, v2)
		steps = append(steps,
			floatStep("v2+v2", svec.Add(v2, v2)),
			floatStep("cos(v2)", vmath.Cos(v2)),
			floatStep("sin(v2)", vmath.Sin(v2)),
			intStep("cos(v2)<sin(v2)", svec.MaskVec[int32](svec.LessThan(vmath.Cos(v2), vmath.Sin(v2)))),
		)

		lo := v2.Lo().Vec()
		steps = append(steps, floatStep("v2.lo()", lo))

		v3 := lo.WZYX().Vec()
		steps = append(steps, floatStep("v3 = lo.wzyx()", v3))

		v3.XWYZ().Assign(lo.XXYY())
		steps = append(steps, floatStep("v3.xwyz() = lo.xxyy()", v3))

		v3.YXZW().Lo().Assign(lo.XXYY().Hi())
		steps = append(steps, floatStep("v3.yxzw().lo() = lo.xxyy().hi()", v3))
		return nil
	})
	slog.Debug("example program finished", "steps", len(steps), "level", svec.CurrentName())
	return steps, err
}

func writeSteps(w io.Writer, steps []step, cfg *Config) error {
	if cfg.JSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(steps); err != nil {
			return fmt.Errorf("encoding json output: %w", err)
		}
		return nil
	}
	for _, s := range steps {
		slog.Info(s.Label)
		if _, err := fmt.Fprintln(w, s.line(cfg.Format)); err != nil {
			return err
		}
	}
	return nil
}
