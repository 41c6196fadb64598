/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"io"
	"time"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/carlonluca/isogeometric-analysis/basis"
	"github.com/carlonluca/isogeometric-analysis/bezier"
	"github.com/carlonluca/isogeometric-analysis/bspline"
	"github.com/carlonluca/isogeometric-analysis/nurbs"
	"github.com/carlonluca/isogeometric-analysis/sampling"
	"github.com/carlonluca/isogeometric-analysis/utils"
)

type benchCase struct {
	name string
	run  func(n, np int) error
}

func curveBench(name string, c sampling.CurveEvaluator) benchCase {
	return benchCase{name, func(n, np int) (err error) {
		a, b := sampling.CurveDomain(c)
		_, err = sampling.ParallelSampleCurve(c, a, b, n, np)
		return
	}}
}

func surfaceBench(name string, s sampling.SurfaceEvaluator) benchCase {
	return benchCase{name, func(n, np int) (err error) {
		dXi, dEta := sampling.SurfaceDomain(s)
		_, err = sampling.ParallelSampleSurface(s, dXi, dEta, n, n, np)
		return
	}}
}

func benchCases() (cases []benchCase, err error) {
	var (
		bez *bezier.Curve
		B   = basis.NewBernstein()
	)
	if bez, err = bezier.NewCurve(bspline.SampleCurve().ControlPoints); err != nil {
		return
	}
	cases = []benchCase{
		curveBench("Bezier curve", bez),
		{"Bernstein polynomial B_2^5", func(n, _ int) error {
			for _, xi := range utils.Linspace(0, 1, n).ToSlice() {
				B.Value(2, 5, xi)
			}
			return nil
		}},
		curveBench("B-spline curve", bspline.SampleCurve3D()),
		curveBench("NURBS circle", nurbs.NewCircle()),
		surfaceBench("B-spline surface", bspline.SampleSurface()),
		surfaceBench("NURBS toroid", nurbs.NewToroid()),
	}
	return
}

func runBench(w io.Writer, iterations, n, np int, perf, verbose bool) (err error) {
	var (
		cases []benchCase
	)
	if cases, err = benchCases(); err != nil {
		return
	}
	for _, bc := range cases {
		start := time.Now()
		for i := 0; i < iterations; i++ {
			if err = bc.run(n, np); err != nil {
				return
			}
		}
		fmt.Fprintf(w, "%s computed on %d samples in: %v\n", bc.name, n, time.Since(start)/time.Duration(iterations))
		if verbose {
			fmt.Fprintf(w, "\t%s\n", utils.GetMemUsage())
		}
		if perf {
			var instructions uint64
			if instructions, err = countInstructions(func() error { return bc.run(n, np) }); err != nil {
				fmt.Fprintf(w, "\tinstruction count unavailable: %v\n", err)
				err = nil
				continue
			}
			fmt.Fprintf(w, "\t%d instructions\n", instructions)
		}
	}
	return
}

// BenchCmd represents the bench command
var BenchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Time the evaluation of the sample geometries",
	Long: `
Evaluates each sample geometry on n parameters per direction, averaged over
the requested iterations, optionally under the CPU or memory profiler.

isogeo bench -n 10000 --iterations 200 --profile cpu`,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		var (
			iterations, _ = cmd.Flags().GetInt("iterations")
			prof, _       = cmd.Flags().GetString("profile")
			perf, _       = cmd.Flags().GetBool("perf")
		)
		if iterations < 1 {
			return fmt.Errorf("iterations %d: %w", iterations, utils.ErrInvalidArgument)
		}
		switch prof {
		case "":
		case "cpu":
			defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
		case "mem":
			defer profile.Start(profile.MemProfile, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
		default:
			return fmt.Errorf("unknown profile %q, use cpu or mem: %w", prof, utils.ErrInvalidArgument)
		}
		return runBench(cmd.OutOrStdout(), iterations, viper.GetInt("samples"), viper.GetInt("parallel"), perf, viper.GetBool("verbose"))
	},
}

func init() {
	rootCmd.AddCommand(BenchCmd)
	BenchCmd.Flags().Int("iterations", 20, "number of timed repetitions per geometry")
	BenchCmd.Flags().String("profile", "", "write a cpu or mem profile to the working directory")
	BenchCmd.Flags().Bool("perf", false, "count CPU instructions with perf events (linux only)")
}

