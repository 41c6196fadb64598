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

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/carlonluca/isogeometric-analysis/bezier"
	"github.com/carlonluca/isogeometric-analysis/sampling"
	"github.com/carlonluca/isogeometric-analysis/utils"
)

// EvalCmd represents the eval command
var EvalCmd = &cobra.Command{
	Use:   "eval",
	Short: "Sample a curve or surface over its parametric domain",
	Long: `
Evaluates the geometry on evenly spaced parameters and prints one "x y z" line
per sample. Surfaces are sampled on an n by n grid, xi major, and each patch
of a --patches file in turn.

isogeo eval --shape circle -n 9`,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		var (
			g        any
			n        = viper.GetInt("samples")
			np       = viper.GetInt("parallel")
			decimals = viper.GetInt("decimals")
			out      = cmd.OutOrStdout()
		)
		if g, err = loadGeometry(cmd); err != nil {
			return
		}
		if showBasis, _ := cmd.Flags().GetBool("basis"); showBasis {
			return printBasis(cmd, g, n, decimals)
		}
		switch e := g.(type) {
		case sampling.CurveEvaluator:
			var s sampling.Samples
			a, b := sampling.CurveDomain(e)
			if s, err = sampling.ParallelSampleCurve(e, a, b, n, np); err != nil {
				return
			}
			writePoints(out, s.Points, decimals)
		case sampling.SurfaceEvaluator:
			var s sampling.SurfaceSamples
			dXi, dEta := sampling.SurfaceDomain(e)
			if s, err = sampling.ParallelSampleSurface(e, dXi, dEta, n, n, np); err != nil {
				return
			}
			writePoints(out, s.Flatten(), decimals)
		case []*bezier.Surface:
			for _, patch := range e {
				var s sampling.SurfaceSamples
				if s, err = sampling.ParallelSampleSurface(patch, [2]float64{0, 1}, [2]float64{0, 1}, n, n, np); err != nil {
					return
				}
				writePoints(out, s.Flatten(), decimals)
			}
		default:
			err = fmt.Errorf("%T cannot be evaluated: %w", g, utils.ErrInvalidArgument)
		}
		return
	},
}

// printBasis prints the parameter followed by the basis function values
// picked by --basis-range, one line per sample. Surfaces print the xi basis.
func printBasis(cmd *cobra.Command, g any, n, decimals int) (err error) {
	var (
		params    []float64
		N         [][]float64
		sel       utils.Range
		out       = cmd.OutOrStdout()
		phrase, _ = cmd.Flags().GetString("basis-range")
	)
	Xi, _, p, _, ok := knotsOf(g)
	if !ok {
		return fmt.Errorf("%T has no knot vector: %w", g, utils.ErrInvalidArgument)
	}
	if params, N, err = sampling.SampleBasis(Xi, p, n); err != nil {
		return
	}
	if sel, err = utils.ParseRange(phrase, len(N)); err != nil {
		return fmt.Errorf("basis range: %w", err)
	}
	row := make([]float64, sel.Length())
	for k, xi := range params {
		for i := range row {
			row[i] = N[sel.A+i][k]
		}
		writeValues(out, fmt.Sprintf("%.*f", decimals, xi), row, decimals)
	}
	return
}

func init() {
	rootCmd.AddCommand(EvalCmd)
	addGeometryFlags(EvalCmd)
	EvalCmd.Flags().Bool("basis", false, "print the basis functions instead of the geometry")
	EvalCmd.Flags().String("basis-range", ":", "basis functions printed with --basis: \":\", \"end\", \"i\", \"a:b\" (b excluded)")
}
