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

	"github.com/carlonluca/isogeometric-analysis/nurbs"
	"github.com/carlonluca/isogeometric-analysis/sampling"
	"github.com/carlonluca/isogeometric-analysis/types"
	"github.com/carlonluca/isogeometric-analysis/utils"
)

// RefineCmd represents the refine command
var RefineCmd = &cobra.Command{
	Use:   "refine",
	Short: "Insert knots into a B-spline or NURBS geometry",
	Long: `
Inserts a knot value the requested number of times, prints the new knot
vectors and control net and reports how far the refined geometry moved from
the unrefined one over the sampled parameters.

isogeo refine --shape circle --xi 0.6 --times 1`,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		var (
			g           any
			n           = viper.GetInt("samples")
			decimals    = viper.GetInt("decimals")
			out         = cmd.OutOrStdout()
			v, _        = cmd.Flags().GetFloat64("xi")
			r, _        = cmd.Flags().GetInt("times")
			alongEta, _ = cmd.Flags().GetBool("eta")
			step, _     = cmd.Flags().GetFloat64("uniform")
			before      []types.Point
		)
		if g, err = loadGeometry(cmd); err != nil {
			return
		}
		if before, err = samplePoints(g, n); err != nil {
			return
		}
		switch e := g.(type) {
		case curveRefiner:
			if step > 0 {
				return fmt.Errorf("uniform refinement needs a NURBS surface: %w", utils.ErrInvalidArgument)
			}
			err = e.Refine(v, r)
		case surfaceRefiner:
			switch {
			case step > 0:
				ns, ok := g.(*nurbs.Surface)
				if !ok {
					return fmt.Errorf("uniform refinement needs a NURBS surface: %w", utils.ErrInvalidArgument)
				}
				err = ns.Uniform(step)
			case alongEta:
				err = e.RefineEta(v, r)
			default:
				err = e.RefineXi(v, r)
			}
		default:
			err = fmt.Errorf("%T does not support knot insertion: %w", g, utils.ErrInvalidArgument)
		}
		if err != nil {
			return
		}
		var (
			after []types.Point
		)
		if after, err = samplePoints(g, n); err != nil {
			return
		}
		Xi, Eta, _, _, _ := knotsOf(g)
		writeValues(out, "Xi", Xi, decimals)
		if Eta != nil {
			writeValues(out, "Eta", Eta, decimals)
		}
		fmt.Fprintln(out, "Control points (x y z w):")
		writeNet(out, g, decimals)
		fmt.Fprintf(out, "Maximum deviation: %.3e\n", sampling.MaxDeviation(before, after))
		return
	},
}

func samplePoints(g any, n int) (P []types.Point, err error) {
	switch e := g.(type) {
	case sampling.CurveEvaluator:
		var s sampling.Samples
		a, b := sampling.CurveDomain(e)
		s, err = sampling.SampleCurve(e, a, b, n)
		P = s.Points
	case sampling.SurfaceEvaluator:
		var s sampling.SurfaceSamples
		dXi, dEta := sampling.SurfaceDomain(e)
		s, err = sampling.SampleSurface(e, dXi, dEta, n, n)
		P = s.Flatten()
	default:
		err = fmt.Errorf("%T cannot be evaluated: %w", g, utils.ErrInvalidArgument)
	}
	return
}

func init() {
	rootCmd.AddCommand(RefineCmd)
	addGeometryFlags(RefineCmd)
	RefineCmd.Flags().Float64("xi", 0.5, "knot value to insert")
	RefineCmd.Flags().IntP("times", "r", 1, "number of insertions")
	RefineCmd.Flags().Bool("eta", false, "insert along eta for surfaces")
	RefineCmd.Flags().Float64("uniform", 0, "insert every multiple of this step in both directions of a NURBS surface")
}
