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
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/carlonluca/isogeometric-analysis/InputParameters"
	"github.com/carlonluca/isogeometric-analysis/basis"
	"github.com/carlonluca/isogeometric-analysis/bspline"
	"github.com/carlonluca/isogeometric-analysis/nurbs"
	"github.com/carlonluca/isogeometric-analysis/readfiles"
	"github.com/carlonluca/isogeometric-analysis/sampling"
	"github.com/carlonluca/isogeometric-analysis/types"
)

type curveRefiner interface {
	sampling.CurveEvaluator
	Refine(v float64, r int) error
}

type surfaceRefiner interface {
	sampling.SurfaceEvaluator
	RefineXi(v float64, r int) error
	RefineEta(v float64, r int) error
}

const exampleGeometryFile = `
########################################
Title: "Quarter circle"
Kind: nurbs-curve # bezier-, bspline- or nurbs- followed by curve or surface
P: 2
Xi: [0, 0, 0, 1, 1, 1]
ControlPoints:
  - [1, 0]
  - [1, 1]
  - [0, 1]
Weights: [1, 0.7071067811865476, 1]
########################################
`

// loadGeometry reads the --patches file, builds the geometry named by
// --shape or else the one described in the --inputFile YAML file.
func loadGeometry(cmd *cobra.Command) (g any, err error) {
	var (
		gp        = &InputParameters.GeometryParameters{}
		shape, _  = cmd.Flags().GetString("shape")
		inFile, _ = cmd.Flags().GetString("inputFile")
		utah, _   = cmd.Flags().GetString("patches")
		data      []byte
	)
	switch {
	case utah != "":
		return readfiles.ReadUtah(utah, viper.GetBool("verbose"))
	case shape != "":
		gp.Shape = shape
	case inFile != "":
		if data, err = os.ReadFile(inFile); err != nil {
			return
		}
		if err = gp.Parse(data); err != nil {
			err = fmt.Errorf("parsing %s: %w", inFile, err)
			return
		}
	default:
		err = fmt.Errorf("must supply a geometry file (-I, --inputFile) or a shape (--shape), example file:%s",
			exampleGeometryFile)
		return
	}
	if viper.GetBool("verbose") {
		gp.Print(cmd.OutOrStdout())
	}
	return gp.Build()
}

func addGeometryFlags(c *cobra.Command) {
	c.Flags().StringP("inputFile", "I", "", "YAML file describing the geometry")
	c.Flags().String("shape", "", "built in geometry: circle, curve, plate, toroid, bspline-curve, bspline-surf")
	c.Flags().String("patches", "", "file of bicubic Bezier patches in the Utah teapot format")
}

// knotsOf returns the knot vectors and degrees of a spline geometry.
func knotsOf(g any) (Xi, Eta basis.KnotVector, p, q int, ok bool) {
	switch s := g.(type) {
	case *bspline.Curve:
		return s.KnotVector, nil, s.P, 0, true
	case *nurbs.Curve:
		return s.KnotVector, nil, s.P, 0, true
	case *bspline.Surface:
		return s.Xi, s.Eta, s.P, s.Q, true
	case *nurbs.Surface:
		return s.Xi, s.Eta, s.P, s.Q, true
	}
	return
}

func writePoints(w io.Writer, points []types.Point, decimals int) {
	for _, p := range points {
		fmt.Fprintf(w, "%.*f %.*f %.*f\n", decimals, p.X, decimals, p.Y, decimals, p.Z)
	}
}

func writeValues(w io.Writer, label string, values []float64, decimals int) {
	fmt.Fprintf(w, "%s:", label)
	for _, v := range values {
		fmt.Fprintf(w, " %.*f", decimals, v)
	}
	fmt.Fprintln(w)
}

// writeNet prints the control points with their weight, one per line.
func writeNet(w io.Writer, g any, decimals int) {
	var (
		line = func(p types.Point, wt float64) {
			fmt.Fprintf(w, "%.*f %.*f %.*f %.*f\n", decimals, p.X, decimals, p.Y, decimals, p.Z, decimals, wt)
		}
	)
	switch s := g.(type) {
	case *bspline.Curve:
		for _, p := range s.ControlPoints {
			line(p, 1)
		}
	case *nurbs.Curve:
		for i, p := range s.ControlPoints {
			line(p, s.Weights[i])
		}
	case *bspline.Surface:
		for _, row := range s.ControlPoints {
			for _, p := range row {
				line(p, 1)
			}
		}
	case *nurbs.Surface:
		for i, row := range s.ControlPoints {
			for j, p := range row {
				line(p, s.Weights.At(i, j))
			}
		}
	}
}
