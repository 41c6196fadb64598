package InputParameters

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carlonluca/isogeometric-analysis/bezier"
	"github.com/carlonluca/isogeometric-analysis/bspline"
	"github.com/carlonluca/isogeometric-analysis/nurbs"
	"github.com/carlonluca/isogeometric-analysis/types"
	"github.com/carlonluca/isogeometric-analysis/utils"
)

var nurbsCircleYAML = `
Title: "quarter circle"
Kind: nurbs-curve
P: 2
Xi: [0, 0, 0, 1, 1, 1]
ControlPoints:
  - [1, 0]
  - [1, 1]
  - [0, 1]
Weights: [1, 0.7071067811865476, 1]
Metadata:
  units: m
  author: test
`

var surfaceYAML = `
Title: "bilinear patch"
Kind: nurbs-surface
P: 1
Q: 1
Xi: [0, 0, 1, 1]
Eta: [0, 0, 1, 1]
ControlNet:
  - [[0, 0, 0], [0, 1, 0]]
  - [[1, 0, 0], [1, 1, 1]]
`

func TestGeometryParameters(t *testing.T) {
	{
		var gp GeometryParameters
		require.NoError(t, gp.Parse([]byte(nurbsCircleYAML)))
		assert.Equal(t, "quarter circle", gp.Title)
		assert.Equal(t, NurbsCurve, gp.Kind)
		assert.Equal(t, 2, gp.P)
		assert.Len(t, gp.ControlPoints, 3)
		g, err := gp.Build()
		require.NoError(t, err)
		c, ok := g.(*nurbs.Curve)
		require.True(t, ok)
		assert.InDelta(t, 1, c.Evaluate(0.3).Norm(), 1e-14)
		var buf bytes.Buffer
		gp.Print(&buf)
		out := buf.String()
		assert.Contains(t, out, "quarter circle")
		// Metadata is printed in key order
		assert.Less(t, bytes.Index(buf.Bytes(), []byte("author")), bytes.Index(buf.Bytes(), []byte("units")))
	}
	{
		var gp GeometryParameters
		require.NoError(t, gp.Parse([]byte(surfaceYAML)))
		g, err := gp.Build()
		require.NoError(t, err)
		s, ok := g.(*nurbs.Surface)
		require.True(t, ok)
		assert.Equal(t, types.Point{X: 0.5, Y: 0.5, Z: 0.25}, s.Evaluate(0.5, 0.5))
		assert.True(t, s.Weights.Equals(utils.NewOnes(2, 2)))
	}
	{ // Kinds without weights
		for kind, check := range map[string]func(any) bool{
			BezierSurface:  func(g any) bool { _, ok := g.(*bezier.Surface); return ok },
			BsplineSurface: func(g any) bool { _, ok := g.(*bspline.Surface); return ok },
		} {
			var gp GeometryParameters
			require.NoError(t, gp.Parse([]byte(surfaceYAML)))
			gp.Kind = kind
			g, err := gp.Build()
			require.NoError(t, err)
			assert.True(t, check(g), kind)
		}
		gp := GeometryParameters{Kind: BezierCurve, ControlPoints: [][]float64{{0, 0}, {1, 1}}}
		g, err := gp.Build()
		require.NoError(t, err)
		assert.IsType(t, &bezier.Curve{}, g)
		gp.Kind = BsplineCurve
		gp.Xi, gp.P = []float64{0, 0, 1, 1}, 1
		g, err = gp.Build()
		require.NoError(t, err)
		assert.IsType(t, &bspline.Curve{}, g)
	}
	{ // Built in shapes
		for name := range Shapes {
			gp := GeometryParameters{Shape: name}
			g, err := gp.Build()
			require.NoError(t, err, name)
			assert.NotNil(t, g)
		}
		gp := GeometryParameters{Shape: "teapot"}
		_, err := gp.Build()
		assert.True(t, errors.Is(err, utils.ErrInvalidArgument))
	}
	{ // Malformed input
		gp := GeometryParameters{Kind: "hyperboloid"}
		_, err := gp.Build()
		assert.True(t, errors.Is(err, utils.ErrInvalidArgument))
		gp = GeometryParameters{Kind: NurbsCurve, P: 1, Xi: []float64{0, 0, 1, 1},
			ControlPoints: [][]float64{{0, 0}, {1, 1, 1, 1}}}
		_, err = gp.Build()
		assert.True(t, errors.Is(err, utils.ErrInvalidGeometry))
		require.NoError(t, gp.Parse([]byte(surfaceYAML)))
		gp.WeightNet = [][]float64{{1, 1}}
		_, err = gp.Build()
		assert.True(t, errors.Is(err, utils.ErrInvalidGeometry))
		assert.Error(t, gp.Parse([]byte("P: [unbalanced")))
	}
}

func TestSystemParameters(t *testing.T) {
	{
		var sp SystemParameters
		require.NoError(t, sp.Parse([]byte(`
Title: small
A:
  - [1, 1]
  - [-3, 1]
B: [6, 2]
Pivot: true
`)))
		assert.True(t, sp.Pivot)
		A, b, err := sp.Build()
		require.NoError(t, err)
		assert.Equal(t, utils.Size{Rows: 2, Cols: 2}, A.Size())
		assert.Equal(t, []float64{6, 2}, b.ToSlice())
		var buf bytes.Buffer
		sp.Print(&buf)
		assert.Contains(t, buf.String(), "[2x2]")
	}
	{
		for _, sp := range []SystemParameters{
			{},
			{A: [][]float64{{1, 2}, {3}}, B: []float64{1, 2}},
			{A: [][]float64{{1, 2}, {3, 4}}, B: []float64{1}},
		} {
			_, _, err := sp.Build()
			assert.True(t, errors.Is(err, utils.ErrDimensionMismatch))
		}
	}
}
