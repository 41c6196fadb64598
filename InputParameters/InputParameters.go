package InputParameters

import (
	"fmt"
	"io"
	"sort"

	"github.com/ghodss/yaml"

	"github.com/carlonluca/isogeometric-analysis/basis"
	"github.com/carlonluca/isogeometric-analysis/bezier"
	"github.com/carlonluca/isogeometric-analysis/bspline"
	"github.com/carlonluca/isogeometric-analysis/nurbs"
	"github.com/carlonluca/isogeometric-analysis/types"
	"github.com/carlonluca/isogeometric-analysis/utils"
)

// Geometry kinds accepted in the Kind field
const (
	BezierCurve    = "bezier-curve"
	BezierSurface  = "bezier-surface"
	BsplineCurve   = "bspline-curve"
	BsplineSurface = "bspline-surface"
	NurbsCurve     = "nurbs-curve"
	NurbsSurface   = "nurbs-surface"
)

// Built in shapes accepted in the Shape field
var Shapes = map[string]func() any{
	"circle":        func() any { return nurbs.NewCircle() },
	"curve":         func() any { return nurbs.NewSampleCurve() },
	"plate":         func() any { return nurbs.NewPlateWithHole() },
	"toroid":        func() any { return nurbs.NewToroid() },
	"bspline-curve": func() any { return bspline.SampleCurve3D() },
	"bspline-surf":  func() any { return bspline.SampleSurface() },
}

// GeometryParameters are obtained from a YAML geometry file. Either Shape
// names a built in geometry or Kind and the control data describe one.
type GeometryParameters struct {
	Title         string            `json:"Title"`
	Shape         string            `json:"Shape"`
	Kind          string            `json:"Kind"`
	P             int               `json:"P"`
	Q             int               `json:"Q"`
	Xi            []float64         `json:"Xi"`
	Eta           []float64         `json:"Eta"`
	ControlPoints [][]float64       `json:"ControlPoints"` // Curves, one point per entry
	ControlNet    [][][]float64     `json:"ControlNet"`    // Surfaces, indexed along xi then eta
	Weights       []float64         `json:"Weights"`
	WeightNet     [][]float64       `json:"WeightNet"`
	Metadata      map[string]string `json:"Metadata"`
}

func (gp *GeometryParameters) Parse(data []byte) error {
	return yaml.Unmarshal(data, gp)
}

func (gp *GeometryParameters) Print(w io.Writer) {
	fmt.Fprintf(w, "\"%s\"\t\t= Title\n", gp.Title)
	if gp.Shape != "" {
		fmt.Fprintf(w, "[%s]\t\t= Shape\n", gp.Shape)
	} else {
		fmt.Fprintf(w, "[%s]\t= Kind\n", gp.Kind)
		fmt.Fprintf(w, "[%d, %d]\t\t= Degrees\n", gp.P, gp.Q)
		fmt.Fprintf(w, "%v\t= Xi\n", gp.Xi)
		if len(gp.Eta) != 0 {
			fmt.Fprintf(w, "%v\t= Eta\n", gp.Eta)
		}
	}
	keys := make([]string, 0, len(gp.Metadata))
	for k := range gp.Metadata {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, key := range keys {
		fmt.Fprintf(w, "Metadata[%s] = %v\n", key, gp.Metadata[key])
	}
}

func toPoint(c []float64) (p types.Point, err error) {
	switch len(c) {
	case 2:
		p = types.NewPoint2D(c[0], c[1])
	case 3:
		p = types.NewPoint3D(c[0], c[1], c[2])
	default:
		err = fmt.Errorf("point %v needs 2 or 3 coordinates: %w", c, utils.ErrInvalidGeometry)
	}
	return
}

func (gp *GeometryParameters) points() (P []types.Point, err error) {
	P = make([]types.Point, len(gp.ControlPoints))
	for i, c := range gp.ControlPoints {
		if P[i], err = toPoint(c); err != nil {
			return
		}
	}
	return
}

func (gp *GeometryParameters) net() (P [][]types.Point, err error) {
	P = make([][]types.Point, len(gp.ControlNet))
	for i, row := range gp.ControlNet {
		P[i] = make([]types.Point, len(row))
		for j, c := range row {
			if P[i][j], err = toPoint(c); err != nil {
				return
			}
		}
	}
	return
}

func (gp *GeometryParameters) weightNet(nr, nc int) (W utils.Matrix, err error) {
	if len(gp.WeightNet) == 0 {
		return utils.NewOnes(nr, nc), nil
	}
	if len(gp.WeightNet) != nr {
		err = fmt.Errorf("%d weight rows for %d control rows: %w", len(gp.WeightNet), nr, utils.ErrInvalidGeometry)
		return
	}
	for i, row := range gp.WeightNet {
		if len(row) != nc {
			err = fmt.Errorf("weight row %d has %d values, expected %d: %w", i, len(row), nc, utils.ErrInvalidGeometry)
			return
		}
	}
	W = utils.NewMatrixFromRows(gp.WeightNet)
	return
}

// Build returns the described curve or surface: one of the bezier, bspline
// or nurbs types.
func (gp *GeometryParameters) Build() (g any, err error) {
	if gp.Shape != "" {
		shape, ok := Shapes[gp.Shape]
		if !ok {
			err = fmt.Errorf("unknown shape %q: %w", gp.Shape, utils.ErrInvalidArgument)
			return
		}
		return shape(), nil
	}
	var (
		P    []types.Point
		Pnet [][]types.Point
	)
	switch gp.Kind {
	case BezierCurve, BsplineCurve, NurbsCurve:
		if P, err = gp.points(); err != nil {
			return
		}
	case BezierSurface, BsplineSurface, NurbsSurface:
		if Pnet, err = gp.net(); err != nil {
			return
		}
	default:
		err = fmt.Errorf("unknown geometry kind %q: %w", gp.Kind, utils.ErrInvalidArgument)
		return
	}
	switch gp.Kind {
	case BezierCurve:
		return bezier.NewCurve(P)
	case BezierSurface:
		return bezier.NewSurface(Pnet)
	case BsplineCurve:
		return bspline.NewCurve(P, gp.Xi, gp.P)
	case BsplineSurface:
		return bspline.NewSurface(Pnet, gp.Xi, gp.Eta, gp.P, gp.Q)
	case NurbsCurve:
		w := gp.Weights
		if len(w) == 0 {
			w = utils.ConstArray(len(P), 1)
		}
		return nurbs.NewCurve(P, gp.Xi, w, gp.P)
	}
	var (
		nr, nc int
		W      utils.Matrix
	)
	if nr, nc, err = types.CheckGrid(Pnet); err != nil {
		return
	}
	if W, err = gp.weightNet(nr, nc); err != nil {
		return
	}
	return nurbs.NewSurface(Pnet, basis.KnotVector(gp.Xi), basis.KnotVector(gp.Eta), W, gp.P, gp.Q)
}

// SystemParameters describe a dense system A x = b.
type SystemParameters struct {
	Title string      `json:"Title"`
	A     [][]float64 `json:"A"`
	B     []float64   `json:"B"`
	Pivot bool        `json:"Pivot"`
}

func (sp *SystemParameters) Parse(data []byte) error {
	return yaml.Unmarshal(data, sp)
}

func (sp *SystemParameters) Print(w io.Writer) {
	fmt.Fprintf(w, "\"%s\"\t\t= Title\n", sp.Title)
	fmt.Fprintf(w, "[%dx%d]\t\t= Size\n", len(sp.A), len(sp.B))
	fmt.Fprintf(w, "[%v]\t\t= Pivot\n", sp.Pivot)
}

func (sp *SystemParameters) Build() (A utils.Matrix, b utils.ColVector, err error) {
	if len(sp.A) == 0 {
		err = fmt.Errorf("empty system matrix: %w", utils.ErrDimensionMismatch)
		return
	}
	for i, row := range sp.A {
		if len(row) != len(sp.A[0]) {
			err = fmt.Errorf("matrix row %d has %d values, expected %d: %w",
				i, len(row), len(sp.A[0]), utils.ErrDimensionMismatch)
			return
		}
	}
	if len(sp.B) != len(sp.A) {
		err = fmt.Errorf("%d right hand side values for %d rows: %w", len(sp.B), len(sp.A), utils.ErrDimensionMismatch)
		return
	}
	A, b = utils.NewMatrixFromRows(sp.A), utils.NewColVector(sp.B)
	return
}
