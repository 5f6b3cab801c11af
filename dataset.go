package digitize

import (
	"io"

	"gonum.org/v1/gonum/stat"
)

// Stats summarizes a sample table.
type Stats struct {
	Count int
	XMin  float64
	XMax  float64
	YMin  float64
	YMax  float64
	XMean float64
	YMean float64
}

// Dataset ties one traced curve to its two calibrated axes and holds the most
// recently produced sample table. It does not own the curve or the axes; they
// belong to the editing and calibration layers.
//
// Each sampling call replaces the table wholesale. A dataset is not safe for
// concurrent use.
type Dataset struct {
	Curve *Spline
	XAxis *Axis
	YAxis *Axis

	table []Sample
}

func NewDataset(curve *Spline, xAxis, yAxis *Axis) *Dataset {
	return &Dataset{
		Curve: curve,
		XAxis: xAxis,
		YAxis: yAxis,
	}
}

// SampleUniform samples the curve at numPoints evenly spaced x-values,
// stores the table, and returns it. See [UniformSample].
func (d *Dataset) SampleUniform(numPoints int) []Sample {
	d.table = UniformSample(d.Curve, d.XAxis, d.YAxis, numPoints)
	return d.table
}

// SampleAdaptive samples the curve with curvature-driven density, stores the
// table, and returns it. See [AdaptiveSample].
func (d *Dataset) SampleAdaptive(maxError float64, minPoints, maxPoints int) []Sample {
	d.table = AdaptiveSample(d.Curve, d.XAxis, d.YAxis, maxError, minPoints, maxPoints)
	return d.table
}

// Table returns the most recently produced sample table, or nil if the curve
// has not been sampled yet.
func (d *Dataset) Table() []Sample {
	return d.table
}

// Statistics summarizes the stored table. It reports false when no table has
// been produced yet or the table is empty.
func (d *Dataset) Statistics() (Stats, bool) {
	if len(d.table) == 0 {
		return Stats{}, false
	}
	xs := make([]float64, len(d.table))
	ys := make([]float64, len(d.table))
	first := Pt(d.table[0].X, d.table[0].Y)
	bounds := NewRectFromPoints(first, first)
	for i, s := range d.table {
		xs[i] = s.X
		ys[i] = s.Y
		bounds = bounds.UnionPoint(Pt(s.X, s.Y))
	}
	return Stats{
		Count: len(d.table),
		XMin:  bounds.MinX(),
		XMax:  bounds.MaxX(),
		YMin:  bounds.MinY(),
		YMax:  bounds.MaxY(),
		XMean: stat.Mean(xs, nil),
		YMean: stat.Mean(ys, nil),
	}, true
}

// Export writes the stored table to w as CSV. With byColumn, samples become
// rows under an "x,y" header; without, the table is transposed into one "x"
// row and one "y" row. Exporting before any successful sampling call fails
// with [ErrNoSamples].
func (d *Dataset) Export(w io.Writer, byColumn bool) error {
	return WriteCSV(w, d.table, byColumn)
}
