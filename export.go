package digitize

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
)

// ErrNoSamples is returned when exporting an empty or never-produced sample
// table.
var ErrNoSamples = errors.New("no sampled data")

// WriteCSV serializes samples to w. With byColumn, the output has an "x,y"
// header followed by one row per sample. Without, the output is transposed:
// two rows, each led by its axis label.
func WriteCSV(w io.Writer, samples []Sample, byColumn bool) error {
	if len(samples) == 0 {
		return fmt.Errorf("exporting table: %w", ErrNoSamples)
	}
	cw := csv.NewWriter(w)
	if byColumn {
		cw.Write([]string{"x", "y"})
		for _, s := range samples {
			cw.Write([]string{formatValue(s.X), formatValue(s.Y)})
		}
	} else {
		xrow := make([]string, len(samples)+1)
		yrow := make([]string, len(samples)+1)
		xrow[0] = "x"
		yrow[0] = "y"
		for i, s := range samples {
			xrow[i+1] = formatValue(s.X)
			yrow[i+1] = formatValue(s.Y)
		}
		cw.Write(xrow)
		cw.Write(yrow)
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("exporting table: %w", err)
	}
	return nil
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
