package render

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/cwbudde/algo-classd/dsp/core"
)

// CSV writes one row per sample: the time followed by every series value.
// The header row holds xLabel and the series labels.
func CSV(w io.Writer, xLabel string, x []float64, series ...core.Series) error {
	if err := validate(x, series); err != nil {
		return err
	}

	cw := csv.NewWriter(w)

	row := make([]string, 1+len(series))
	row[0] = xLabel
	for i, s := range series {
		row[i+1] = s.Label
	}
	if err := cw.Write(row); err != nil {
		return fmt.Errorf("render: csv: %w", err)
	}

	for i, t := range x {
		row[0] = strconv.FormatFloat(t, 'g', -1, 64)
		for j, s := range series {
			row[j+1] = strconv.FormatFloat(s.Values[i], 'g', -1, 64)
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("render: csv: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("render: csv: %w", err)
	}
	return nil
}
