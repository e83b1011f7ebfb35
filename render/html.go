package render

import (
	"fmt"
	"io"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/cwbudde/algo-classd/dsp/core"
)

// HTML writes a self-contained echarts page plotting series against x.
func HTML(w io.Writer, chart Chart, x []float64, series ...core.Series) error {
	if err := validate(x, series); err != nil {
		return err
	}

	step := stride(len(x), chart.MaxPoints)

	line := charts.NewLine()

	yAxis := opts.YAxis{Name: chart.YLabel, Type: "value"}
	if chart.YRange != nil {
		yAxis.Min = chart.YRange[0]
		yAxis.Max = chart.YRange[1]
	}

	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: chart.Title,
			Width:     "1200px",
			Height:    "600px",
		}),
		charts.WithTitleOpts(opts.Title{Title: chart.Title}),
		charts.WithXAxisOpts(opts.XAxis{Name: chart.XLabel, Type: "category"}),
		charts.WithYAxisOpts(yAxis),
		charts.WithLegendOpts(opts.Legend{Show: true, Top: "bottom"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: true, Trigger: "axis"}),
		charts.WithDataZoomOpts(opts.DataZoom{Type: "slider", Start: 0, End: 100}),
	)

	labels := make([]string, 0, len(x)/step+1)
	for i := 0; i < len(x); i += step {
		labels = append(labels, strconv.FormatFloat(x[i], 'g', 6, 64))
	}
	line.SetXAxis(labels)

	for _, s := range series {
		data := make([]opts.LineData, 0, len(labels))
		for i := 0; i < len(s.Values); i += step {
			data = append(data, opts.LineData{Value: s.Values[i]})
		}
		line.AddSeries(s.Label, data)
	}

	if err := line.Render(w); err != nil {
		return fmt.Errorf("render: html: %w", err)
	}
	return nil
}
