package report

import (
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// WriteChart renders a standalone page with a bar chart of loaded volume per
// cargo name, filler included.
func (s Summary) WriteChart(w io.Writer) error {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Loaded volume by cargo",
			Subtitle: "cubic metres per cargo name",
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)

	names := make([]string, 0, len(s.Cargo))
	values := make([]opts.BarData, 0, len(s.Cargo))
	for _, c := range s.Cargo {
		names = append(names, c.Name)
		values = append(values, opts.BarData{Value: c.Volume})
	}
	bar.SetXAxis(names).AddSeries("volume", values)

	return bar.Render(w)
}
