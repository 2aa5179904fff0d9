package viz

import (
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/dsaviz/internal/step"
)

// ArrayChart plots the values of an array view as a line chart.
func ArrayChart(s step.Step, width, height int) string {
	if s.View.Kind != step.KindArray || len(s.View.Array) == 0 {
		return ""
	}
	data := make([]float64, len(s.View.Array))
	for i, v := range s.View.Array {
		data[i] = float64(v)
	}
	return SeriesChart(data, "values", width, height)
}

// SeriesChart plots one value per point, for example the disorder of each
// step.
func SeriesChart(series []float64, caption string, width, height int) string {
	if len(series) == 0 {
		return ""
	}
	return asciigraph.Plot(series,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Precision(0),
		asciigraph.Caption(caption))
}
