package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/couchcryptid/temperature-heatmap/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testChart(t *testing.T) domain.Chart {
	t.Helper()
	raw := domain.RawDataset{BaseTemperature: 8.66}
	for y := 1753; y <= 1754; y++ {
		for m := 1; m <= 12; m++ {
			v := float64(m) * 0.3
			if y == 1753 && m == 1 {
				v = -6.1
			}
			raw.MonthlyVariance = append(raw.MonthlyVariance, domain.RawObservation{Year: y, Month: m, Variance: v})
		}
	}
	chart, err := domain.BuildChart(domain.Transform(raw), domain.DefaultLayout(), domain.DefaultPalette())
	require.NoError(t, err)
	return chart
}

func TestPage(t *testing.T) {
	chart := testChart(t)
	var buf bytes.Buffer

	require.NoError(t, Page(&buf, "", chart))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "<!DOCTYPE html>"))
	assert.Contains(t, out, "<title>"+DefaultTitle+"</title>")
	assert.Contains(t, out, `<div id="description">1753 - 1754: base temperature 8.66℃</div>`)
	assert.Contains(t, out, `<svg id="chart" width="78" height="520">`)
	assert.Contains(t, out, `<svg id="palette"`)
	assert.Contains(t, out, `<div id="tooltip" data-opacity="0.8" data-offset-y="40">`)
	assert.Equal(t, 24, strings.Count(out, `class="cell"`))

	assert.Contains(t, out, `id="x-axis"`)
	assert.Contains(t, out, `id="y-axis"`)
	assert.Contains(t, out, `id="z-axis"`)
	assert.Contains(t, out, `>January</text>`)
	assert.Contains(t, out, `>December</text>`)
	assert.Contains(t, out, `id="x-Label"`)
	assert.Contains(t, out, `transform="rotate(-90)"`)
	assert.Contains(t, out, "Temperature color code")

	assert.Contains(t, out, "addEventListener('mouseover'")
	assert.Contains(t, out, "addEventListener('mouseout'")
}

func TestPage_CellAttributes(t *testing.T) {
	chart := testChart(t)
	var buf bytes.Buffer
	require.NoError(t, Page(&buf, "Heatmap", chart))
	out := buf.String()

	assert.Contains(t, out, `x="70" y="440" width="4" height="40" data-month="0" data-year="1753"`)
	assert.Contains(t, out, `data-variance="-6.1"`)
	// The tooltip markup is attribute-escaped and decoded again by the browser.
	assert.Contains(t, out, `data-tooltip="January, 1753:&lt;br /&gt;Temp: 2.56°C / var = -6.10°C"`)
}

func TestPage_UnbucketedCellHasNoFill(t *testing.T) {
	chart := domain.Chart{
		Width:  74,
		Height: 520,
		Cells: []domain.Cell{
			{X: 70, Y: 440, Width: 4, Height: 40, Bucket: -1},
			{X: 70, Y: 400, Width: 4, Height: 40, Bucket: 0, Fill: "#5e4fa2", Month: 1},
		},
		Layout: domain.DefaultLayout(),
	}
	var buf bytes.Buffer
	require.NoError(t, Page(&buf, "", chart))
	out := buf.String()

	assert.Equal(t, 1, strings.Count(out, `fill="#5e4fa2"`))
	assert.Equal(t, 2, strings.Count(out, `class="cell"`))
}

func TestPalette(t *testing.T) {
	chart := testChart(t)
	var buf bytes.Buffer
	require.NoError(t, PaletteSVG(&buf, chart))
	out := buf.String()

	assert.Contains(t, out, `xmlns="http://www.w3.org/2000/svg"`)
	for i, s := range chart.Legend.Swatches {
		assert.Contains(t, out, `fill="`+s.Fill+`"`, "swatch %d", i)
	}
	assert.Contains(t, out, `<rect x="25" width="25" height="20"`)
	assert.Contains(t, out, `>`+chart.Legend.Axis.Ticks[0].Label+`</text>`)
}

func TestChartSVG(t *testing.T) {
	chart := testChart(t)
	var buf bytes.Buffer
	require.NoError(t, ChartSVG(&buf, chart))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, `<?xml version="1.0" encoding="UTF-8"?>`))
	assert.Contains(t, out, `<svg id="chart" xmlns="http://www.w3.org/2000/svg" width="78" height="520">`)
	assert.NotContains(t, out, "<script")
	assert.Equal(t, 24, strings.Count(out, `class="cell"`))
}
