// Package render draws a computed heatmap as HTML and SVG. It only formats
// values produced by domain.BuildChart; no geometry is computed here.
package render

import (
	"html/template"
	"io"
	"strconv"

	"github.com/couchcryptid/temperature-heatmap/internal/domain"
)

// DefaultTitle heads the HTML page.
const DefaultTitle = "Monthly Global Land-Surface Temperature"

var funcMap = template.FuncMap{
	"num": func(v float64) string {
		return strconv.FormatFloat(v, 'f', -1, 64)
	},
}

var templates = template.Must(template.New("heatmap").Funcs(funcMap).Parse(axisTmpl + chartTmpl + pageTmpl))

type view struct {
	Title      string
	Chart      domain.Chart
	Standalone bool
}

// Page writes a complete HTML document: description, chart canvas, palette
// canvas, tooltip overlay and the pointer handlers that drive the tooltip.
func Page(w io.Writer, title string, chart domain.Chart) error {
	if title == "" {
		title = DefaultTitle
	}
	return templates.ExecuteTemplate(w, "page", view{Title: title, Chart: chart})
}

// ChartSVG writes the chart canvas as a standalone SVG document.
func ChartSVG(w io.Writer, chart domain.Chart) error {
	return templates.ExecuteTemplate(w, "svg", view{Chart: chart, Standalone: true})
}

// PaletteSVG writes the color legend as a standalone SVG document.
func PaletteSVG(w io.Writer, chart domain.Chart) error {
	return templates.ExecuteTemplate(w, "palette", view{Chart: chart, Standalone: true})
}
