package domain

// Layout is the fixed geometry and labeling of the heatmap. It is passed by
// value into BuildChart.
type Layout struct {
	HMargin    float64 // left margin reserved for the month axis
	VMargin    float64 // bottom margin reserved for the year axis
	CellWidth  float64
	CellHeight float64

	// FirstYear anchors cell placement: a cell for FirstYear sits at HMargin.
	FirstYear int
	// TickEvery restricts year ticks to multiples of this value.
	TickEvery int

	PaletteWidth  float64
	PaletteHeight float64

	TooltipOpacity float64
	TooltipOffsetY float64

	XLabel      string
	YLabel      string
	LegendLabel string
}

// DefaultLayout returns the layout used for the global-temperature chart.
func DefaultLayout() Layout {
	return Layout{
		HMargin:        70,
		VMargin:        40,
		CellWidth:      4,
		CellHeight:     40,
		FirstYear:      1753,
		TickEvery:      10,
		PaletteWidth:   25,
		PaletteHeight:  20,
		TooltipOpacity: 0.8,
		TooltipOffsetY: 40,
		XLabel:         "Year",
		YLabel:         "Month",
		LegendLabel:    "Temperature color code",
	}
}
