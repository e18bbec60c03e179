package domain

import (
	"errors"
	"math"
	"strconv"
	"time"
)

// ErrEmptyDataset is returned when a chart is requested for a dataset with
// no observations.
var ErrEmptyDataset = errors.New("dataset has no observations")

// Tick is one labeled mark on an axis. Position is relative to the axis origin.
type Tick struct {
	Label    string  `json:"label"`
	Position float64 `json:"position"`
}

// Axis is a set of ticks plus the translation of the axis origin on its canvas.
type Axis struct {
	ID         string  `json:"id"`
	TranslateX float64 `json:"translate_x"`
	TranslateY float64 `json:"translate_y"`
	Length     float64 `json:"length"`
	Ticks      []Tick  `json:"ticks"`
}

// Label is a text element. Rotate is in degrees and applied before X/Y.
type Label struct {
	ID     string  `json:"id"`
	Text   string  `json:"text"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Rotate float64 `json:"rotate,omitempty"`
}

// Cell is the rectangle drawn for one observation.
type Cell struct {
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Width    float64 `json:"width"`
	Height   float64 `json:"height"`
	Fill     string  `json:"fill"`
	Bucket   int     `json:"bucket"` // -1 when no bucket matched
	Year     int     `json:"year"`
	Month    int     `json:"month"`
	Temp     float64 `json:"temp"`
	Variance float64 `json:"variance"`
	Tooltip  string  `json:"tooltip"`
}

// Bucket is a half-open temperature interval (Lower, Upper] and its color.
type Bucket struct {
	Lower float64 `json:"lower"`
	Upper float64 `json:"upper"`
	Fill  string  `json:"fill"`
}

// ZScale maps temperatures to palette colors.
type ZScale struct {
	Min     float64  `json:"min"`
	Max     float64  `json:"max"`
	Step    float64  `json:"step"`
	Buckets []Bucket `json:"buckets"`
}

// NewZScale splits [floor(lo), ceil(hi)] into one equal-width bucket per
// palette color.
func NewZScale(lo, hi float64, p Palette) ZScale {
	zMin := math.Floor(lo)
	zMax := math.Ceil(hi)
	n := p.Len()
	step := (zMax - zMin) / float64(n)

	buckets := make([]Bucket, n)
	for i := range buckets {
		buckets[i] = Bucket{
			Lower: zMin + float64(i)*step,
			Upper: zMin + float64(i+1)*step,
			Fill:  p.Hex(i),
		}
	}
	return ZScale{Min: zMin, Max: zMax, Step: step, Buckets: buckets}
}

// BucketIndex returns the index of the bucket holding temp, or -1.
// Every bucket is tested and the last match wins. A temperature equal to Min
// matches nothing because each bucket excludes its lower bound.
func (z ZScale) BucketIndex(temp float64) int {
	idx := -1
	for i, b := range z.Buckets {
		if b.Lower < temp && temp <= b.Upper {
			idx = i
		}
	}
	return idx
}

// Legend is the palette canvas: swatches plus the temperature axis under them.
type Legend struct {
	Width    float64  `json:"width"`
	Height   float64  `json:"height"`
	Swatches []Swatch `json:"swatches"`
	Axis     Axis     `json:"axis"`
	Label    string   `json:"label"`
}

// Chart is everything a renderer needs to draw the heatmap.
type Chart struct {
	Width       float64 `json:"width"`
	Height      float64 `json:"height"`
	Description string  `json:"description"`
	// LoadedAt is copied from the dataset the chart was built from.
	LoadedAt time.Time `json:"loaded_at"`

	Years []int  `json:"years"`
	XAxis Axis   `json:"x_axis"`
	YAxis Axis   `json:"y_axis"`
	Z     ZScale `json:"z"`

	XLabel Label  `json:"x_label"`
	YLabel Label  `json:"y_label"`
	Legend Legend `json:"legend"`

	Cells []Cell `json:"cells"`
	// Unbucketed counts cells whose temperature matched no bucket.
	Unbucketed int `json:"unbucketed"`

	Layout Layout `json:"-"`
}

// BuildChart computes the geometry, scales, colors and tooltip text for a
// dataset. It has no side effects.
func BuildChart(ds Dataset, l Layout, p Palette) (Chart, error) {
	if ds.Len() == 0 {
		return Chart{}, ErrEmptyDataset
	}
	if p.Len() == 0 {
		return Chart{}, errors.New("palette has no colors")
	}

	width := l.HMargin + l.CellWidth*float64(ds.Len())/12
	height := l.VMargin + l.CellHeight*12

	c := Chart{
		Width:       width,
		Height:      height,
		Description: Describe(ds),
		LoadedAt:    ds.LoadedAt,
		Layout:      l,
	}

	c.Years, c.XAxis = yearAxis(ds, l, width, height)
	c.YAxis = monthAxis(l, height)

	c.XLabel = Label{ID: "x-Label", Text: l.XLabel, X: width / 2, Y: height}
	c.YLabel = Label{ID: "y-Label", Text: l.YLabel, X: -height / 2, Y: l.HMargin / 3, Rotate: -90}

	lo, hi, _ := ds.TempExtent()
	c.Z = NewZScale(lo, hi, p)
	c.Legend = legend(c.Z, p, l)

	c.Cells = make([]Cell, ds.Len())
	for i, o := range ds.Observations {
		b := c.Z.BucketIndex(o.Temp)
		fill := ""
		if b >= 0 {
			fill = p.Hex(b)
		} else {
			c.Unbucketed++
		}
		c.Cells[i] = Cell{
			X:        l.HMargin + float64(o.Year-l.FirstYear)*l.CellWidth,
			Y:        height - l.VMargin - float64(o.Month+1)*l.CellHeight,
			Width:    l.CellWidth,
			Height:   l.CellHeight,
			Fill:     fill,
			Bucket:   b,
			Year:     o.Year,
			Month:    o.Month,
			Temp:     o.Temp,
			Variance: o.Variance,
			Tooltip:  TooltipContent(o.Month, o.Year, o.Temp, o.Variance),
		}
	}
	return c, nil
}

// yearAxis covers every year from the first to the last present, including
// years missing from the data. Ticks are kept for multiples of TickEvery.
func yearAxis(ds Dataset, l Layout, width, height float64) ([]int, Axis) {
	lo, hi, _ := ds.YearExtent()
	years := make([]int, 0, hi-lo+1)
	for y := lo; y <= hi; y++ {
		years = append(years, y)
	}

	length := width - l.HMargin
	scale := NewBandScale(len(years), 0, length)

	var ticks []Tick
	for i, y := range years {
		if l.TickEvery > 0 && y%l.TickEvery != 0 {
			continue
		}
		ticks = append(ticks, Tick{Label: strconv.Itoa(y), Position: scale.Center(i)})
	}
	return years, Axis{
		ID:         "x-axis",
		TranslateX: l.HMargin,
		TranslateY: height - l.VMargin,
		Length:     length,
		Ticks:      ticks,
	}
}

func monthAxis(l Layout, height float64) Axis {
	names := MonthNames()
	length := height - l.VMargin
	scale := NewBandScale(len(names), length, 0)

	ticks := make([]Tick, len(names))
	for i, name := range names {
		ticks[i] = Tick{Label: name, Position: scale.Center(i)}
	}
	return Axis{ID: "y-axis", TranslateX: l.HMargin, Length: length, Ticks: ticks}
}

func legend(z ZScale, p Palette, l Layout) Legend {
	n := p.Len()
	length := float64(n) * l.PaletteWidth
	scale := NewLinearScale(z.Min, z.Max, 0, length)

	ticks := make([]Tick, n+1)
	for i := range ticks {
		v := z.Min + z.Step*float64(i)
		ticks[i] = Tick{Label: fixed(v, 1), Position: scale.Map(v)}
	}
	return Legend{
		Width:    float64(n+2) * l.PaletteWidth,
		Height:   l.PaletteHeight * 3,
		Swatches: Swatches(p, l),
		Axis: Axis{
			ID:         "z-axis",
			TranslateX: l.PaletteWidth,
			TranslateY: l.PaletteHeight,
			Length:     length,
			Ticks:      ticks,
		},
		Label: l.LegendLabel,
	}
}
