package domain

import "fmt"

// PointerEvent carries the page coordinates of a pointer event.
type PointerEvent struct {
	PageX float64
	PageY float64
}

// Tooltip is the state of the tooltip overlay after a pointer event.
type Tooltip struct {
	Year    int     `json:"year"`
	Opacity float64 `json:"opacity"`
	Content string  `json:"content"`
	Left    float64 `json:"left"`
	Top     float64 `json:"top"`
}

// TooltipContent formats the tooltip body for one observation.
func TooltipContent(month, year int, temp, variance float64) string {
	return fmt.Sprintf("%s, %d:<br />Temp: %s°C / var = %s°C",
		MonthName(month), year, fixed(temp, 2), fixed(variance, 2))
}

// ShowTooltip is the pointer-enter handler: it shows the tooltip for cell
// next to the pointer.
func ShowTooltip(cell Cell, ev PointerEvent, l Layout) Tooltip {
	return Tooltip{
		Year:    cell.Year,
		Opacity: l.TooltipOpacity,
		Content: TooltipContent(cell.Month, cell.Year, cell.Temp, cell.Variance),
		Left:    ev.PageX,
		Top:     ev.PageY - l.TooltipOffsetY,
	}
}

// HideTooltip is the pointer-leave handler. Only opacity changes.
func HideTooltip(t Tooltip) Tooltip {
	t.Opacity = 0
	return t
}
