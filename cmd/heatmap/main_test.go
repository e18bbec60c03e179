package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/couchcryptid/temperature-heatmap/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestPrintPalette(t *testing.T) {
	var buf bytes.Buffer
	p := domain.DefaultPalette()

	printPalette(&buf, p)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, p.Len())
	for i, line := range lines {
		assert.Contains(t, line, p.Hex(i))
	}
}

func TestPrintCells_FiltersYear(t *testing.T) {
	var buf bytes.Buffer
	cells := []domain.Cell{
		{Year: 1753, Month: 0, Temp: 8.25, Variance: -0.41, Bucket: 3},
		{Year: 1754, Month: 1, Temp: 9.0, Variance: 0.34, Bucket: 5},
	}

	printCells(&buf, cells, 1754, domain.DefaultPalette())

	out := buf.String()
	assert.NotContains(t, out, "1753")
	assert.Contains(t, out, "1754 February")
	assert.Contains(t, out, "9.00°C")
	assert.Contains(t, out, "0.34°C")
}

func TestSwatch_Unbucketed(t *testing.T) {
	s := swatch(domain.DefaultPalette(), -1)
	assert.NotContains(t, s, "#")
	assert.Contains(t, s, "-")
}
