package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBandScale_Forward(t *testing.T) {
	s := NewBandScale(4, 0, 100)

	assert.Equal(t, 25.0, s.Bandwidth())
	assert.Equal(t, 0.0, s.Position(0))
	assert.Equal(t, 75.0, s.Position(3))
	assert.Equal(t, 12.5, s.Center(0))
}

func TestBandScale_Reversed(t *testing.T) {
	s := NewBandScale(12, 480, 0)

	assert.Equal(t, 40.0, s.Bandwidth())
	assert.Equal(t, 440.0, s.Position(0), "first value sits nearest the range start")
	assert.Equal(t, 0.0, s.Position(11))
	assert.Equal(t, 460.0, s.Center(0))
}

func TestBandScale_Empty(t *testing.T) {
	s := NewBandScale(0, 0, 10)
	assert.Equal(t, 10.0, s.Bandwidth())
}

func TestLinearScale(t *testing.T) {
	s := NewLinearScale(2, 12, 0, 250)

	assert.Equal(t, 0.0, s.Map(2))
	assert.Equal(t, 250.0, s.Map(12))
	assert.InDelta(t, 125.0, s.Map(7), 1e-9)
}

func TestLinearScale_DegenerateDomain(t *testing.T) {
	s := NewLinearScale(5, 5, 0, 100)
	assert.Equal(t, 50.0, s.Map(5))
}
