package domain

import "time"

// RawObservation is one record of the monthlyVariance array as published.
type RawObservation struct {
	Year     int     `json:"year"`
	Month    int     `json:"month"` // 1-12
	Variance float64 `json:"variance"`
}

// RawDataset is the JSON document served by the data source.
type RawDataset struct {
	BaseTemperature float64          `json:"baseTemperature"`
	MonthlyVariance []RawObservation `json:"monthlyVariance"`
}

// Observation is a normalized monthly record.
type Observation struct {
	Year     int     `json:"year"`
	Month    int     `json:"month"` // 0-11
	Variance float64 `json:"variance"`
	Temp     float64 `json:"temp"`
}

// Dataset holds the transformed observations in source order.
type Dataset struct {
	BaseTemperature float64       `json:"base_temperature"`
	Observations    []Observation `json:"observations"`
	LoadedAt        time.Time     `json:"loaded_at"`
}

// Len returns the number of observations.
func (d Dataset) Len() int { return len(d.Observations) }

// YearExtent returns the smallest and largest year present.
// ok is false for an empty dataset.
func (d Dataset) YearExtent() (lo, hi int, ok bool) {
	if len(d.Observations) == 0 {
		return 0, 0, false
	}
	lo, hi = d.Observations[0].Year, d.Observations[0].Year
	for _, o := range d.Observations[1:] {
		if o.Year < lo {
			lo = o.Year
		}
		if o.Year > hi {
			hi = o.Year
		}
	}
	return lo, hi, true
}

// TempExtent returns the smallest and largest temperature present.
// ok is false for an empty dataset.
func (d Dataset) TempExtent() (lo, hi float64, ok bool) {
	if len(d.Observations) == 0 {
		return 0, 0, false
	}
	lo, hi = d.Observations[0].Temp, d.Observations[0].Temp
	for _, o := range d.Observations[1:] {
		if o.Temp < lo {
			lo = o.Temp
		}
		if o.Temp > hi {
			hi = o.Temp
		}
	}
	return lo, hi, true
}
