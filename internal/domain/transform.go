package domain

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// ParseDataset decodes the source JSON document.
func ParseDataset(data []byte) (RawDataset, error) {
	var raw RawDataset
	if err := json.Unmarshal(data, &raw); err != nil {
		return RawDataset{}, fmt.Errorf("parse dataset: %w", err)
	}
	return raw, nil
}

// Transform normalizes months to 0-11 and derives the absolute temperature
// of every record. Records are passed through without bounds checks.
func Transform(raw RawDataset) Dataset {
	obs := make([]Observation, len(raw.MonthlyVariance))
	for i, r := range raw.MonthlyVariance {
		obs[i] = Observation{
			Year:     r.Year,
			Month:    r.Month - 1,
			Variance: r.Variance,
			Temp:     raw.BaseTemperature + r.Variance,
		}
	}
	return Dataset{
		BaseTemperature: raw.BaseTemperature,
		Observations:    obs,
		LoadedAt:        clock.Now(),
	}
}

// Describe summarizes the dataset as "<first> - <last>: base temperature <base>℃",
// using the first and last records in source order.
func Describe(d Dataset) string {
	if len(d.Observations) == 0 {
		return ""
	}
	first := d.Observations[0].Year
	last := d.Observations[len(d.Observations)-1].Year
	return fmt.Sprintf("%d - %d: base temperature %s℃",
		first, last, strconv.FormatFloat(d.BaseTemperature, 'f', -1, 64))
}
