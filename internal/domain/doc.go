// Package domain models monthly global-temperature anomaly data and the
// calendar heatmap computed from it.
//
// # Data Source
//
// The dataset is the freeCodeCamp "global temperature" reference file:
//
//	{"baseTemperature": 8.66,
//	 "monthlyVariance": [{"year": 1753, "month": 1, "variance": -1.366}, ...]}
//
// Each record is one (year, month) observation. The source month is 1-based
// (1 = January) and is normalized to 0-based during [Transform]. The absolute
// temperature of a record is baseTemperature + variance, in degrees Celsius.
//
// Records are not validated: missing fields decode as zero and flow through
// unchanged. Datasets are assumed to contain exactly twelve records per year.
//
// # Chart Geometry
//
// [BuildChart] turns a [Dataset] into a [Chart] without side effects:
//
//	width  = HMargin + CellWidth * len(observations) / 12
//	height = VMargin + CellHeight * 12
//
//	cell.x = HMargin + (year - FirstYear) * CellWidth
//	cell.y = height - VMargin - (month + 1) * CellHeight
//
// Cell placement comes from the arithmetic above. The band scales only place
// axis ticks.
//
// # Color Buckets
//
// The temperature range [floor(min), ceil(max)] is split into one bucket per
// palette color. Bucket i holds temperatures t with
//
//	zMin + i*step < t <= zMin + (i+1)*step
//
// so a temperature exactly equal to zMin falls in no bucket and its cell is
// left without a fill. See [ZScale.BucketIndex].
package domain
