package stressind

import (
	m "stressindicator/internal/model"
)

// AssessSeries builds the quality record for one catalog entry. Expected
// observations are derived from the frequency and the actual date span of
// the fetched data, not the configured target range.
func AssessSeries(spec m.SeriesSpec, ts m.TimeSeries) m.QualityRecord {

	rec := m.QualityRecord{
		ID:          spec.ID,
		Name:        spec.Name,
		Description: spec.Description,
		Frequency:   spec.Frequency,
		Unit:        spec.Unit,
		Category:    spec.Category,
	}

	first, last, ok := ts.Span()
	if !ok {
		// nothing usable came back: zero coverage
		rec.MissingRatio = 1
		return rec
	}

	rec.FirstDate = first
	rec.LastDate = last
	rec.Observations = ts.Observations()
	rec.Expected = spec.Frequency.ExpectedObservations(first, last)

	if rec.Expected > rec.Observations {
		rec.MissingCount = rec.Expected - rec.Observations
	}
	if rec.Expected > 0 {
		rec.MissingRatio = float64(rec.MissingCount) / float64(rec.Expected)
	}
	return rec
}

// AssessAll pairs catalog entries with their fetched series by identifier.
// Entries with no matching series are assessed against an empty one.
func AssessAll(specs []m.SeriesSpec, series []m.TimeSeries) []m.QualityRecord {

	byID := make(map[string]m.TimeSeries, len(series))
	for _, ts := range series {
		byID[ts.ID] = ts
	}

	records := make([]m.QualityRecord, 0, len(specs))
	for _, spec := range specs {
		records = append(records, AssessSeries(spec, byID[spec.ID]))
	}
	return records
}

// Coverage is the fraction of target identifiers that yielded at least
// one usable observation.
func Coverage(records []m.QualityRecord) float64 {
	if len(records) == 0 {
		return 0
	}
	fetched := 0
	for _, r := range records {
		if r.Fetched() {
			fetched++
		}
	}
	return float64(fetched) / float64(len(records))
}

// CategoryMissing averages missing ratios per category over fetched
// series, in first-appearance order.
func CategoryMissing(records []m.QualityRecord) ([]m.Category, map[m.Category]float64) {

	order := make([]m.Category, 0)
	sums := make(map[m.Category]float64)
	counts := make(map[m.Category]int)

	for _, r := range records {
		if !r.Fetched() {
			continue
		}
		if _, seen := counts[r.Category]; !seen {
			order = append(order, r.Category)
		}
		sums[r.Category] += r.MissingRatio
		counts[r.Category]++
	}

	means := make(map[m.Category]float64, len(order))
	for _, c := range order {
		means[c] = sums[c] / float64(counts[c])
	}
	return order, means
}
