package stressind

import (
	m "stressindicator/internal/model"

	"github.com/rs/zerolog"
)

// ComputeSpreads derives one series per formula from the raw collection.
// A formula whose inputs are absent or empty yields an empty series; the
// omission is logged, never fatal.
func ComputeSpreads(formulas []m.SpreadFormula, raw []m.TimeSeries, lg zerolog.Logger) []m.TimeSeries {

	byID := make(map[string]m.TimeSeries, len(raw))
	for _, ts := range raw {
		byID[ts.ID] = ts
	}

	spreads := make([]m.TimeSeries, 0, len(formulas))
	for _, f := range formulas {
		minuend, okA := byID[f.Minuend]
		subtrahend, okB := byID[f.Subtrahend]

		if !okA || !okB || minuend.Empty() || subtrahend.Empty() {
			lg.Warn().
				Str("spread", f.Name).
				Str("minuend", f.Minuend).
				Str("subtrahend", f.Subtrahend).
				Msg("Spread inputs missing or empty, emitting empty series")
			spreads = append(spreads, m.TimeSeries{ID: f.Name})
			continue
		}

		spreads = append(spreads, subtract(f.Name, minuend, subtrahend))
	}
	return spreads
}

// subtract inner-joins two series on date. Dates present in only one
// input are dropped; a shared date where either side is missing keeps the
// date with no value.
func subtract(name string, a, b m.TimeSeries) m.TimeSeries {

	bByDate := make(map[int64]m.Point, len(b.Points))
	for _, p := range b.Points {
		bByDate[p.Date.Unix()] = p
	}

	out := m.TimeSeries{ID: name}
	for _, pa := range a.Points {
		pb, ok := bByDate[pa.Date.Unix()]
		if !ok {
			continue
		}
		if !pa.Valid || !pb.Valid {
			out.Points = append(out.Points, m.Point{Date: pa.Date})
			continue
		}
		out.Points = append(out.Points, m.Point{
			Date:  pa.Date,
			Value: pa.Value - pb.Value,
			Valid: true,
		})
	}
	return out
}
