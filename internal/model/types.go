package model

import (
	"time"
)

// Point is a single dated observation. Valid is false when the provider
// reported the date without a usable value (FRED ".", Yahoo null close).
type Point struct {
	Date  time.Time
	Value float64
	Valid bool
}

// TimeSeries is an ordered sequence of points. Dates are unique and
// increasing. The stage that produced it owns it; downstream reads only.
type TimeSeries struct {
	ID     string
	Points []Point
}

// Observations counts usable values.
func (ts TimeSeries) Observations() int {
	n := 0
	for _, p := range ts.Points {
		if p.Valid {
			n++
		}
	}
	return n
}

// Empty reports whether the series carries no usable value at all.
func (ts TimeSeries) Empty() bool {
	return ts.Observations() == 0
}

// Span returns the first and last dates holding a usable value.
func (ts TimeSeries) Span() (first, last time.Time, ok bool) {
	for _, p := range ts.Points {
		if !p.Valid {
			continue
		}
		if !ok {
			first = p.Date
			ok = true
		}
		last = p.Date
	}
	return first, last, ok
}

// Latest returns the most recent usable value.
func (ts TimeSeries) Latest() (time.Time, float64, bool) {
	for i := len(ts.Points) - 1; i >= 0; i-- {
		if ts.Points[i].Valid {
			return ts.Points[i].Date, ts.Points[i].Value, true
		}
	}
	return time.Time{}, 0, false
}

// SeriesSpec is the static catalog entry for one indicator. Defined at
// configuration time, never mutated.
type SeriesSpec struct {
	ID          string
	Name        string
	Description string
	Frequency   Frequency
	Unit        string
	Category    Category
}

// SpreadFormula defines a derived series as minuend - subtrahend,
// aligned by date.
type SpreadFormula struct {
	Name        string
	Description string
	Minuend     string
	Subtrahend  string
}

// QualityRecord is the per-series fetch outcome. Built for the metadata
// tables and the quality report, discarded afterwards.
type QualityRecord struct {
	ID           string
	Name         string
	Description  string
	Frequency    Frequency
	Unit         string
	Category     Category
	Observations int
	Expected     int
	MissingCount int
	MissingRatio float64
	FirstDate    time.Time
	LastDate     time.Time
}

// Fetched reports whether at least one usable observation came back.
func (r QualityRecord) Fetched() bool {
	return r.Observations > 0
}
