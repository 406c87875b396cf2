package stressind

import (
	"os"
	"testing"
	"time"

	m "stressindicator/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, mo time.Month, d int) time.Time {
	return time.Date(y, mo, d, 0, 0, 0, 0, time.UTC)
}

func testLogger() zerolog.Logger {
	return zerolog.New(os.Stdout).With().Str("Module", "Test").Timestamp().Logger()
}

func valid(d time.Time, v float64) m.Point {
	return m.Point{Date: d, Value: v, Valid: true}
}

func TestComputeSpreadsInnerJoin(t *testing.T) {

	// A has two dates, B only one: the spread keeps the shared date only
	raw := []m.TimeSeries{
		{ID: "A", Points: []m.Point{valid(date(2020, 1, 1), 1.0), valid(date(2020, 1, 2), 2.0)}},
		{ID: "B", Points: []m.Point{valid(date(2020, 1, 1), 0.5)}},
	}
	formulas := []m.SpreadFormula{{Name: "A_MINUS_B", Minuend: "A", Subtrahend: "B"}}

	spreads := ComputeSpreads(formulas, raw, testLogger())
	require.Len(t, spreads, 1)

	s := spreads[0]
	assert.Equal(t, "A_MINUS_B", s.ID)
	require.Len(t, s.Points, 1)
	assert.Equal(t, date(2020, 1, 1), s.Points[0].Date)
	assert.Equal(t, 0.5, s.Points[0].Value)
	assert.True(t, s.Points[0].Valid)
}

func TestComputeSpreadsIntersectionOrdered(t *testing.T) {

	raw := []m.TimeSeries{
		{ID: "A", Points: []m.Point{
			valid(date(2020, 1, 1), 3.0),
			valid(date(2020, 1, 2), 3.1),
			valid(date(2020, 1, 3), 3.2),
		}},
		{ID: "B", Points: []m.Point{
			valid(date(2020, 1, 2), 1.0),
			valid(date(2020, 1, 3), 1.1),
			valid(date(2020, 1, 6), 1.2),
		}},
	}

	spreads := ComputeSpreads([]m.SpreadFormula{{Name: "S", Minuend: "A", Subtrahend: "B"}}, raw, testLogger())
	require.Len(t, spreads, 1)

	dates := make([]time.Time, 0)
	for _, p := range spreads[0].Points {
		dates = append(dates, p.Date)
	}
	assert.Equal(t, []time.Time{date(2020, 1, 2), date(2020, 1, 3)}, dates)
	assert.True(t, dates[0].Before(dates[1]))
}

func TestComputeSpreadsEmptyInput(t *testing.T) {

	raw := []m.TimeSeries{
		{ID: "A", Points: []m.Point{valid(date(2020, 1, 1), 1.0)}},
		{ID: "B"}, // fetched nothing
	}
	formulas := []m.SpreadFormula{
		{Name: "A_MINUS_B", Minuend: "A", Subtrahend: "B"},
		{Name: "A_MINUS_MISSING", Minuend: "A", Subtrahend: "NOT_FETCHED"},
	}

	spreads := ComputeSpreads(formulas, raw, testLogger())
	require.Len(t, spreads, 2)
	for _, s := range spreads {
		assert.True(t, s.Empty(), "%s should be empty", s.ID)
		assert.Empty(t, s.Points)
	}
}

func TestComputeSpreadsMissingOnSharedDate(t *testing.T) {

	raw := []m.TimeSeries{
		{ID: "A", Points: []m.Point{valid(date(2020, 1, 1), 1.0), {Date: date(2020, 1, 2)}}},
		{ID: "B", Points: []m.Point{valid(date(2020, 1, 1), 0.25), valid(date(2020, 1, 2), 0.5)}},
	}

	spreads := ComputeSpreads([]m.SpreadFormula{{Name: "S", Minuend: "A", Subtrahend: "B"}}, raw, testLogger())
	require.Len(t, spreads[0].Points, 2)
	assert.True(t, spreads[0].Points[0].Valid)
	assert.Equal(t, 0.75, spreads[0].Points[0].Value)
	// shared date where the minuend is missing stays dated but valueless
	assert.False(t, spreads[0].Points[1].Valid)
}
