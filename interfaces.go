package stressind

import (
	"time"

	m "stressindicator/internal/model"
)

// SeriesFetcher turns an identifier and a date range into a time series.
// Implemented by scrape.Fred and scrape.Yahoo.
type SeriesFetcher interface {
	Series(id string, start, end time.Time) (m.TimeSeries, error)
}

// Notifier receives the one-line run summary after a pipeline run.
type Notifier interface {
	SendMessage(msg string)
}
