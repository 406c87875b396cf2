package scrape

import (
	"fmt"
	"net/http"
	"net/url"
	"os"
	"time"

	m "stressindicator/internal/model"

	"github.com/rs/zerolog"
)

const YahooBaseURL = "https://query1.finance.yahoo.com/v8/finance/chart"

// Yahoo fetches daily closes from the Yahoo Finance chart API. No
// credential; the endpoint rejects requests without a browser-ish agent.
type Yahoo struct {
	baseURL string
	lg      zerolog.Logger
}

func NewYahoo() *Yahoo {
	return &Yahoo{
		baseURL: YahooBaseURL,
		lg:      zerolog.New(os.Stdout).With().Str("Module", "Yahoo").Timestamp().Logger(),
	}
}

type yahooChartResponse struct {
	Chart struct {
		Result []struct {
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Close []*float64 `json:"close"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

// Series fetches the daily close series for a ticker over [start, end].
// A null close is kept as an invalid point.
func (y *Yahoo) Series(ticker string, start, end time.Time) (m.TimeSeries, error) {
	y.lg.Info().Str("ticker", ticker).Msg("Fetching Yahoo series")

	q := url.Values{}
	q.Set("period1", fmt.Sprintf("%d", start.Unix()))
	q.Set("period2", fmt.Sprintf("%d", end.AddDate(0, 0, 1).Unix()))
	q.Set("interval", "1d")
	q.Set("events", "history")

	reqURL := y.baseURL + "/" + url.PathEscape(ticker) + "?" + q.Encode()
	header := map[string]string{
		"User-Agent": "Mozilla/5.0 (compatible; stressindicator/1.0)",
	}

	var resp yahooChartResponse
	if err := sendRequest(reqURL, http.MethodGet, header, &resp); err != nil {
		return m.TimeSeries{ID: ticker}, fmt.Errorf("yahoo %s\n%w", ticker, err)
	}

	if resp.Chart.Error != nil {
		return m.TimeSeries{ID: ticker}, fmt.Errorf("yahoo %s: %s (%s)", ticker, resp.Chart.Error.Description, resp.Chart.Error.Code)
	}
	if len(resp.Chart.Result) == 0 || len(resp.Chart.Result[0].Indicators.Quote) == 0 {
		return m.TimeSeries{ID: ticker}, fmt.Errorf("yahoo %s: empty chart result", ticker)
	}

	result := resp.Chart.Result[0]
	closes := result.Indicators.Quote[0].Close

	ts := m.TimeSeries{ID: ticker, Points: make([]m.Point, 0, len(result.Timestamp))}
	var lastDate time.Time
	for i, sec := range result.Timestamp {
		if i >= len(closes) {
			break
		}

		date := time.Unix(sec, 0).UTC().Truncate(24 * time.Hour)
		// intraday bars collapse onto the last daily point
		if !lastDate.IsZero() && !date.After(lastDate) {
			continue
		}
		lastDate = date

		if closes[i] == nil {
			ts.Points = append(ts.Points, m.Point{Date: date})
			continue
		}
		ts.Points = append(ts.Points, m.Point{Date: date, Value: *closes[i], Valid: true})
	}

	y.lg.Info().Str("ticker", ticker).Int("observations", ts.Observations()).Msg("Yahoo series fetched")
	return ts, nil
}
