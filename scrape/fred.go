package scrape

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"time"

	m "stressindicator/internal/model"

	"github.com/rs/zerolog"
)

const FredBaseURL = "https://api.stlouisfed.org/fred"

const fredDateLayout = "2006-01-02"

// Fred fetches economic series from the FRED observations API.
type Fred struct {
	apiKey  string
	baseURL string
	lg      zerolog.Logger
}

func NewFred(apiKey string) (*Fred, error) {
	if apiKey == "" {
		return nil, errors.New("fred api key missing")
	}
	return &Fred{
		apiKey:  apiKey,
		baseURL: FredBaseURL,
		lg:      zerolog.New(os.Stdout).With().Str("Module", "Fred").Timestamp().Logger(),
	}, nil
}

type fredObservation struct {
	Date  string `json:"date"`
	Value string `json:"value"`
}

type fredObservationsResponse struct {
	Count        int               `json:"count"`
	Observations []fredObservation `json:"observations"`
}

// Series fetches one identifier over [start, end]. A "." value marks an
// observation FRED reports as missing; it is kept as an invalid point.
func (f *Fred) Series(id string, start, end time.Time) (m.TimeSeries, error) {
	f.lg.Info().Str("series", id).Msg("Fetching FRED series")

	q := url.Values{}
	q.Set("series_id", id)
	q.Set("api_key", f.apiKey)
	q.Set("file_type", "json")
	q.Set("observation_start", start.Format(fredDateLayout))
	q.Set("observation_end", end.Format(fredDateLayout))

	reqURL := f.baseURL + "/series/observations?" + q.Encode()

	var resp fredObservationsResponse
	if err := sendRequest(reqURL, http.MethodGet, nil, &resp); err != nil {
		return m.TimeSeries{ID: id}, fmt.Errorf("fred %s\n%w", id, err)
	}

	ts := m.TimeSeries{ID: id, Points: make([]m.Point, 0, len(resp.Observations))}
	for _, obs := range resp.Observations {
		date, err := time.Parse(fredDateLayout, obs.Date)
		if err != nil {
			return m.TimeSeries{ID: id}, fmt.Errorf("fred %s invalid date %q\n%w", id, obs.Date, err)
		}

		if obs.Value == "." {
			ts.Points = append(ts.Points, m.Point{Date: date})
			continue
		}

		v, err := strconv.ParseFloat(obs.Value, 64)
		if err != nil {
			return m.TimeSeries{ID: id}, fmt.Errorf("fred %s invalid value %q\n%w", id, obs.Value, err)
		}
		ts.Points = append(ts.Points, m.Point{Date: date, Value: v, Valid: true})
	}

	f.lg.Info().Str("series", id).Int("observations", ts.Observations()).Msg("FRED series fetched")
	return ts, nil
}
