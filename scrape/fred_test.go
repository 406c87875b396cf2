package scrape

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFred(baseURL string) *Fred {
	return &Fred{
		apiKey:  "testkey",
		baseURL: baseURL,
		lg:      zerolog.New(os.Stdout).With().Str("Module", "Fred").Timestamp().Logger(),
	}
}

func TestFredSeries(t *testing.T) {

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/series/observations", r.URL.Path)
		assert.Equal(t, "DGS10", r.URL.Query().Get("series_id"))
		assert.Equal(t, "testkey", r.URL.Query().Get("api_key"))
		assert.Equal(t, "json", r.URL.Query().Get("file_type"))
		assert.Equal(t, "2020-01-01", r.URL.Query().Get("observation_start"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"count": 3,
			"observations": [
				{"date": "2020-01-01", "value": "."},
				{"date": "2020-01-02", "value": "1.88"},
				{"date": "2020-01-03", "value": "1.80"}
			]
		}`))
	}))
	defer srv.Close()

	f := testFred(srv.URL)

	ts, err := f.Series("DGS10", time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC), time.Date(2020, 1, 31, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	assert.Equal(t, "DGS10", ts.ID)
	require.Len(t, ts.Points, 3)

	// "." is kept as a dated missing observation
	assert.False(t, ts.Points[0].Valid)
	assert.True(t, ts.Points[1].Valid)
	assert.Equal(t, 1.88, ts.Points[1].Value)
	assert.Equal(t, 2, ts.Observations())
}

func TestFredSeriesHTTPError(t *testing.T) {

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error_message":"Bad Request"}`, http.StatusBadRequest)
	}))
	defer srv.Close()

	f := testFred(srv.URL)

	ts, err := f.Series("NOPE", time.Now().AddDate(-1, 0, 0), time.Now())
	assert.Error(t, err)
	assert.Equal(t, "NOPE", ts.ID)
	assert.True(t, ts.Empty())
}

func TestFredSeriesBadValue(t *testing.T) {

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"observations":[{"date":"2020-01-02","value":"oops"}]}`))
	}))
	defer srv.Close()

	f := testFred(srv.URL)

	_, err := f.Series("DGS10", time.Now().AddDate(-1, 0, 0), time.Now())
	assert.Error(t, err)
}

func TestNewFredRequiresKey(t *testing.T) {
	_, err := NewFred("")
	assert.Error(t, err)

	f, err := NewFred("abc")
	require.NoError(t, err)
	assert.Equal(t, FredBaseURL, f.baseURL)
}
