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

func testYahoo(baseURL string) *Yahoo {
	return &Yahoo{
		baseURL: baseURL,
		lg:      zerolog.New(os.Stdout).With().Str("Module", "Yahoo").Timestamp().Logger(),
	}
}

func TestYahooSeries(t *testing.T) {

	// 2020-01-02 and 2020-01-03, second close null
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/%5EGSPC", r.URL.EscapedPath())
		assert.Equal(t, "1d", r.URL.Query().Get("interval"))
		assert.NotEmpty(t, r.Header.Get("User-Agent"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"chart": {
				"result": [{
					"timestamp": [1577964600, 1578051000],
					"indicators": {"quote": [{"close": [3257.85, null]}]}
				}],
				"error": null
			}
		}`))
	}))
	defer srv.Close()

	y := testYahoo(srv.URL)

	ts, err := y.Series("^GSPC", time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC), time.Date(2020, 1, 5, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	assert.Equal(t, "^GSPC", ts.ID)
	require.Len(t, ts.Points, 2)
	assert.True(t, ts.Points[0].Valid)
	assert.Equal(t, 3257.85, ts.Points[0].Value)
	assert.Equal(t, time.Date(2020, 1, 2, 0, 0, 0, 0, time.UTC), ts.Points[0].Date)
	assert.False(t, ts.Points[1].Valid)
	assert.Equal(t, 1, ts.Observations())
}

func TestYahooSeriesProviderError(t *testing.T) {

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"chart": {
				"result": null,
				"error": {"code": "Not Found", "description": "No data found, symbol may be delisted"}
			}
		}`))
	}))
	defer srv.Close()

	y := testYahoo(srv.URL)

	ts, err := y.Series("NOPE", time.Now().AddDate(0, -1, 0), time.Now())
	assert.Error(t, err)
	assert.True(t, ts.Empty())
}

func TestYahooSeriesEmptyResult(t *testing.T) {

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"chart": {"result": [], "error": null}}`))
	}))
	defer srv.Close()

	y := testYahoo(srv.URL)

	_, err := y.Series("NOPE", time.Now().AddDate(0, -1, 0), time.Now())
	assert.Error(t, err)
}

func TestYahooSeriesCollapsesIntraday(t *testing.T) {

	// two timestamps falling on the same UTC day keep only the first
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"chart": {
				"result": [{
					"timestamp": [1577964600, 1577970000],
					"indicators": {"quote": [{"close": [3257.85, 3260.10]}]}
				}],
				"error": null
			}
		}`))
	}))
	defer srv.Close()

	y := testYahoo(srv.URL)

	ts, err := y.Series("^GSPC", time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC), time.Date(2020, 1, 5, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Len(t, ts.Points, 1)
}
