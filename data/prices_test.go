package data

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func fakeAlpha(t *testing.T) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		symbol := r.URL.Query().Get("symbol")
		switch symbol {
		case "AAPL":
			fmt.Fprint(w, `{"Time Series (Daily)": {
				"2024-01-03": {"4. close": "184.25"},
				"2024-01-02": {"4. close": "185.64"},
				"2024-01-04": {"4. close": "181.91"}}}`)
		case "BADPX":
			fmt.Fprint(w, `{"Time Series (Daily)": {"2024-01-02": {"4. close": "n/a"}}}`)
		default:
			fmt.Fprint(w, `{}`)
		}
	}))
}

func TestDailyCloses(t *testing.T) {
	srv := fakeAlpha(t)
	defer srv.Close()

	c := NewClient(srv.URL, "demo")
	s, err := c.DailyCloses("AAPL")
	require.NoError(t, err)
	require.Equal(t, []string{"2024-01-02", "2024-01-03", "2024-01-04"}, s.Dates)
	require.Equal(t, []float64{185.64, 184.25, 181.91}, s.Values)

	_, err = c.DailyCloses("UNKNOWN")
	require.Error(t, err)

	_, err = c.DailyCloses("BADPX")
	require.Error(t, err)
}

func TestUniverseSkipsFailures(t *testing.T) {
	srv := fakeAlpha(t)
	defer srv.Close()

	c := NewClient(srv.URL, "demo")
	universe, err := c.Universe([]string{"AAPL", "UNKNOWN"})
	require.NoError(t, err)
	require.Len(t, universe, 1)
	require.Contains(t, universe, "AAPL")

	_, err = c.Universe([]string{"UNKNOWN"})
	require.Error(t, err)
}
