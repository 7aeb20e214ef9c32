// Package data downloads daily close series for the pair scanner.
package data

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"time"

	"github.com/banachtech/quantarb/coint"
	db "github.com/banachtech/quantarb/db/sqlc"
	"github.com/schollz/progressbar/v3"
	log "github.com/sirupsen/logrus"
)

type hist struct {
	Close string `json:"4. close"`
}

type alphaData struct {
	Hist map[string]hist `json:"Time Series (Daily)"`
}

// Client fetches daily closes from an alphavantage-style endpoint.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

// DailyCloses returns the full daily close history of a ticker, oldest
// observation first.
func (c *Client) DailyCloses(ticker string) (coint.Series, error) {
	url := fmt.Sprintf("%s/query?function=TIME_SERIES_DAILY&symbol=%s&outputsize=full&apikey=%s", c.baseURL, ticker, c.apiKey)

	resp, err := c.http.Get(url)
	if err != nil {
		return coint.Series{}, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return coint.Series{}, fmt.Errorf("fetch %s: status %d", ticker, resp.StatusCode)
	}

	var target alphaData
	if err := json.NewDecoder(resp.Body).Decode(&target); err != nil {
		return coint.Series{}, err
	}
	if len(target.Hist) == 0 {
		return coint.Series{}, fmt.Errorf("no daily history for %s", ticker)
	}

	dates := make([]string, 0, len(target.Hist))
	for d := range target.Hist {
		dates = append(dates, d)
	}
	sort.Strings(dates)

	s := coint.Series{Dates: dates, Values: make([]float64, len(dates))}
	for i, d := range dates {
		px, err := strconv.ParseFloat(target.Hist[d].Close, 64)
		if err != nil {
			return coint.Series{}, fmt.Errorf("bad close for %s on %s: %w", ticker, d, err)
		}
		s.Values[i] = px
	}
	return s, nil
}

// Universe downloads close series for every ticker. Tickers that fail to
// download are logged and skipped; the download only fails as a whole when
// nothing could be fetched.
func (c *Client) Universe(tickers []string) (map[string]coint.Series, error) {
	out := make(map[string]coint.Series, len(tickers))
	bar := progressbar.Default(int64(len(tickers)), "downloading daily closes")
	for _, ticker := range tickers {
		s, err := c.DailyCloses(ticker)
		if err != nil {
			log.WithError(err).Warnf("skipping %s", ticker)
		} else {
			out[ticker] = s
		}
		bar.Add(1)
	}
	if len(out) == 0 {
		return nil, errors.New("no tickers could be downloaded")
	}
	return out, nil
}

// Load downloads the universe and upserts every observation into the
// store, so later scans can read a consistent snapshot from the database.
func Load(ctx context.Context, store db.Store, c *Client, tickers []string) error {
	universe, err := c.Universe(tickers)
	if err != nil {
		return err
	}
	for ticker, s := range universe {
		for i := range s.Values {
			err := store.UpsertClose(ctx, db.UpsertCloseParams{Ticker: ticker, Date: s.Dates[i], Close: s.Values[i]})
			if err != nil {
				return err
			}
		}
		log.Infof("stored %d closes for %s", len(s.Values), ticker)
	}
	return nil
}
