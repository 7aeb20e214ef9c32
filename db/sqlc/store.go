package db

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"

	"github.com/banachtech/quantarb/coint"
)

// Store provides all functions to execute db queries and transactions.
type Store interface {
	GetUser(ctx context.Context, prefix string) (Registrar, error)
	CreateUser(ctx context.Context, arg CreateUserParams) error
	GetTickers(ctx context.Context) ([]string, error)
	GetCloses(ctx context.Context, ticker string) ([]DailyClose, error)
	UpsertClose(ctx context.Context, arg UpsertCloseParams) error
	GetSeries(ctx context.Context, tickers []string) (map[string]coint.Series, error)
}

// SQLStore provides all functions to execute SQL queries and transactions.
type SQLStore struct {
	db *sql.DB
	*Queries
}

// NewStore creates a new store.
func NewStore(db *sql.DB) Store {
	return &SQLStore{
		db:      db,
		Queries: New(db),
	}
}

// ConnectDB opens a postgres connection for the given source string.
func ConnectDB(source string) (*sql.DB, error) {
	conn, err := sql.Open("postgres", source)
	if err != nil {
		return nil, err
	}
	if err := conn.Ping(); err != nil {
		return nil, err
	}
	return conn, nil
}

// execTx executes a function within a database transaction.
func (store *SQLStore) execTx(ctx context.Context, fn func(*Queries) error) error {
	tx, err := store.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	q := store.Queries.WithTx(tx)
	err = fn(q)
	if err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("tx err: %v, rb err: %v", err, rbErr)
		}
		return err
	}

	return tx.Commit()
}

// GetSeries reads the close series of every requested ticker inside one
// transaction so the scan sees a consistent snapshot.
func (store *SQLStore) GetSeries(ctx context.Context, tickers []string) (map[string]coint.Series, error) {
	out := make(map[string]coint.Series, len(tickers))
	err := store.execTx(ctx, func(q *Queries) error {
		for _, ticker := range tickers {
			closes, err := q.GetCloses(ctx, ticker)
			if err != nil {
				return err
			}
			if len(closes) == 0 {
				return fmt.Errorf("no close data for ticker %s", ticker)
			}
			s := coint.Series{
				Dates:  make([]string, len(closes)),
				Values: make([]float64, len(closes)),
			}
			for i, c := range closes {
				s.Dates[i] = c.Date
				s.Values[i] = c.Close
			}
			out[ticker] = s
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
