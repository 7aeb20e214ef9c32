package db

import (
	"context"
	"database/sql"
)

// DBTX is satisfied by both *sql.DB and *sql.Tx.
type DBTX interface {
	ExecContext(context.Context, string, ...interface{}) (sql.Result, error)
	QueryContext(context.Context, string, ...interface{}) (*sql.Rows, error)
	QueryRowContext(context.Context, string, ...interface{}) *sql.Row
}

type Queries struct {
	db DBTX
}

func New(db DBTX) *Queries {
	return &Queries{db: db}
}

func (q *Queries) WithTx(tx *sql.Tx) *Queries {
	return &Queries{db: tx}
}

func (q *Queries) GetUser(ctx context.Context, prefix string) (Registrar, error) {
	var user Registrar
	row := q.db.QueryRowContext(ctx, `SELECT "email_address", "prefix", "token", "expired_at" FROM registrar WHERE "prefix" = $1`, prefix)
	err := row.Scan(&user.Email, &user.Prefix, &user.Token, &user.ExpiredAt)
	return user, err
}

func (q *Queries) CreateUser(ctx context.Context, arg CreateUserParams) error {
	_, err := q.db.ExecContext(ctx, `INSERT INTO registrar ("email_address", "prefix", "token", "expired_at") VALUES ($1, $2, $3, $4)`, arg.Email, arg.Prefix, arg.Token, arg.ExpiredAt)
	return err
}

func (q *Queries) GetTickers(ctx context.Context) ([]string, error) {
	rows, err := q.db.QueryContext(ctx, `SELECT DISTINCT "ticker" FROM daily_close ORDER BY "ticker"`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var tickers []string
	for rows.Next() {
		var ticker string
		if err := rows.Scan(&ticker); err != nil {
			return nil, err
		}
		tickers = append(tickers, ticker)
	}
	return tickers, rows.Err()
}

func (q *Queries) GetCloses(ctx context.Context, ticker string) ([]DailyClose, error) {
	rows, err := q.db.QueryContext(ctx, `SELECT "ticker", "date", "close" FROM daily_close WHERE "ticker" = $1 ORDER BY "date"`, ticker)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var closes []DailyClose
	for rows.Next() {
		var c DailyClose
		if err := rows.Scan(&c.Ticker, &c.Date, &c.Close); err != nil {
			return nil, err
		}
		closes = append(closes, c)
	}
	return closes, rows.Err()
}

func (q *Queries) UpsertClose(ctx context.Context, arg UpsertCloseParams) error {
	_, err := q.db.ExecContext(ctx, `INSERT INTO daily_close ("ticker", "date", "close") VALUES ($1, $2, $3)
		ON CONFLICT ("ticker", "date") DO UPDATE SET "close" = EXCLUDED."close"`, arg.Ticker, arg.Date, arg.Close)
	return err
}
