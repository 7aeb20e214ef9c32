package db

// Registrar is one issued API key. Token is the bcrypt hash of the full
// key; only the prefix is stored in clear for lookup.
type Registrar struct {
	Email     string
	Prefix    string
	Token     string
	ExpiredAt string
}

// DailyClose is one daily closing price observation.
type DailyClose struct {
	Ticker string
	Date   string
	Close  float64
}

type CreateUserParams struct {
	Email     string
	Prefix    string
	Token     string
	ExpiredAt string
}

type UpsertCloseParams struct {
	Ticker string
	Date   string
	Close  float64
}
