package main

import (
	"context"
	"os"
	"strings"

	"github.com/banachtech/quantarb/api"
	"github.com/banachtech/quantarb/data"
	db "github.com/banachtech/quantarb/db/sqlc"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Warn("no .env file found, using process environment")
	}

	conn, err := db.ConnectDB(os.Getenv("DB_SOURCE"))
	if err != nil {
		log.WithError(err).Fatal("cannot connect to database")
	}
	store := db.NewStore(conn)

	// LOAD_TICKERS=AAPL,MSFT,... refreshes the stored close series before
	// the server starts
	if tickers := os.Getenv("LOAD_TICKERS"); tickers != "" {
		client := data.NewClient(os.Getenv("MARKET_DATA_URL"), os.Getenv("MARKET_DATA_KEY"))
		if err := data.Load(context.Background(), store, client, strings.Split(tickers, ",")); err != nil {
			log.WithError(err).Fatal("cannot load market data")
		}
	}

	address := os.Getenv("SERVER_ADDRESS")
	if address == "" {
		address = "0.0.0.0:8080"
	}

	server := api.NewServer(store)
	log.Infof("serving on %s", address)
	if err := server.Start(address); err != nil {
		log.WithError(err).Fatal("cannot start server")
	}
}
