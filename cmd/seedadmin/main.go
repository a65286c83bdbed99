// cmd/seedadmin primes the users collection with the default
// administrator (admin / admin123) when it is empty.
package main

import (
	"context"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Nicolo-Giunta-Unicam/gNt-Hotel-Manager/internal/config"
	"github.com/Nicolo-Giunta-Unicam/gNt-Hotel-Manager/internal/repository"
	"github.com/Nicolo-Giunta-Unicam/gNt-Hotel-Manager/internal/store"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	local, err := store.NewSQLiteLocal(cfg.LocalDBPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open local mirror")
	}
	remote := store.NewHTTPRemote(cfg.StoreURL, time.Duration(cfg.StoreTimeoutSeconds)*time.Second)
	client := store.NewClient(remote, local,
		store.WithRetries(cfg.StoreRetries),
		store.WithLogger(log.Logger),
	)

	users := repository.NewUserRepository(client)
	loaded, err := users.Load(context.Background())
	if err != nil {
		log.Fatal().Err(err).Msg("seed failed")
	}
	client.Flush()

	log.Info().Int("users", len(loaded)).Msg("users collection ready (default: admin / admin123)")
}
