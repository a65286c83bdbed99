// cmd/export renders a month's hours or presence grid to PDF/XLSX.
//
//	go run cmd/export/main.go -month 2024-03 -kind ore -format pdf
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Nicolo-Giunta-Unicam/gNt-Hotel-Manager/internal/config"
	"github.com/Nicolo-Giunta-Unicam/gNt-Hotel-Manager/internal/model"
	"github.com/Nicolo-Giunta-Unicam/gNt-Hotel-Manager/internal/report"
	"github.com/Nicolo-Giunta-Unicam/gNt-Hotel-Manager/internal/repository"
	"github.com/Nicolo-Giunta-Unicam/gNt-Hotel-Manager/internal/service"
	"github.com/Nicolo-Giunta-Unicam/gNt-Hotel-Manager/internal/store"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	monthFlag := flag.String("month", "", "month key, e.g. 2024-03 (default: current month)")
	kindFlag := flag.String("kind", "ore", "grid kind: ore | presenze")
	formatFlag := flag.String("format", "pdf", "output format: pdf | xlsx")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	year, month, err := parseMonth(*monthFlag)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid -month")
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

	workers := repository.NewWorkerRepository(client)
	ctx := context.Background()

	var grid model.MonthGrid
	var kind report.SheetKind
	switch *kindFlag {
	case "ore":
		kind = report.SheetOre
		svc := service.NewOreService(repository.NewOreRepository(client), workers)
		grid, err = svc.Month(ctx, year, month)
	case "presenze":
		kind = report.SheetPresenze
		svc := service.NewPresenzeService(repository.NewPresenzeRepository(client), workers)
		grid, err = svc.Month(ctx, year, month)
	default:
		log.Fatal().Str("kind", *kindFlag).Msg("unknown -kind")
	}
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load grid")
	}

	var path string
	switch *formatFlag {
	case "pdf":
		path, err = report.WriteMonthPDF(grid, kind, year, month, cfg.ExportPath)
	case "xlsx":
		path, err = report.WriteMonthXLSX(grid, kind, year, month, cfg.ExportPath)
	default:
		log.Fatal().Str("format", *formatFlag).Msg("unknown -format")
	}
	if err != nil {
		log.Fatal().Err(err).Msg("export failed")
	}
	log.Info().Str("file", path).Msg("export written")
}

// parseMonth accepts "YYYY-MM"; empty means the current month.
func parseMonth(s string) (int, time.Month, error) {
	if s == "" {
		now := time.Now()
		return now.Year(), now.Month(), nil
	}
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return 0, 0, fmt.Errorf("expected YYYY-MM: %w", err)
	}
	return t.Year(), t.Month(), nil
}
