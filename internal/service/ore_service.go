package service

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Nicolo-Giunta-Unicam/gNt-Hotel-Manager/internal/model"
	"github.com/Nicolo-Giunta-Unicam/gNt-Hotel-Manager/internal/repository"
)

// MonthHours is one bar of the per-worker profile mini-chart.
type MonthHours struct {
	MonthKey string
	Hours    decimal.Decimal
}

// WorkerSummary accumulates a worker across every stored month. Months
// counts the grids the worker appears in at all, regardless of cell content.
type WorkerSummary struct {
	Hours    decimal.Decimal
	RestDays int
	Months   int
	Series   []MonthHours
}

type OreService interface {
	// Month returns the hours grid for year/month, synthesizing (but not
	// persisting) an empty one from the active roster when none is stored.
	Month(ctx context.Context, year int, month time.Month) (model.MonthGrid, error)
	UpdateCell(ctx context.Context, year int, month time.Month, dayIdx, workerIdx int, raw string) (model.MonthGrid, error)
	AddWorker(ctx context.Context, year int, month time.Month, workerID string) (model.MonthGrid, error)
	RemoveWorker(ctx context.Context, year int, month time.Month, workerIdx int) (model.MonthGrid, error)
	Totals(grid model.MonthGrid) []model.ColumnTotal
	WorkerSummary(ctx context.Context, workerID string) (WorkerSummary, error)
}

type oreService struct {
	grids   repository.OreRepository
	workers repository.WorkerRepository
}

func NewOreService(grids repository.OreRepository, workers repository.WorkerRepository) OreService {
	return &oreService{grids: grids, workers: workers}
}

func (s *oreService) Month(ctx context.Context, year int, month time.Month) (model.MonthGrid, error) {
	grid, found, err := s.grids.LoadMonth(ctx, model.MonthKey(year, month))
	if err != nil {
		return model.MonthGrid{}, err
	}
	if found {
		return grid, nil
	}
	active, err := s.activeWorkers(ctx)
	if err != nil {
		return model.MonthGrid{}, err
	}
	return model.NewMonthGrid(year, month, active, true), nil
}

func (s *oreService) UpdateCell(ctx context.Context, year int, month time.Month, dayIdx, workerIdx int, raw string) (model.MonthGrid, error) {
	grid, err := s.Month(ctx, year, month)
	if err != nil {
		return model.MonthGrid{}, err
	}
	if err := grid.SetCell(dayIdx, workerIdx, raw); err != nil {
		return model.MonthGrid{}, err
	}
	return grid, s.grids.SaveMonth(ctx, model.MonthKey(year, month), grid)
}

func (s *oreService) AddWorker(ctx context.Context, year int, month time.Month, workerID string) (model.MonthGrid, error) {
	grid, err := s.Month(ctx, year, month)
	if err != nil {
		return model.MonthGrid{}, err
	}
	w, err := s.findWorker(ctx, workerID)
	if err != nil {
		return model.MonthGrid{}, err
	}
	snap := model.GridWorker{ID: w.ID, Name: w.Name, Surname: w.Surname, Nickname: w.Nickname}
	if err := grid.AddWorker(snap); err != nil {
		return model.MonthGrid{}, err
	}
	return grid, s.grids.SaveMonth(ctx, model.MonthKey(year, month), grid)
}

func (s *oreService) RemoveWorker(ctx context.Context, year int, month time.Month, workerIdx int) (model.MonthGrid, error) {
	grid, err := s.Month(ctx, year, month)
	if err != nil {
		return model.MonthGrid{}, err
	}
	if err := grid.RemoveWorker(workerIdx); err != nil {
		return model.MonthGrid{}, err
	}
	return grid, s.grids.SaveMonth(ctx, model.MonthKey(year, month), grid)
}

func (s *oreService) Totals(grid model.MonthGrid) []model.ColumnTotal {
	return grid.Totals()
}

// WorkerSummary scans every stored hours grid; the worker's column index is
// looked up per grid, since columns shift between months.
func (s *oreService) WorkerSummary(ctx context.Context, workerID string) (WorkerSummary, error) {
	all, err := s.grids.LoadAll(ctx)
	if err != nil {
		return WorkerSummary{}, err
	}
	keys := make([]string, 0, len(all))
	for k := range all {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	sum := WorkerSummary{Hours: decimal.Zero}
	for _, k := range keys {
		grid := all[k]
		wi := grid.WorkerIndex(workerID)
		if wi < 0 {
			continue
		}
		sum.Months++
		totals := grid.Totals()
		sum.Hours = sum.Hours.Add(totals[wi].Hours)
		sum.RestDays += totals[wi].RestDays
		sum.Series = append(sum.Series, MonthHours{MonthKey: k, Hours: totals[wi].Hours})
	}
	sum.Hours = sum.Hours.Round(1)
	return sum, nil
}

func (s *oreService) activeWorkers(ctx context.Context) ([]model.Worker, error) {
	all, err := s.workers.Load(ctx)
	if err != nil {
		return nil, err
	}
	active := make([]model.Worker, 0, len(all))
	for _, w := range all {
		if w.Active {
			active = append(active, w)
		}
	}
	return active, nil
}

func (s *oreService) findWorker(ctx context.Context, id string) (model.Worker, error) {
	all, err := s.workers.Load(ctx)
	if err != nil {
		return model.Worker{}, err
	}
	for _, w := range all {
		if w.ID == id {
			return w, nil
		}
	}
	return model.Worker{}, ErrNotFound
}
