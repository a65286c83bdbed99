package service

import (
	"context"
	"time"

	"github.com/Nicolo-Giunta-Unicam/gNt-Hotel-Manager/internal/model"
	"github.com/Nicolo-Giunta-Unicam/gNt-Hotel-Manager/internal/repository"
)

type PresenzeService interface {
	// Month returns the presence grid for year/month, synthesizing (but not
	// persisting) an empty one from the active roster when none is stored.
	Month(ctx context.Context, year int, month time.Month) (model.MonthGrid, error)
	// ToggleCell cycles "" → X → R → "" and persists the grid.
	ToggleCell(ctx context.Context, year int, month time.Month, dayIdx, workerIdx int) (model.MonthGrid, error)
	AddWorker(ctx context.Context, year int, month time.Month, workerID string) (model.MonthGrid, error)
	RemoveWorker(ctx context.Context, year int, month time.Month, workerIdx int) (model.MonthGrid, error)
}

type presenzeService struct {
	grids   repository.PresenzeRepository
	workers repository.WorkerRepository
}

func NewPresenzeService(grids repository.PresenzeRepository, workers repository.WorkerRepository) PresenzeService {
	return &presenzeService{grids: grids, workers: workers}
}

func (s *presenzeService) Month(ctx context.Context, year int, month time.Month) (model.MonthGrid, error) {
	grid, found, err := s.grids.Load(ctx, model.MonthKey(year, month))
	if err != nil {
		return model.MonthGrid{}, err
	}
	if found {
		return grid, nil
	}
	all, err := s.workers.Load(ctx)
	if err != nil {
		return model.MonthGrid{}, err
	}
	active := make([]model.Worker, 0, len(all))
	for _, w := range all {
		if w.Active {
			active = append(active, w)
		}
	}
	// Presence snapshots carry no surname.
	return model.NewMonthGrid(year, month, active, false), nil
}

func (s *presenzeService) ToggleCell(ctx context.Context, year int, month time.Month, dayIdx, workerIdx int) (model.MonthGrid, error) {
	grid, err := s.Month(ctx, year, month)
	if err != nil {
		return model.MonthGrid{}, err
	}
	if _, err := grid.TogglePresence(dayIdx, workerIdx); err != nil {
		return model.MonthGrid{}, err
	}
	return grid, s.grids.Save(ctx, model.MonthKey(year, month), grid)
}

func (s *presenzeService) AddWorker(ctx context.Context, year int, month time.Month, workerID string) (model.MonthGrid, error) {
	grid, err := s.Month(ctx, year, month)
	if err != nil {
		return model.MonthGrid{}, err
	}
	all, err := s.workers.Load(ctx)
	if err != nil {
		return model.MonthGrid{}, err
	}
	for _, w := range all {
		if w.ID == workerID {
			if err := grid.AddWorker(model.GridWorker{ID: w.ID, Name: w.Name, Nickname: w.Nickname}); err != nil {
				return model.MonthGrid{}, err
			}
			return grid, s.grids.Save(ctx, model.MonthKey(year, month), grid)
		}
	}
	return model.MonthGrid{}, ErrNotFound
}

func (s *presenzeService) RemoveWorker(ctx context.Context, year int, month time.Month, workerIdx int) (model.MonthGrid, error) {
	grid, err := s.Month(ctx, year, month)
	if err != nil {
		return model.MonthGrid{}, err
	}
	if err := grid.RemoveWorker(workerIdx); err != nil {
		return model.MonthGrid{}, err
	}
	return grid, s.grids.Save(ctx, model.MonthKey(year, month), grid)
}
