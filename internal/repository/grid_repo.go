package repository

import (
	"context"

	"github.com/Nicolo-Giunta-Unicam/gNt-Hotel-Manager/internal/model"
	"github.com/Nicolo-Giunta-Unicam/gNt-Hotel-Manager/internal/store"
)

// OreRepository holds every hours grid in one map under "oreData",
// keyed "YYYY-MM". Saving a month rewrites the whole map.
type OreRepository interface {
	LoadAll(ctx context.Context) (map[string]model.MonthGrid, error)
	LoadMonth(ctx context.Context, monthKey string) (model.MonthGrid, bool, error)
	SaveMonth(ctx context.Context, monthKey string, grid model.MonthGrid) error
}

type oreRepo struct{ store *store.Client }

func NewOreRepository(s *store.Client) OreRepository { return &oreRepo{store: s} }

func (r *oreRepo) LoadAll(ctx context.Context) (map[string]model.MonthGrid, error) {
	var all map[string]model.MonthGrid
	if _, err := r.store.Get(ctx, keyOre, &all); err != nil {
		return nil, err
	}
	if all == nil {
		all = map[string]model.MonthGrid{}
	}
	return all, nil
}

func (r *oreRepo) LoadMonth(ctx context.Context, monthKey string) (model.MonthGrid, bool, error) {
	all, err := r.LoadAll(ctx)
	if err != nil {
		return model.MonthGrid{}, false, err
	}
	grid, ok := all[monthKey]
	return grid, ok, nil
}

func (r *oreRepo) SaveMonth(ctx context.Context, monthKey string, grid model.MonthGrid) error {
	all, err := r.LoadAll(ctx)
	if err != nil {
		return err
	}
	all[monthKey] = grid
	return r.store.Set(ctx, keyOre, all)
}

// PresenzeRepository stores one presence grid per store key ("pres-YYYY-MM"),
// unlike the hours grids which share a single map.
type PresenzeRepository interface {
	Load(ctx context.Context, monthKey string) (model.MonthGrid, bool, error)
	Save(ctx context.Context, monthKey string, grid model.MonthGrid) error
}

type presenzeRepo struct{ store *store.Client }

func NewPresenzeRepository(s *store.Client) PresenzeRepository { return &presenzeRepo{store: s} }

func (r *presenzeRepo) Load(ctx context.Context, monthKey string) (model.MonthGrid, bool, error) {
	var grid model.MonthGrid
	found, err := r.store.Get(ctx, presencePrefix+monthKey, &grid)
	if err != nil {
		return model.MonthGrid{}, false, err
	}
	return grid, found, nil
}

func (r *presenzeRepo) Save(ctx context.Context, monthKey string, grid model.MonthGrid) error {
	return r.store.Set(ctx, presencePrefix+monthKey, grid)
}
