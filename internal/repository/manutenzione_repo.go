package repository

import (
	"context"

	"github.com/Nicolo-Giunta-Unicam/gNt-Hotel-Manager/internal/model"
	"github.com/Nicolo-Giunta-Unicam/gNt-Hotel-Manager/internal/store"
)

type ManutenzioneRepository interface {
	Load(ctx context.Context) ([]model.Manutenzione, error)
	Replace(ctx context.Context, items []model.Manutenzione) error
}

type manutenzioneRepo struct{ store *store.Client }

func NewManutenzioneRepository(s *store.Client) ManutenzioneRepository {
	return &manutenzioneRepo{store: s}
}

func (r *manutenzioneRepo) Load(ctx context.Context) ([]model.Manutenzione, error) {
	var items []model.Manutenzione
	if _, err := r.store.Get(ctx, keyManutenzioni, &items); err != nil {
		return nil, err
	}
	if items == nil {
		items = []model.Manutenzione{}
	}
	return items, nil
}

func (r *manutenzioneRepo) Replace(ctx context.Context, items []model.Manutenzione) error {
	return r.store.Set(ctx, keyManutenzioni, items)
}
