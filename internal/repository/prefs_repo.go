package repository

import (
	"context"

	"github.com/Nicolo-Giunta-Unicam/gNt-Hotel-Manager/internal/model"
	"github.com/Nicolo-Giunta-Unicam/gNt-Hotel-Manager/internal/store"
)

type PrefsRepository interface {
	// Load returns stored UI preferences, or the defaults when absent.
	Load(ctx context.Context) (model.UIPrefs, error)
	Save(ctx context.Context, prefs model.UIPrefs) error
}

type prefsRepo struct{ store *store.Client }

func NewPrefsRepository(s *store.Client) PrefsRepository { return &prefsRepo{store: s} }

func (r *prefsRepo) Load(ctx context.Context) (model.UIPrefs, error) {
	prefs := model.DefaultPrefs()
	found, err := r.store.Get(ctx, keyPrefs, &prefs)
	if err != nil {
		return model.DefaultPrefs(), err
	}
	if !found {
		return model.DefaultPrefs(), nil
	}
	return prefs, nil
}

func (r *prefsRepo) Save(ctx context.Context, prefs model.UIPrefs) error {
	return r.store.Set(ctx, keyPrefs, prefs)
}
