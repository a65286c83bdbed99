package service

import (
	"context"

	"github.com/Nicolo-Giunta-Unicam/gNt-Hotel-Manager/internal/model"
	"github.com/Nicolo-Giunta-Unicam/gNt-Hotel-Manager/internal/repository"
)

type PrefsService interface {
	Load(ctx context.Context) (model.UIPrefs, error)
	SetTheme(ctx context.Context, isDark bool) (model.UIPrefs, error)
	SetScale(ctx context.Context, scale int) (model.UIPrefs, error)
}

type prefsService struct {
	repo repository.PrefsRepository
}

func NewPrefsService(repo repository.PrefsRepository) PrefsService {
	return &prefsService{repo: repo}
}

func (s *prefsService) Load(ctx context.Context) (model.UIPrefs, error) {
	return s.repo.Load(ctx)
}

func (s *prefsService) SetTheme(ctx context.Context, isDark bool) (model.UIPrefs, error) {
	prefs, err := s.repo.Load(ctx)
	if err != nil {
		return prefs, err
	}
	prefs.IsDark = isDark
	return prefs, s.repo.Save(ctx, prefs)
}

func (s *prefsService) SetScale(ctx context.Context, scale int) (model.UIPrefs, error) {
	prefs, err := s.repo.Load(ctx)
	if err != nil {
		return prefs, err
	}
	if scale < 1 {
		scale = 1
	}
	if scale > 4 {
		scale = 4
	}
	prefs.UIScale = scale
	return prefs, s.repo.Save(ctx, prefs)
}
