package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Nicolo-Giunta-Unicam/gNt-Hotel-Manager/internal/dto"
	"github.com/Nicolo-Giunta-Unicam/gNt-Hotel-Manager/internal/model"
	"github.com/Nicolo-Giunta-Unicam/gNt-Hotel-Manager/internal/repository"
)

// ManutenzioneFilter selects which tickets List returns.
type ManutenzioneFilter string

const (
	ManutenzioniOpen ManutenzioneFilter = "open"
	ManutenzioniDone ManutenzioneFilter = "done"
	ManutenzioniAll  ManutenzioneFilter = "all"
)

type ManutenzioniService interface {
	List(ctx context.Context, filter ManutenzioneFilter) ([]model.Manutenzione, error)
	Create(ctx context.Context, req dto.ManutenzioneRequest) (*model.Manutenzione, error)
	Update(ctx context.Context, id string, req dto.ManutenzioneRequest) (*model.Manutenzione, error)
	ToggleDone(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

type manutenzioniService struct {
	repo repository.ManutenzioneRepository
}

func NewManutenzioniService(repo repository.ManutenzioneRepository) ManutenzioniService {
	return &manutenzioniService{repo: repo}
}

func (s *manutenzioniService) List(ctx context.Context, filter ManutenzioneFilter) ([]model.Manutenzione, error) {
	all, err := s.repo.Load(ctx)
	if err != nil {
		return nil, err
	}
	if filter == "" || filter == ManutenzioniAll {
		return all, nil
	}
	out := make([]model.Manutenzione, 0, len(all))
	for _, m := range all {
		if (filter == ManutenzioniOpen && !m.Done) || (filter == ManutenzioniDone && m.Done) {
			out = append(out, m)
		}
	}
	return out, nil
}

func (s *manutenzioniService) Create(ctx context.Context, req dto.ManutenzioneRequest) (*model.Manutenzione, error) {
	if err := checkRequest(req); err != nil {
		return nil, err
	}
	m := model.Manutenzione{
		ID:          uuid.NewString(),
		Description: req.Description,
		Room:        req.Room,
		Deadline:    req.Deadline,
		Priority:    req.Priority,
		Done:        false,
		CreatedAt:   time.Now().UTC(),
	}
	all, err := s.repo.Load(ctx)
	if err != nil {
		return nil, err
	}
	// Newest first, as the ticket list renders them.
	if err := s.repo.Replace(ctx, append([]model.Manutenzione{m}, all...)); err != nil {
		return nil, err
	}
	return &m, nil
}

func (s *manutenzioniService) Update(ctx context.Context, id string, req dto.ManutenzioneRequest) (*model.Manutenzione, error) {
	if err := checkRequest(req); err != nil {
		return nil, err
	}
	all, err := s.repo.Load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range all {
		if all[i].ID != id {
			continue
		}
		all[i].Description = req.Description
		all[i].Room = req.Room
		all[i].Deadline = req.Deadline
		all[i].Priority = req.Priority
		if err := s.repo.Replace(ctx, all); err != nil {
			return nil, err
		}
		m := all[i]
		return &m, nil
	}
	return nil, ErrNotFound
}

func (s *manutenzioniService) ToggleDone(ctx context.Context, id string) error {
	all, err := s.repo.Load(ctx)
	if err != nil {
		return err
	}
	for i := range all {
		if all[i].ID == id {
			all[i].Done = !all[i].Done
			return s.repo.Replace(ctx, all)
		}
	}
	return ErrNotFound
}

func (s *manutenzioniService) Delete(ctx context.Context, id string) error {
	all, err := s.repo.Load(ctx)
	if err != nil {
		return err
	}
	kept := make([]model.Manutenzione, 0, len(all))
	for _, m := range all {
		if m.ID != id {
			kept = append(kept, m)
		}
	}
	if len(kept) == len(all) {
		return ErrNotFound
	}
	return s.repo.Replace(ctx, kept)
}
