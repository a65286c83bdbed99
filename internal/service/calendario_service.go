package service

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/Nicolo-Giunta-Unicam/gNt-Hotel-Manager/internal/dto"
	"github.com/Nicolo-Giunta-Unicam/gNt-Hotel-Manager/internal/model"
	"github.com/Nicolo-Giunta-Unicam/gNt-Hotel-Manager/internal/repository"
)

type CalendarioService interface {
	List(ctx context.Context) ([]model.CalendarEvent, error)
	// ForDay returns the events of a "YYYY-MM-DD" date, sorted by time
	// (untimed events first).
	ForDay(ctx context.Context, date string) ([]model.CalendarEvent, error)
	Create(ctx context.Context, req dto.EventRequest) (*model.CalendarEvent, error)
	Update(ctx context.Context, id string, req dto.EventRequest) (*model.CalendarEvent, error)
	Delete(ctx context.Context, id string) error
}

type calendarioService struct {
	events repository.EventRepository
}

func NewCalendarioService(events repository.EventRepository) CalendarioService {
	return &calendarioService{events: events}
}

func (s *calendarioService) List(ctx context.Context) ([]model.CalendarEvent, error) {
	return s.events.Load(ctx)
}

func (s *calendarioService) ForDay(ctx context.Context, date string) ([]model.CalendarEvent, error) {
	all, err := s.events.Load(ctx)
	if err != nil {
		return nil, err
	}
	day := make([]model.CalendarEvent, 0)
	for _, e := range all {
		if e.Date == date {
			day = append(day, e)
		}
	}
	sort.SliceStable(day, func(i, j int) bool { return day[i].Time < day[j].Time })
	return day, nil
}

func (s *calendarioService) Create(ctx context.Context, req dto.EventRequest) (*model.CalendarEvent, error) {
	if err := checkRequest(req); err != nil {
		return nil, err
	}
	e := model.CalendarEvent{
		ID:    uuid.NewString(),
		Title: req.Title,
		Date:  req.Date,
		Time:  req.Time,
		Notes: req.Notes,
	}
	all, err := s.events.Load(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.events.Replace(ctx, append(all, e)); err != nil {
		return nil, err
	}
	return &e, nil
}

func (s *calendarioService) Update(ctx context.Context, id string, req dto.EventRequest) (*model.CalendarEvent, error) {
	if err := checkRequest(req); err != nil {
		return nil, err
	}
	all, err := s.events.Load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range all {
		if all[i].ID != id {
			continue
		}
		all[i].Title = req.Title
		all[i].Date = req.Date
		all[i].Time = req.Time
		all[i].Notes = req.Notes
		if err := s.events.Replace(ctx, all); err != nil {
			return nil, err
		}
		e := all[i]
		return &e, nil
	}
	return nil, ErrNotFound
}

func (s *calendarioService) Delete(ctx context.Context, id string) error {
	all, err := s.events.Load(ctx)
	if err != nil {
		return err
	}
	kept := make([]model.CalendarEvent, 0, len(all))
	for _, e := range all {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	if len(kept) == len(all) {
		return ErrNotFound
	}
	return s.events.Replace(ctx, kept)
}
