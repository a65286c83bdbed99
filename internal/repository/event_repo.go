package repository

import (
	"context"

	"github.com/Nicolo-Giunta-Unicam/gNt-Hotel-Manager/internal/model"
	"github.com/Nicolo-Giunta-Unicam/gNt-Hotel-Manager/internal/store"
)

type EventRepository interface {
	Load(ctx context.Context) ([]model.CalendarEvent, error)
	Replace(ctx context.Context, events []model.CalendarEvent) error
}

type eventRepo struct{ store *store.Client }

func NewEventRepository(s *store.Client) EventRepository { return &eventRepo{store: s} }

func (r *eventRepo) Load(ctx context.Context) ([]model.CalendarEvent, error) {
	var events []model.CalendarEvent
	if _, err := r.store.Get(ctx, keyEvents, &events); err != nil {
		return nil, err
	}
	if events == nil {
		events = []model.CalendarEvent{}
	}
	return events, nil
}

func (r *eventRepo) Replace(ctx context.Context, events []model.CalendarEvent) error {
	return r.store.Set(ctx, keyEvents, events)
}
