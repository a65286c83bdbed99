package repository

import (
	"context"

	"github.com/Nicolo-Giunta-Unicam/gNt-Hotel-Manager/internal/model"
	"github.com/Nicolo-Giunta-Unicam/gNt-Hotel-Manager/internal/store"
)

type WorkerRepository interface {
	Load(ctx context.Context) ([]model.Worker, error)
	Replace(ctx context.Context, workers []model.Worker) error
}

type workerRepo struct{ store *store.Client }

func NewWorkerRepository(s *store.Client) WorkerRepository { return &workerRepo{store: s} }

func (r *workerRepo) Load(ctx context.Context) ([]model.Worker, error) {
	var workers []model.Worker
	if _, err := r.store.Get(ctx, keyWorkers, &workers); err != nil {
		return nil, err
	}
	if workers == nil {
		workers = []model.Worker{}
	}
	return workers, nil
}

func (r *workerRepo) Replace(ctx context.Context, workers []model.Worker) error {
	return r.store.Set(ctx, keyWorkers, workers)
}
