package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/Nicolo-Giunta-Unicam/gNt-Hotel-Manager/internal/dto"
	"github.com/Nicolo-Giunta-Unicam/gNt-Hotel-Manager/internal/model"
	"github.com/Nicolo-Giunta-Unicam/gNt-Hotel-Manager/internal/repository"
)

var ErrNotFound = errors.New("elemento non trovato")

type WorkerService interface {
	List(ctx context.Context) ([]model.Worker, error)
	// ListActive returns the workers offered by "available to add" pickers.
	ListActive(ctx context.Context) ([]model.Worker, error)
	Create(ctx context.Context, req dto.WorkerRequest) (*model.Worker, error)
	Update(ctx context.Context, id string, req dto.WorkerRequest) (*model.Worker, error)
	// ToggleActive flips roster visibility; historical grid columns are
	// snapshots and stay untouched.
	ToggleActive(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

type workerService struct {
	workers repository.WorkerRepository
}

func NewWorkerService(workers repository.WorkerRepository) WorkerService {
	return &workerService{workers: workers}
}

func (s *workerService) List(ctx context.Context) ([]model.Worker, error) {
	return s.workers.Load(ctx)
}

func (s *workerService) ListActive(ctx context.Context) ([]model.Worker, error) {
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

func (s *workerService) Create(ctx context.Context, req dto.WorkerRequest) (*model.Worker, error) {
	if err := checkRequest(req); err != nil {
		return nil, err
	}
	if req.Contract == "" {
		req.Contract = model.ContractTypes[0]
	}
	w := model.Worker{
		ID:            uuid.NewString(),
		Name:          req.Name,
		Surname:       req.Surname,
		Nickname:      req.Nickname,
		Contract:      req.Contract,
		ContractStart: req.ContractStart,
		ContractEnd:   req.ContractEnd,
		Active:        req.Active,
	}
	all, err := s.workers.Load(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.workers.Replace(ctx, append(all, w)); err != nil {
		return nil, err
	}
	return &w, nil
}

func (s *workerService) Update(ctx context.Context, id string, req dto.WorkerRequest) (*model.Worker, error) {
	if err := checkRequest(req); err != nil {
		return nil, err
	}
	all, err := s.workers.Load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range all {
		if all[i].ID != id {
			continue
		}
		all[i].Name = req.Name
		all[i].Surname = req.Surname
		all[i].Nickname = req.Nickname
		all[i].Contract = req.Contract
		all[i].ContractStart = req.ContractStart
		all[i].ContractEnd = req.ContractEnd
		all[i].Active = req.Active
		if err := s.workers.Replace(ctx, all); err != nil {
			return nil, err
		}
		w := all[i]
		return &w, nil
	}
	return nil, ErrNotFound
}

func (s *workerService) ToggleActive(ctx context.Context, id string) error {
	all, err := s.workers.Load(ctx)
	if err != nil {
		return err
	}
	for i := range all {
		if all[i].ID == id {
			all[i].Active = !all[i].Active
			return s.workers.Replace(ctx, all)
		}
	}
	return ErrNotFound
}

func (s *workerService) Delete(ctx context.Context, id string) error {
	all, err := s.workers.Load(ctx)
	if err != nil {
		return err
	}
	kept := make([]model.Worker, 0, len(all))
	for _, w := range all {
		if w.ID != id {
			kept = append(kept, w)
		}
	}
	if len(kept) == len(all) {
		return ErrNotFound
	}
	return s.workers.Replace(ctx, kept)
}
