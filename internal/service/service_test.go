package service

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Nicolo-Giunta-Unicam/gNt-Hotel-Manager/internal/model"
	"github.com/Nicolo-Giunta-Unicam/gNt-Hotel-Manager/internal/repository"
	"github.com/Nicolo-Giunta-Unicam/gNt-Hotel-Manager/internal/store"
)

// memRemote is an always-reachable in-memory mirror for service tests.
type memRemote struct {
	mu   sync.Mutex
	data map[string]string
}

func (r *memRemote) Get(_ context.Context, key string) (string, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	v, ok := r.data[key]
	return v, ok, nil
}

func (r *memRemote) Set(_ context.Context, key, value string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[key] = value
	return nil
}

func newTestStore(t *testing.T) *store.Client {
	t.Helper()
	c := store.NewClient(&memRemote{data: make(map[string]string)}, store.NewMemoryLocal())
	t.Cleanup(c.Flush)
	return c
}

// seedRoster persists a two-worker roster and returns it.
func seedRoster(t *testing.T, c *store.Client) []model.Worker {
	t.Helper()
	workers := []model.Worker{
		{ID: "w1", Name: "Maria", Surname: "Rossi", Nickname: "Mari", Contract: model.ContractTypes[0], Active: true},
		{ID: "w2", Name: "Luca", Surname: "Bianchi", Contract: model.ContractTypes[0], Active: true},
	}
	require.NoError(t, repository.NewWorkerRepository(c).Replace(context.Background(), workers))
	return workers
}

func workerFixture(id, name, surname string) model.Worker {
	return model.Worker{ID: id, Name: name, Surname: surname, Contract: model.ContractTypes[0], Active: true}
}
