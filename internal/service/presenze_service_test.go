package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nicolo-Giunta-Unicam/gNt-Hotel-Manager/internal/repository"
)

func newPresenzeService(t *testing.T) PresenzeService {
	t.Helper()
	c := newTestStore(t)
	seedRoster(t, c)
	return NewPresenzeService(repository.NewPresenzeRepository(c), repository.NewWorkerRepository(c))
}

func TestPresenzeMonth_SnapshotOmitsSurname(t *testing.T) {
	svc := newPresenzeService(t)

	grid, err := svc.Month(context.Background(), 2024, time.March)
	require.NoError(t, err)
	require.Len(t, grid.Workers, 2)
	assert.Equal(t, "", grid.Workers[0].Surname)
	assert.Equal(t, "Mari", grid.Workers[0].Nickname)
}

func TestPresenzeToggleCell_CyclesAndPersists(t *testing.T) {
	svc := newPresenzeService(t)
	ctx := context.Background()

	grid, err := svc.ToggleCell(ctx, 2024, time.March, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, "X", grid.Days[0].Values[0])

	grid, err = svc.ToggleCell(ctx, 2024, time.March, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, "R", grid.Days[0].Values[0])

	grid, err = svc.ToggleCell(ctx, 2024, time.March, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, "", grid.Days[0].Values[0])

	// The cleared cell is what a fresh load sees too
	grid, err = svc.Month(ctx, 2024, time.March)
	require.NoError(t, err)
	assert.Equal(t, "", grid.Days[0].Values[0])
}

func TestPresenzeToggleCell_OutOfRange(t *testing.T) {
	svc := newPresenzeService(t)
	_, err := svc.ToggleCell(context.Background(), 2024, time.March, 31, 0)
	assert.Error(t, err)
}

func TestPresenzeAddRemoveWorker(t *testing.T) {
	c := newTestStore(t)
	workers := seedRoster(t, c)
	// w3 is off the active roster, so it is absent from the synthesized grid
	// until explicitly added to this month.
	w3 := workerFixture("w3", "Anna", "Neri")
	w3.Active = false
	workers = append(workers, w3)
	require.NoError(t, repository.NewWorkerRepository(c).Replace(context.Background(), workers))
	svc := NewPresenzeService(repository.NewPresenzeRepository(c), repository.NewWorkerRepository(c))
	ctx := context.Background()

	grid, err := svc.AddWorker(ctx, 2024, time.March, "w3")
	require.NoError(t, err)
	require.Len(t, grid.Workers, 3)
	assert.Equal(t, "", grid.Workers[2].Surname, "presence snapshot carries no surname")
	for _, d := range grid.Days {
		require.Len(t, d.Values, 3)
	}

	grid, err = svc.RemoveWorker(ctx, 2024, time.March, 0)
	require.NoError(t, err)
	require.Len(t, grid.Workers, 2)
	assert.Equal(t, "w2", grid.Workers[0].ID)
}

func TestPresenzeIndependentFromHours(t *testing.T) {
	c := newTestStore(t)
	seedRoster(t, c)
	ore := NewOreService(repository.NewOreRepository(c), repository.NewWorkerRepository(c))
	pres := NewPresenzeService(repository.NewPresenzeRepository(c), repository.NewWorkerRepository(c))
	ctx := context.Background()

	_, err := ore.UpdateCell(ctx, 2024, time.March, 0, 0, "8")
	require.NoError(t, err)
	_, err = pres.ToggleCell(ctx, 2024, time.March, 0, 0)
	require.NoError(t, err)

	oreGrid, err := ore.Month(ctx, 2024, time.March)
	require.NoError(t, err)
	presGrid, err := pres.Month(ctx, 2024, time.March)
	require.NoError(t, err)

	assert.Equal(t, "8", oreGrid.Days[0].Values[0])
	assert.Equal(t, "X", presGrid.Days[0].Values[0])
}
