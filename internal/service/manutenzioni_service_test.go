package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nicolo-Giunta-Unicam/gNt-Hotel-Manager/internal/dto"
	"github.com/Nicolo-Giunta-Unicam/gNt-Hotel-Manager/internal/model"
	"github.com/Nicolo-Giunta-Unicam/gNt-Hotel-Manager/internal/repository"
)

func newManutenzioniService(t *testing.T) ManutenzioniService {
	t.Helper()
	return NewManutenzioniService(repository.NewManutenzioneRepository(newTestStore(t)))
}

func TestManutenzioniCreate_NewestFirst(t *testing.T) {
	svc := newManutenzioniService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, dto.ManutenzioneRequest{Description: "Rubinetto che perde", Room: "204", Priority: model.PriorityNormale})
	require.NoError(t, err)
	m2, err := svc.Create(ctx, dto.ManutenzioneRequest{Description: "Caldaia in blocco", Priority: model.PriorityUrgente})
	require.NoError(t, err)

	all, err := svc.List(ctx, ManutenzioniAll)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, m2.ID, all[0].ID)
}

func TestManutenzioniCreate_Validation(t *testing.T) {
	svc := newManutenzioniService(t)

	_, err := svc.Create(context.Background(), dto.ManutenzioneRequest{Priority: model.PriorityBassa})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.Create(context.Background(), dto.ManutenzioneRequest{Description: "x", Priority: "altissima"})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestManutenzioniToggleAndFilter(t *testing.T) {
	svc := newManutenzioniService(t)
	ctx := context.Background()

	m, err := svc.Create(ctx, dto.ManutenzioneRequest{Description: "Lampadina corridoio", Priority: model.PriorityBassa})
	require.NoError(t, err)
	_, err = svc.Create(ctx, dto.ManutenzioneRequest{Description: "Porta scorrevole", Priority: model.PriorityNormale})
	require.NoError(t, err)

	require.NoError(t, svc.ToggleDone(ctx, m.ID))

	open, err := svc.List(ctx, ManutenzioniOpen)
	require.NoError(t, err)
	require.Len(t, open, 1)
	assert.Equal(t, "Porta scorrevole", open[0].Description)

	done, err := svc.List(ctx, ManutenzioniDone)
	require.NoError(t, err)
	require.Len(t, done, 1)
	assert.Equal(t, m.ID, done[0].ID)
}

func TestManutenzioniUpdateAndDelete(t *testing.T) {
	svc := newManutenzioniService(t)
	ctx := context.Background()

	m, err := svc.Create(ctx, dto.ManutenzioneRequest{Description: "Tapparella", Room: "101", Priority: model.PriorityNormale})
	require.NoError(t, err)

	upd, err := svc.Update(ctx, m.ID, dto.ManutenzioneRequest{Description: "Tapparella bloccata", Room: "101", Priority: model.PriorityUrgente})
	require.NoError(t, err)
	assert.Equal(t, model.PriorityUrgente, upd.Priority)

	require.NoError(t, svc.Delete(ctx, m.ID))
	all, err := svc.List(ctx, ManutenzioniAll)
	require.NoError(t, err)
	assert.Empty(t, all)

	assert.ErrorIs(t, svc.ToggleDone(ctx, m.ID), ErrNotFound)
}
