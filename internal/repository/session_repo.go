package repository

import (
	"context"

	"github.com/Nicolo-Giunta-Unicam/gNt-Hotel-Manager/internal/model"
	"github.com/Nicolo-Giunta-Unicam/gNt-Hotel-Manager/internal/store"
)

// SessionRepository persists the current-session identity under
// "currentUser" so the session survives a restart on the same device.
type SessionRepository interface {
	Current(ctx context.Context) (*model.User, error)
	Save(ctx context.Context, user *model.User) error
	Clear(ctx context.Context) error
}

type sessionRepo struct{ store *store.Client }

func NewSessionRepository(s *store.Client) SessionRepository { return &sessionRepo{store: s} }

func (r *sessionRepo) Current(ctx context.Context) (*model.User, error) {
	var user *model.User
	found, err := r.store.Get(ctx, keyCurrentUser, &user)
	if err != nil || !found {
		return nil, err
	}
	return user, nil
}

func (r *sessionRepo) Save(ctx context.Context, user *model.User) error {
	return r.store.Set(ctx, keyCurrentUser, user)
}

func (r *sessionRepo) Clear(ctx context.Context) error {
	// Logout writes an explicit null rather than deleting the key; the
	// wire protocol has no delete.
	return r.store.Set(ctx, keyCurrentUser, nil)
}
