package repository

import (
	"context"

	"github.com/Nicolo-Giunta-Unicam/gNt-Hotel-Manager/internal/model"
	"github.com/Nicolo-Giunta-Unicam/gNt-Hotel-Manager/internal/store"
)

type UserRepository interface {
	// Load returns the users collection, seeding and persisting the default
	// administrator when the store holds nothing.
	Load(ctx context.Context) ([]model.User, error)
	Replace(ctx context.Context, users []model.User) error
}

type userRepo struct{ store *store.Client }

func NewUserRepository(s *store.Client) UserRepository { return &userRepo{store: s} }

func (r *userRepo) Load(ctx context.Context) ([]model.User, error) {
	var users []model.User
	found, err := r.store.Get(ctx, keyUsers, &users)
	if err != nil {
		return nil, err
	}
	if !found || len(users) == 0 {
		users = []model.User{model.DefaultAdmin()}
		if err := r.store.Set(ctx, keyUsers, users); err != nil {
			return nil, err
		}
	}
	return users, nil
}

func (r *userRepo) Replace(ctx context.Context, users []model.User) error {
	return r.store.Set(ctx, keyUsers, users)
}
