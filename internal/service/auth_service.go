package service

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/google/uuid"

	"github.com/Nicolo-Giunta-Unicam/gNt-Hotel-Manager/internal/dto"
	"github.com/Nicolo-Giunta-Unicam/gNt-Hotel-Manager/internal/model"
	"github.com/Nicolo-Giunta-Unicam/gNt-Hotel-Manager/internal/repository"
)

var (
	ErrInvalidCredentials = errors.New("credenziali non valide")
	ErrUsernameTaken      = errors.New("username già in uso")
)

type AuthService interface {
	// Login matches username+password exactly against the user collection
	// and persists the session identity. Passwords are stored and compared
	// as plaintext; see the users key contract.
	Login(ctx context.Context, req dto.LoginRequest) (*model.User, error)
	// Register appends a new user. It does not authenticate the new account.
	Register(ctx context.Context, req dto.RegisterRequest) (*model.User, error)
	Logout(ctx context.Context) error
	// Current returns the persisted session identity, nil when anonymous.
	Current(ctx context.Context) (*model.User, error)
}

// CanAccess reports whether a role may open the management screens. It is a
// pure function evaluated at every navigation decision, never cached, so a
// role change takes effect on the next check.
func CanAccess(role string) bool {
	return role == model.RoleAdmin || role == model.RoleGovernante
}

type authService struct {
	users   repository.UserRepository
	session repository.SessionRepository
}

func NewAuthService(users repository.UserRepository, session repository.SessionRepository) AuthService {
	return &authService{users: users, session: session}
}

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*model.User, error) {
	if err := checkRequest(req); err != nil {
		return nil, err
	}
	users, err := s.users.Load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].Username == req.Username && users[i].Password == req.Password {
			u := users[i]
			if err := s.session.Save(ctx, &u); err != nil {
				return nil, err
			}
			return &u, nil
		}
	}
	return nil, ErrInvalidCredentials
}

func (s *authService) Register(ctx context.Context, req dto.RegisterRequest) (*model.User, error) {
	if err := checkRequest(req); err != nil {
		return nil, err
	}
	if !slices.Contains(model.Roles, req.Role) {
		return nil, fmt.Errorf("%w: role", ErrValidation)
	}
	users, err := s.users.Load(ctx)
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		if u.Username == req.Username {
			return nil, ErrUsernameTaken
		}
	}
	user := model.User{
		ID:       uuid.NewString(),
		Username: req.Username,
		Password: req.Password,
		Role:     req.Role,
		Name:     req.Name,
	}
	if err := s.users.Replace(ctx, append(users, user)); err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *authService) Logout(ctx context.Context) error {
	return s.session.Clear(ctx)
}

func (s *authService) Current(ctx context.Context) (*model.User, error) {
	return s.session.Current(ctx)
}
