package service

import (
	"context"
	"strings"

	"go-multidb-api/internal/model"
	"go-multidb-api/pkg/apierror"
)

// UserStore covers the CRUD side of the user repository.
type UserStore interface {
	List(ctx context.Context) ([]model.User, error)
	FindByID(ctx context.Context, id int64) (model.User, error)
	Update(ctx context.Context, user model.User) (model.User, error)
	Delete(ctx context.Context, id int64) error
}

type UserService struct {
	users UserStore
}

func NewUserService(users UserStore) *UserService {
	return &UserService{users: users}
}

func (s *UserService) List(ctx context.Context) ([]model.User, error) {
	return s.users.List(ctx)
}

func (s *UserService) GetByID(ctx context.Context, id int64) (model.User, error) {
	return s.users.FindByID(ctx, id)
}

// Update replaces the mutable profile attributes. Email is not editable
// here; the record keeps its identity.
func (s *UserService) Update(ctx context.Context, id int64, req model.UpdateUserRequest) (model.User, error) {
	if strings.TrimSpace(req.FullName) == "" {
		return model.User{}, apierror.BadRequest("Full name is required")
	}

	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return model.User{}, err
	}

	user.FullName = strings.TrimSpace(req.FullName)
	user.NickName = strings.TrimSpace(req.NickName)
	user.Phone = strings.TrimSpace(req.Phone)
	user.Address = strings.TrimSpace(req.Address)

	return s.users.Update(ctx, user)
}

func (s *UserService) Delete(ctx context.Context, id int64) error {
	return s.users.Delete(ctx, id)
}
