package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-multidb-api/internal/model"
	"go-multidb-api/pkg/apierror"
)

type mockUserStore struct {
	findByIDFn func(ctx context.Context, id int64) (model.User, error)
	updateFn   func(ctx context.Context, u model.User) (model.User, error)
}

func (m *mockUserStore) List(context.Context) ([]model.User, error) { return nil, nil }

func (m *mockUserStore) FindByID(ctx context.Context, id int64) (model.User, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, id)
	}
	return model.User{}, model.ErrUserNotFound
}

func (m *mockUserStore) Update(ctx context.Context, u model.User) (model.User, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, u)
	}
	return u, nil
}

func (m *mockUserStore) Delete(context.Context, int64) error { return nil }

func TestUserUpdateKeepsIdentity(t *testing.T) {
	existing := model.User{
		ID:       7,
		FullName: "Grace Hopper",
		NickName: "grace",
		Email:    "grace@example.com",
		Password: "$2b$10$hash",
	}

	var saved model.User
	store := &mockUserStore{
		findByIDFn: func(_ context.Context, id int64) (model.User, error) {
			assert.Equal(t, int64(7), id)
			return existing, nil
		},
		updateFn: func(_ context.Context, u model.User) (model.User, error) {
			saved = u
			return u, nil
		},
	}

	updated, err := NewUserService(store).Update(context.Background(), 7, model.UpdateUserRequest{
		FullName: "  Grace B. Hopper ",
		NickName: "amazing-grace",
		Phone:    "555-0100",
	})
	require.NoError(t, err)

	assert.Equal(t, "Grace B. Hopper", updated.FullName)
	assert.Equal(t, "amazing-grace", updated.NickName)
	// Email and stored hash survive a profile update untouched.
	assert.Equal(t, "grace@example.com", saved.Email)
	assert.Equal(t, "$2b$10$hash", saved.Password)
}

func TestUserUpdateRequiresFullName(t *testing.T) {
	_, err := NewUserService(&mockUserStore{}).Update(context.Background(), 7, model.UpdateUserRequest{})

	var apiErr *apierror.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "BAD_REQUEST", apiErr.Code)
}

func TestUserUpdateUnknownID(t *testing.T) {
	_, err := NewUserService(&mockUserStore{}).Update(context.Background(), 99, model.UpdateUserRequest{
		FullName: "Somebody",
	})
	assert.ErrorIs(t, err, model.ErrUserNotFound)
}
