package router

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-multidb-api/internal/config"
	"go-multidb-api/internal/handler"
	"go-multidb-api/internal/middleware"
	"go-multidb-api/internal/model"
	"go-multidb-api/internal/service"
)

// fakeUserStore satisfies both service.CredentialStore and service.UserStore.
type fakeUserStore struct {
	users   []model.User
	deleted []int64
}

func (f *fakeUserStore) FindByEmail(_ context.Context, email string) (model.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return model.User{}, model.ErrUserNotFound
}

func (f *fakeUserStore) EmailExists(ctx context.Context, email string) (bool, error) {
	_, err := f.FindByEmail(ctx, email)
	return err == nil, nil
}

func (f *fakeUserStore) Create(_ context.Context, user model.User) (model.User, error) {
	user.ID = int64(len(f.users) + 1)
	f.users = append(f.users, user)
	return user, nil
}

func (f *fakeUserStore) ListCredentials(context.Context) ([]model.Credential, error) {
	return nil, nil
}

func (f *fakeUserStore) UpdatePassword(context.Context, int64, string) error {
	return nil
}

func (f *fakeUserStore) List(context.Context) ([]model.User, error) {
	return f.users, nil
}

func (f *fakeUserStore) FindByID(_ context.Context, id int64) (model.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return model.User{}, model.ErrUserNotFound
}

func (f *fakeUserStore) Update(_ context.Context, user model.User) (model.User, error) {
	return user, nil
}

func (f *fakeUserStore) Delete(_ context.Context, id int64) error {
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeProductStore struct {
	products []model.Product
}

func (f *fakeProductStore) List(context.Context) ([]model.Product, error) {
	return f.products, nil
}

func (f *fakeProductStore) FindByID(_ context.Context, id int64) (model.Product, error) {
	for _, p := range f.products {
		if p.ID == id {
			return p, nil
		}
	}
	return model.Product{}, model.ErrProductNotFound
}

func (f *fakeProductStore) Create(_ context.Context, p model.Product) (model.Product, error) {
	p.ID = int64(len(f.products) + 1)
	f.products = append(f.products, p)
	return p, nil
}

func (f *fakeProductStore) Update(_ context.Context, p model.Product) (model.Product, error) {
	return p, nil
}

func (f *fakeProductStore) Delete(context.Context, int64) error {
	return nil
}

func newTestServer(t *testing.T) (*httptest.Server, *service.TokenService, *fakeUserStore) {
	t.Helper()

	cfg := &config.Config{
		ServerPort:     "0",
		RequestTimeout: 5 * time.Second,
		JWTSecret:      "test-secret",
		TokenTTL:       time.Hour,
		BcryptCost:     4,
		AdminKey:       "admin-key",
		StaticDir:      t.TempDir(),
	}

	users := &fakeUserStore{users: []model.User{{
		ID: 1, FullName: "Ada Lovelace", NickName: "ada", Email: "ada@example.com",
	}}}
	products := &fakeProductStore{products: []model.Product{{
		ID: 1, Name: "Widget", Price: 9.99, Stock: 3,
	}}}

	hasher := service.NewPasswordHasher(cfg.BcryptCost)
	tokens := service.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	authService := service.NewAuthService(users, hasher, tokens)

	h := New(cfg, middleware.NewAuthMiddleware(tokens), Handlers{
		API:     handler.NewAPIHandler(),
		Auth:    handler.NewAuthHandler(authService),
		User:    handler.NewUserHandler(service.NewUserService(users)),
		Product: handler.NewProductHandler(service.NewProductService(products)),
		Admin:   handler.NewAdminHandler(authService, cfg.AdminKey),
	})

	server := httptest.NewServer(h)
	t.Cleanup(server.Close)
	return server, tokens, users
}

func doRequest(t *testing.T, method string, url string, token string) *http.Response {
	t.Helper()

	req, err := http.NewRequest(method, url, nil)
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func TestPublicReadsRequireNoToken(t *testing.T) {
	server, _, _ := newTestServer(t)

	for _, path := range []string{"/health", "/api", "/api/users", "/api/users/1", "/api/products", "/api/products/1"} {
		resp := doRequest(t, http.MethodGet, server.URL+path, "")
		assert.Equal(t, http.StatusOK, resp.StatusCode, "GET %s", path)
	}
}

func TestProtectedMutationsRequireToken(t *testing.T) {
	server, tokens, users := newTestServer(t)

	// No bearer header at all.
	resp := doRequest(t, http.MethodDelete, server.URL+"/api/users/1", "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	// Expired token.
	expiredIssuer := service.NewTokenService("test-secret", -time.Minute)
	expired, _, err := expiredIssuer.Issue(model.User{ID: 1, Email: "ada@example.com", NickName: "ada"})
	require.NoError(t, err)
	resp = doRequest(t, http.MethodDelete, server.URL+"/api/users/1", expired)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	// Valid token: the operation proceeds.
	valid, _, err := tokens.Issue(model.User{ID: 1, Email: "ada@example.com", NickName: "ada"})
	require.NoError(t, err)
	resp = doRequest(t, http.MethodDelete, server.URL+"/api/users/1", valid)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, []int64{1}, users.deleted)
}

func TestVerifyTokenEndpoint(t *testing.T) {
	server, tokens, _ := newTestServer(t)

	resp := doRequest(t, http.MethodGet, server.URL+"/api/verify-token", "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	valid, _, err := tokens.Issue(model.User{ID: 1, Email: "ada@example.com", NickName: "ada"})
	require.NoError(t, err)
	resp = doRequest(t, http.MethodGet, server.URL+"/api/verify-token", valid)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestProductMutationsAreGated(t *testing.T) {
	server, tokens, _ := newTestServer(t)

	resp := doRequest(t, http.MethodDelete, server.URL+"/api/products/1", "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	valid, _, err := tokens.Issue(model.User{ID: 1, Email: "ada@example.com", NickName: "ada"})
	require.NoError(t, err)
	resp = doRequest(t, http.MethodDelete, server.URL+"/api/products/1", valid)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
