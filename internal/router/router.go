package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"go-multidb-api/internal/config"
	"go-multidb-api/internal/handler"
	"go-multidb-api/internal/middleware"
)

type Handlers struct {
	API     *handler.APIHandler
	Auth    *handler.AuthHandler
	User    *handler.UserHandler
	Product *handler.ProductHandler
	Admin   *handler.AdminHandler
}

func New(cfg *config.Config, authMiddleware *middleware.AuthMiddleware, h Handlers) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recovery)
	r.Use(middleware.Logging)
	r.Use(middleware.CORS(cfg.CORSOrigins))
	r.Use(middleware.SecurityHeaders)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Route("/api", func(api chi.Router) {
		api.Use(middleware.Timeout(cfg.RequestTimeout))

		api.Get("/", h.API.Index)

		api.Post("/login", h.Auth.Login)
		api.Post("/register", h.Auth.Register)
		api.With(authMiddleware.RequireAuth).Get("/verify-token", h.Auth.VerifyToken)

		// Reads are public; mutations require a bearer token.
		api.Get("/users", h.User.List)
		api.Get("/users/{id}", h.User.Get)
		api.With(authMiddleware.RequireAuth).Put("/users/{id}", h.User.Update)
		api.With(authMiddleware.RequireAuth).Delete("/users/{id}", h.User.Delete)

		api.Get("/products", h.Product.List)
		api.Get("/products/{id}", h.Product.Get)
		api.With(authMiddleware.RequireAuth).Post("/products", h.Product.Create)
		api.With(authMiddleware.RequireAuth).Put("/products/{id}", h.Product.Update)
		api.With(authMiddleware.RequireAuth).Delete("/products/{id}", h.Product.Delete)

		api.Post("/admin/hash-passwords", h.Admin.HashPasswords)
	})

	r.Handle("/*", http.FileServer(http.Dir(cfg.StaticDir)))

	return r
}
