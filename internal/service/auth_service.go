package service

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"go-multidb-api/internal/model"
	"go-multidb-api/pkg/apierror"
)

// CredentialStore is the slice of the user repository the auth flows need.
type CredentialStore interface {
	FindByEmail(ctx context.Context, email string) (model.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	Create(ctx context.Context, user model.User) (model.User, error)
	ListCredentials(ctx context.Context) ([]model.Credential, error)
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error
}

type AuthService struct {
	users  CredentialStore
	hasher *PasswordHasher
	tokens *TokenService
}

func NewAuthService(users CredentialStore, hasher *PasswordHasher, tokens *TokenService) *AuthService {
	return &AuthService{users: users, hasher: hasher, tokens: tokens}
}

// Login verifies a credential pair and issues a bearer token. Unknown email
// and wrong password produce the same generic error so the response never
// reveals whether the account exists.
func (s *AuthService) Login(ctx context.Context, email string, password string) (model.AuthResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return model.AuthResult{}, apierror.BadRequest("Email and password are required")
	}

	user, err := s.users.FindByEmail(ctx, email)
	if errors.Is(err, model.ErrUserNotFound) {
		return model.AuthResult{}, apierror.Unauthorized("Invalid email or password")
	}
	if err != nil {
		return model.AuthResult{}, err
	}

	if !s.hasher.Verify(password, user.Password) {
		return model.AuthResult{}, apierror.Unauthorized("Invalid email or password")
	}

	token, expiresIn, err := s.tokens.Issue(user)
	if err != nil {
		return model.AuthResult{}, err
	}

	slog.Info("user logged in", "user_id", user.ID)
	return model.AuthResult{User: user.Public(), Token: token, ExpiresIn: expiresIn}, nil
}

// Register validates required fields, rejects weak passwords with the list
// of missing criteria, checks email uniqueness, then hashes and persists.
// The uniqueness pre-check is not atomic with the insert; the store's
// UNIQUE(email) constraint closes the race and a violation maps to the same
// error.
func (s *AuthService) Register(ctx context.Context, req model.RegisterRequest) (model.RegistrationResult, error) {
	req.FullName = strings.TrimSpace(req.FullName)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	if req.FullName == "" || req.Email == "" || req.Password == "" {
		return model.RegistrationResult{}, apierror.BadRequest("Full name, email, and password are required")
	}

	strength := EvaluatePassword(req.Password)
	if strength.Level == StrengthWeak {
		return model.RegistrationResult{}, apierror.New("WEAK_PASSWORD", "Password is too weak", strength.Missing, http.StatusBadRequest)
	}

	exists, err := s.users.EmailExists(ctx, req.Email)
	if err != nil {
		return model.RegistrationResult{}, err
	}
	if exists {
		return model.RegistrationResult{}, apierror.New("EMAIL_TAKEN", "Email already registered", nil, http.StatusBadRequest)
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return model.RegistrationResult{}, err
	}

	created, err := s.users.Create(ctx, model.User{
		FullName: req.FullName,
		NickName: strings.TrimSpace(req.NickName),
		Email:    req.Email,
		Password: hash,
		Phone:    strings.TrimSpace(req.Phone),
		Address:  strings.TrimSpace(req.Address),
		Birthday: req.Birthday,
	})
	if errors.Is(err, model.ErrEmailTaken) {
		return model.RegistrationResult{}, apierror.New("EMAIL_TAKEN", "Email already registered", nil, http.StatusBadRequest)
	}
	if err != nil {
		return model.RegistrationResult{}, err
	}

	slog.Info("user registered", "user_id", created.ID, "email", created.Email)
	return model.RegistrationResult{User: created.Public(), PasswordStrength: strength}, nil
}

// MigratePasswords hashes any stored password that is still plaintext.
// Rows already carrying a bcrypt prefix are skipped, so the sweep is
// idempotent.
func (s *AuthService) MigratePasswords(ctx context.Context) (model.SweepResult, error) {
	credentials, err := s.users.ListCredentials(ctx)
	if err != nil {
		return model.SweepResult{}, err
	}

	updated := 0
	for _, credential := range credentials {
		if s.hasher.IsHashed(credential.Password) {
			continue
		}

		hash, err := s.hasher.Hash(credential.Password)
		if err != nil {
			return model.SweepResult{}, err
		}

		if err := s.users.UpdatePassword(ctx, credential.ID, hash); err != nil {
			return model.SweepResult{}, err
		}

		updated++
		slog.Info("hashed stored password", "user_id", credential.ID)
	}

	return model.SweepResult{Updated: updated, Total: len(credentials)}, nil
}
