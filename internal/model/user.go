package model

import "time"

// User is a credential record from the users database. The Password field
// holds the bcrypt hash and is never serialized.
type User struct {
	ID       int64      `json:"id"`
	FullName string     `json:"full_name"`
	NickName string     `json:"nick_name"`
	Email    string     `json:"email"`
	Password string     `json:"-"`
	Phone    string     `json:"phone,omitempty"`
	Address  string     `json:"address,omitempty"`
	Birthday *time.Time `json:"birthday,omitempty"`
}

// PublicUser is the subset of a user record safe to return from auth
// endpoints.
type PublicUser struct {
	ID       int64  `json:"id"`
	FullName string `json:"full_name"`
	NickName string `json:"nick_name"`
	Email    string `json:"email"`
}

func (u User) Public() PublicUser {
	return PublicUser{ID: u.ID, FullName: u.FullName, NickName: u.NickName, Email: u.Email}
}

// Credential is the minimal projection used by the password migration sweep.
type Credential struct {
	ID       int64
	Email    string
	Password string
}

// AuthClaims is the identity set embedded in a bearer token, trusted once
// signature and expiry verify.
type AuthClaims struct {
	UserID   int64  `json:"id"`
	Email    string `json:"email"`
	NickName string `json:"nick_name"`
	TokenID  string `json:"jti,omitempty"`
}

// PasswordStrength classifies a plaintext password at registration time.
// Missing lists the unsatisfied criteria in a fixed order.
type PasswordStrength struct {
	Level   string   `json:"level"`
	Score   int      `json:"score"`
	Missing []string `json:"missing"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	FullName string     `json:"full_name"`
	NickName string     `json:"nick_name"`
	Email    string     `json:"email"`
	Password string     `json:"password"`
	Phone    string     `json:"phone"`
	Address  string     `json:"address"`
	Birthday *time.Time `json:"birthday"`
}

type UpdateUserRequest struct {
	FullName string `json:"full_name"`
	NickName string `json:"nick_name"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
}

// AuthResult is what a successful login produces: the sanitized user, the
// signed token and its lifetime in seconds.
type AuthResult struct {
	User      PublicUser `json:"user"`
	Token     string     `json:"token"`
	ExpiresIn int64      `json:"expiresIn"`
}

// RegistrationResult pairs the created record with the strength
// classification of the password it was created with.
type RegistrationResult struct {
	User             PublicUser       `json:"user"`
	PasswordStrength PasswordStrength `json:"passwordStrength"`
}

// SweepResult reports a password migration run.
type SweepResult struct {
	Updated int `json:"updated"`
	Total   int `json:"total"`
}
