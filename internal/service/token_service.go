package service

import (
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"go-multidb-api/internal/model"
	"go-multidb-api/pkg/apierror"
)

// TokenService issues and verifies stateless HS256 bearer tokens. Validity
// is purely a function of signature and expiry; nothing is stored
// server-side.
type TokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	return &TokenService{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

// Issue signs a token carrying the user's identity claims, expiring exactly
// one TTL after issuance. Returns the token and its lifetime in seconds.
func (s *TokenService) Issue(user model.User) (string, int64, error) {
	now := s.now().UTC()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":        user.ID,
		"email":     user.Email,
		"nick_name": user.NickName,
		"jti":       uuid.NewString(),
		"iat":       now.Unix(),
		"exp":       now.Add(s.ttl).Unix(),
	})

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", 0, err
	}

	return signed, int64(s.ttl.Seconds()), nil
}

// Verify parses and validates a token string. Bad signature, wrong signing
// method, passed expiry and malformed input all fail the same way.
func (s *TokenService) Verify(tokenString string) (*model.AuthClaims, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)

	parsed, err := parser.Parse(tokenString, func(token *jwt.Token) (any, error) {
		return s.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, apierror.Forbidden("Invalid or expired token")
	}

	claimsMap, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return nil, apierror.Forbidden("Invalid or expired token")
	}

	claims := &model.AuthClaims{}
	if id, ok := claimsMap["id"].(float64); ok {
		claims.UserID = int64(id)
	}
	claims.Email, _ = claimsMap["email"].(string)
	claims.NickName, _ = claimsMap["nick_name"].(string)
	claims.TokenID, _ = claimsMap["jti"].(string)

	if claims.UserID == 0 {
		return nil, apierror.New("FORBIDDEN", "Invalid or expired token", "missing subject", http.StatusForbidden)
	}

	return claims, nil
}
