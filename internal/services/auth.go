package services

import (
	"context"
	"time"

	"github.com/YSWikcramatantri/Official-Website/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"
)

const sessionKeyPrefix = "admin:session:"

// AuthService issues and verifies the two independent admin credentials: a
// stateless signed bearer token and a redis-backed session id. Admin routes
// accept either one.
type AuthService struct {
	secret       []byte
	passwordHash []byte
	rdb          *redis.Client
	tokenTTL     time.Duration
	sessionTTL   time.Duration
}

func NewAuthService(secret, adminPassword string, rdb *redis.Client, tokenTTL, sessionTTL time.Duration) (*AuthService, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return &AuthService{
		secret:       []byte(secret),
		passwordHash: hash,
		rdb:          rdb,
		tokenTTL:     tokenTTL,
		sessionTTL:   sessionTTL,
	}, nil
}

// Login checks the admin password and, on success, returns a bearer token
// plus a session id (empty when no session store is configured).
func (s *AuthService) Login(ctx context.Context, password string) (token, sessionID string, err error) {
	if err := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password)); err != nil {
		return "", "", models.ErrUnauthorized
	}

	token, err = s.IssueToken(map[string]interface{}{"role": "admin"}, s.tokenTTL)
	if err != nil {
		return "", "", err
	}
	sessionID, err = s.createSession(ctx)
	if err != nil {
		return "", "", err
	}
	return token, sessionID, nil
}

// IssueToken signs the payload plus an exp claim with HMAC-SHA256.
func (s *AuthService) IssueToken(payload map[string]interface{}, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"exp": time.Now().Add(ttl).Unix(),
		"iat": time.Now().Unix(),
	}
	for k, v := range payload {
		claims[k] = v
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// VerifyToken returns the token's claims, or ErrUnauthorized if the
// signature does not match, exp has passed, or exp is missing. Signature
// comparison inside the jwt library is constant-time.
func (s *AuthService) VerifyToken(tokenString string) (map[string]interface{}, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, models.ErrUnauthorized
		}
		return s.secret, nil
	}, jwt.WithExpirationRequired())
	if err != nil || !token.Valid {
		return nil, models.ErrUnauthorized
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, models.ErrUnauthorized
	}
	return claims, nil
}

func (s *AuthService) createSession(ctx context.Context) (string, error) {
	if s.rdb == nil {
		return "", nil
	}
	id := uuid.NewString()
	if err := s.rdb.Set(ctx, sessionKeyPrefix+id, time.Now().Unix(), s.sessionTTL).Err(); err != nil {
		return "", err
	}
	return id, nil
}

// ValidateSession reports whether the session id is live in redis.
func (s *AuthService) ValidateSession(ctx context.Context, id string) bool {
	if s.rdb == nil || id == "" {
		return false
	}
	exists, err := s.rdb.Exists(ctx, sessionKeyPrefix+id).Result()
	return err == nil && exists > 0
}

// DestroySession removes the session id, if any.
func (s *AuthService) DestroySession(ctx context.Context, id string) {
	if s.rdb == nil || id == "" {
		return
	}
	s.rdb.Del(ctx, sessionKeyPrefix+id)
}

// SessionTTL exposes the configured session lifetime for cookie max-age.
func (s *AuthService) SessionTTL() time.Duration {
	return s.sessionTTL
}
