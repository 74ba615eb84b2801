package api

import (
	"errors"
	"fmt"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/google/uuid"

	"grandstay/internal/models"
)

// ErrInvalidToken is returned for tokens that fail signature, expiry or
// role checks.
var ErrInvalidToken = errors.New("invalid token")

// Session is an authenticated surface bound to one role.
type Session struct {
	ID        string          `json:"id"`
	Role      models.UserRole `json:"role"`
	ExpiresAt time.Time       `json:"expiresAt"`
}

type sessionClaims struct {
	Role string `json:"role"`
	jwt.StandardClaims
}

// SessionManager issues and verifies HS256 role tokens.
type SessionManager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewSessionManager(secret string, ttl time.Duration) *SessionManager {
	return &SessionManager{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// Issue starts a new session for role.
func (m *SessionManager) Issue(role models.UserRole) (string, Session, error) {
	if !role.Valid() {
		return "", Session{}, fmt.Errorf("cannot issue session for role %q", role)
	}
	now := m.now()
	s := Session{ID: uuid.NewString(), Role: role, ExpiresAt: now.Add(m.ttl)}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, sessionClaims{
		Role: string(role),
		StandardClaims: jwt.StandardClaims{
			Id:        s.ID,
			IssuedAt:  now.Unix(),
			ExpiresAt: s.ExpiresAt.Unix(),
			Issuer:    "grandstay",
		},
	})
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", Session{}, fmt.Errorf("sign session token: %w", err)
	}
	return signed, s, nil
}

// Parse verifies tokenString and returns its session.
func (m *SessionManager) Parse(tokenString string) (Session, error) {
	var claims sessionClaims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return Session{}, ErrInvalidToken
	}

	role := models.UserRole(claims.Role)
	if !role.Valid() || claims.Id == "" {
		return Session{}, ErrInvalidToken
	}
	return Session{ID: claims.Id, Role: role, ExpiresAt: time.Unix(claims.ExpiresAt, 0)}, nil
}
