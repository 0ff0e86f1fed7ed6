package auth

import (
	"errors"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"

	"github.com/digital-house/community-service/internal/domain"
)

// TokenManager handles issuing and validating JWT tokens.
type TokenManager struct {
	secret      []byte
	ttl         time.Duration
	rememberTTL time.Duration
	now         func() time.Time
}

// NewTokenManager builds a new manager. rememberTTL applies to "remember me" logins.
func NewTokenManager(secret string, ttl, rememberTTL time.Duration) *TokenManager {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	if rememberTTL < ttl {
		rememberTTL = ttl
	}
	return &TokenManager{secret: []byte(secret), ttl: ttl, rememberTTL: rememberTTL, now: time.Now}
}

// Claims describes JWT payload. The user id travels in the registered "sub" claim.
type Claims struct {
	UserType domain.UserType `json:"user_type"`
	jwt.RegisteredClaims
}

// GenerateToken builds and signs a JWT for the user.
func (tm *TokenManager) GenerateToken(userID string, userType domain.UserType, remember bool) (string, time.Time, error) {
	issuedAt := tm.now()
	ttl := tm.ttl
	if remember {
		ttl = tm.rememberTTL
	}
	expiresAt := issuedAt.Add(ttl)
	claims := &Claims{
		UserType: userType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(tm.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return tokenString, expiresAt, nil
}

// ParseToken validates and returns claims.
func (tm *TokenManager) ParseToken(tokenStr string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return tm.secret, nil
	}, jwt.WithTimeFunc(tm.now))
	if err != nil {
		return nil, err
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid || claims.Subject == "" {
		return nil, errors.New("invalid token claims")
	}
	return claims, nil
}
