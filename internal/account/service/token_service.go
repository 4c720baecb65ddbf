package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	autherror "github.com/bodycheck/credential-service/internal/errors"
)

// TokenService issues and validates HS256-signed session tokens. Tokens
// are stateless: the payload carries only the account id and the time
// bounds, nothing confidential.
type TokenService struct {
	signingKey []byte
	ttl        time.Duration
}

func NewTokenService(signingKey string, ttlMinutes int) *TokenService {
	return &TokenService{
		signingKey: []byte(signingKey),
		ttl:        time.Duration(ttlMinutes) * time.Minute,
	}
}

func (ts *TokenService) TTL() time.Duration {
	return ts.ttl
}

func (ts *TokenService) Issue(accountID string) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(ts.ttl)

	claims := jwt.RegisteredClaims{
		Subject:   accountID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(ts.signingKey)
	if err != nil {
		return "", time.Time{}, err
	}

	return token, expiresAt, nil
}

// Validate parses and verifies the given token string and returns the
// account id it asserts. A token presented at exactly its expiry instant
// is already expired.
func (ts *TokenService) Validate(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		// Ensure the token's signing method is HMAC.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return ts.signingKey, nil
	})

	switch {
	case err == nil:
	case errors.Is(err, jwt.ErrTokenExpired):
		return "", autherror.ErrTokenExpired
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return "", autherror.ErrTokenSignature
	default:
		return "", autherror.ErrTokenMalformed
	}

	if !token.Valid {
		return "", autherror.ErrTokenMalformed
	}

	// The library accepts now == exp; the expiry bound is exclusive here.
	if claims.ExpiresAt == nil || !time.Now().Before(claims.ExpiresAt.Time) {
		return "", autherror.ErrTokenExpired
	}

	if claims.Subject == "" {
		return "", autherror.ErrTokenMalformed
	}

	return claims.Subject, nil
}
