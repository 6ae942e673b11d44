package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const TTL = time.Hour

var (
	ErrInvalid = errors.New("invalid token")
	ErrExpired = errors.New("token expired")
)

// Service signs and verifies session tokens. It is a pure function of the
// signing secret, there is no server-side token state and no revocation.
type Service struct {
	Secret []byte
}

// Issue signs the given claims with an embedded 1 hour expiry. The caller's
// claims are copied, not mutated.
func (s *Service) Issue(claims jwt.MapClaims) (string, error) {
	now := time.Now()
	signed := jwt.MapClaims{}
	for k, v := range claims {
		signed[k] = v
	}
	signed["iat"] = now.Unix()
	signed["exp"] = now.Add(TTL).Unix()

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, signed)
	return t.SignedString(s.Secret)
}

// Verify returns the token's claims unchanged, ErrExpired if the embedded
// expiry has passed, or ErrInvalid for anything else (bad signature,
// malformed or empty string).
func (s *Service) Verify(raw string) (jwt.MapClaims, error) {
	t, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signature method: %v", t.Header["alg"])
		}
		return s.Secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpired
		}
		return nil, ErrInvalid
	}
	if !t.Valid {
		return nil, ErrInvalid
	}
	claims, ok := t.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalid
	}
	return claims, nil
}
