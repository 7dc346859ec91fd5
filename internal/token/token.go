package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"userpoint/internal/model"
)

// Validity is the lifetime of an issued credential.
const Validity = 24 * time.Hour

type claims struct {
	jwt.RegisteredClaims
	UserID model.UserID `json:"userId"`
}

// Service issues and verifies signed identity credentials. The signing
// secret is fixed at construction; rotating it invalidates every
// outstanding credential.
type Service struct {
	secret []byte
}

func New(secret string) *Service {
	return &Service{secret: []byte(secret)}
}

// Issue mints a credential for userID, valid for 24 hours.
func (s *Service) Issue(userID model.UserID) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(Validity)),
		},
		UserID: userID,
	})

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}

	return signed, nil
}

// Verify checks the signature and expiry of tokenString and returns the
// subject it was issued for. Verification is purely cryptographic; no
// stored state is consulted.
func (s *Service) Verify(tokenString string) (model.UserID, error) {
	parsed := &claims{}

	token, err := jwt.ParseWithClaims(tokenString, parsed, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", model.ErrorTokenExpired
		}
		return "", model.ErrorInvalidToken
	}

	if !token.Valid || parsed.UserID == "" {
		return "", model.ErrorInvalidToken
	}

	return parsed.UserID, nil
}
