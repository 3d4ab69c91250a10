package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"punchcard/internal/shared/biztime"
)

// QRPurpose is the claim value carried by every kiosk display token.
const QRPurpose = "attendance"

// QRClaims are the claims of a kiosk display token. The token authenticates
// the display, not the scanning employee; the same token is intentionally
// shared by every employee scanning during its validity window.
type QRClaims struct {
	Purpose string `json:"purpose"`
	jwt.RegisteredClaims
}

// QRTokenService issues and validates the signed, time-boxed tokens encoded
// in the office QR display. Signed with a secret separate from the login JWT
// secret so neither can stand in for the other.
type QRTokenService struct {
	secret   []byte
	validity time.Duration
}

func NewQRTokenService(secret string, validityHours int) *QRTokenService {
	if validityHours <= 0 {
		validityHours = 24
	}
	return &QRTokenService{
		secret:   []byte(secret),
		validity: time.Duration(validityHours) * time.Hour,
	}
}

// Issue returns a fresh display token valid for the configured window.
func (s *QRTokenService) Issue() (string, error) {
	return s.issueAt(biztime.NowUTC())
}

func (s *QRTokenService) issueAt(now time.Time) (string, error) {
	claims := &QRClaims{
		Purpose: QRPurpose,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.validity)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign QR token: %w", err)
	}
	return signed, nil
}

// Validate reports whether the token is well formed, carries the attendance
// purpose, and has not expired. False is terminal: callers reject the scan
// and never retry. Expiry is the only replay protection; one displayed code
// serves the whole office within its window.
func (s *QRTokenService) Validate(tokenString string) bool {
	return s.validateAt(tokenString, biztime.NowUTC())
}

func (s *QRTokenService) validateAt(tokenString string, now time.Time) bool {
	token, err := jwt.ParseWithClaims(tokenString, &QRClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(func() time.Time { return now }))
	if err != nil {
		return false
	}

	claims, ok := token.Claims.(*QRClaims)
	return ok && token.Valid && claims.Purpose == QRPurpose
}
