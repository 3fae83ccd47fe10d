package auth

import (
	"crypto/hmac"
	"errors"
	"fmt"
	"time"

	"github.com/dgrijalva/jwt-go"
)

var (
	ErrInvalidAdminToken = errors.New("invalid admin token")
	ErrInvalidUserToken  = errors.New("invalid user token")
)

// GenerateUserToken mints an HS256 JWT carrying the member's user ID.
// The surrounding site issues these at login; tests mint them directly.
func GenerateUserToken(userID, secret string, ttl time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userID,
		"exp":     time.Now().Add(ttl).Unix(),
	})

	tokenString, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign user token: %w", err)
	}
	return tokenString, nil
}

// ParseUserToken validates an HS256 JWT and returns the user_id claim.
func ParseUserToken(tokenString, secret string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return "", ErrInvalidUserToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrInvalidUserToken
	}
	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", ErrInvalidUserToken
	}
	return userID, nil
}

// ValidateAdminToken compares the provided back-office token against the
// configured one in constant time.
func ValidateAdminToken(provided, expected string) error {
	if expected == "" || !hmac.Equal([]byte(provided), []byte(expected)) {
		return ErrInvalidAdminToken
	}
	return nil
}
