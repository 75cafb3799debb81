package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// IssueToken signs a 7-day session token for the given user.
func IssueToken(userID, secret string) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"exp":     time.Now().Add(7 * 24 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
