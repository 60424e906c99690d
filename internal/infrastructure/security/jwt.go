package security

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// GenerateAccessToken creates a JWT granting premium access to a session
// after a verified payment.
func GenerateAccessToken(sessionID, paymentID, jwtSecret string) (string, error) {
	claims := jwt.MapClaims{
		"sessionId": sessionID,
		"paymentId": paymentID,
		"scope":     "premium",
		"iat":       time.Now().UTC().Unix(),
		"exp":       time.Now().UTC().Add(30 * 24 * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(jwtSecret))
}

// ValidateAccessToken validates a JWT and returns its claims.
func ValidateAccessToken(tokenString, jwtSecret string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(jwtSecret), nil
	})
	if err != nil {
		return nil, err
	}
	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, errors.New("invalid token")
}
