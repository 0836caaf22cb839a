package client

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// TokenSubject reads the subject of an access token without verifying it.
// Only the server can verify tokens; the client needs the subject to know
// which user it acts for.
func TokenSubject(token string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return "", fmt.Errorf("parse token: %w", err)
	}
	if claims.Subject == "" {
		return "", fmt.Errorf("parse token: subject is empty")
	}
	return claims.Subject, nil
}
