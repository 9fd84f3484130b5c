package utils

import (
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var JWTSecret []byte

const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"

	accessTokenTTL  = time.Hour
	refreshTokenTTL = 7 * 24 * time.Hour
)

func init() {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		// Development fallback, override in production
		secret = "BackofficeDevSecret1945"
	}
	JWTSecret = []byte(secret)
}

type CustomClaims struct {
	UserID    uint   `json:"user_id"`
	TokenType string `json:"token_type"`
	jwt.RegisteredClaims
}

// GenerateToken issues a short-lived access token for the user.
func GenerateToken(userID uint) (string, error) {
	return signToken(userID, TokenTypeAccess, accessTokenTTL)
}

// GenerateRefreshToken issues the long-lived refresh token paired with an
// access token at login.
func GenerateRefreshToken(userID uint) (string, error) {
	return signToken(userID, TokenTypeRefresh, refreshTokenTTL)
}

func signToken(userID uint, tokenType string, ttl time.Duration) (string, error) {
	claims := &CustomClaims{
		UserID:    userID,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "restaurant-backoffice",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(JWTSecret)
}

// ParseToken validates an access token and returns its claims.
func ParseToken(tokenString string) (*CustomClaims, error) {
	return parseToken(tokenString, TokenTypeAccess)
}

// ParseRefreshToken validates a refresh token and returns its claims.
func ParseRefreshToken(tokenString string) (*CustomClaims, error) {
	return parseToken(tokenString, TokenTypeRefresh)
}

func parseToken(tokenString, wantType string) (*CustomClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &CustomClaims{}, func(token *jwt.Token) (interface{}, error) {
		return JWTSecret, nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("invalid or expired token")
	}

	claims, ok := token.Claims.(*CustomClaims)
	if !ok {
		return nil, errors.New("invalid token claims")
	}
	if claims.TokenType != wantType {
		return nil, errors.New("invalid scope for token")
	}
	return claims, nil
}
