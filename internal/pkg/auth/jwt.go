package auth

import (
	"errors"
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// JWT errors
var (
	ErrInvalidToken  = errors.New("invalid token")
	ErrInvalidFormat = errors.New("invalid authorization header format")
)

// TokenCodec signs and parses bearer tokens carrying a user id. Tokens do
// not expire; revocation is handled by deleting the user record, since the
// authorization middleware re-fetches the user on every request.
type TokenCodec struct {
	secret []byte
}

// NewTokenCodec creates a codec with the server-held symmetric secret.
func NewTokenCodec(secret string) *TokenCodec {
	return &TokenCodec{secret: []byte(secret)}
}

// Claims defines the token payload. UserID is the only application claim.
type Claims struct {
	UserID string `json:"userId"`
	jwt.RegisteredClaims
}

// Sign produces an opaque signed token for the given user id.
func (c *TokenCodec) Sign(userID string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{UserID: userID})
	signed, err := token.SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Parse verifies the signature and decodes the user id. Any signature,
// algorithm or payload-shape failure yields ErrInvalidToken.
func (c *TokenCodec) Parse(tokenString string) (string, error) {
	if tokenString == "" {
		return "", ErrInvalidToken
	}

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return c.secret, nil
	})
	if err != nil {
		return "", ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.UserID == "" {
		return "", ErrInvalidToken
	}

	return claims.UserID, nil
}

// ExtractBearerToken extracts the token from an Authorization header.
// The "Bearer " scheme prefix is mandatory.
func ExtractBearerToken(authHeader string) (string, error) {
	if authHeader == "" {
		return "", ErrInvalidFormat
	}

	scheme, token, found := strings.Cut(authHeader, " ")
	if !found || scheme != "Bearer" || token == "" {
		return "", ErrInvalidFormat
	}

	return token, nil
}
