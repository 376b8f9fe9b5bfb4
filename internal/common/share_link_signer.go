package common

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// ShareToken represents a single-use document share link token
type ShareToken struct {
	Client    string
	File      string
	TokenID   string
	ExpiresAt time.Time
}

// ShareLinkSigner issues and validates single-use tokens for sharing a
// client's stored document outside the back office.
type ShareLinkSigner struct {
	secretKey []byte
	redis     *redis.Client
}

// NewShareLinkSigner creates a new share link signer
func NewShareLinkSigner(secretKey []byte, redis *redis.Client) *ShareLinkSigner {
	return &ShareLinkSigner{
		secretKey: secretKey,
		redis:     redis,
	}
}

// GenerateShareToken generates a single-use token for one stored file
func (s *ShareLinkSigner) GenerateShareToken(client, file string, ttl time.Duration) (string, error) {
	tokenID := uuid.New().String()
	expiresAt := time.Now().Add(ttl)

	claims := jwt.MapClaims{
		"client": client,
		"file":   file,
		"jti":    tokenID,
		"exp":    expiresAt.Unix(),
		"iat":    time.Now().Unix(),
	}

	// Sign with HMAC
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.secretKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

// ValidateToken validates a share token and returns its claims
func (s *ShareLinkSigner) ValidateToken(ctx context.Context, tokenString string) (*ShareToken, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.MapClaims{}, func(token *jwt.Token) (interface{}, error) {
		// Verify signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secretKey, nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(*jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}

	client, ok := (*claims)["client"].(string)
	if !ok {
		return nil, errors.New("missing or invalid client claim")
	}

	file, ok := (*claims)["file"].(string)
	if !ok {
		return nil, errors.New("missing or invalid file claim")
	}

	tokenID, ok := (*claims)["jti"].(string)
	if !ok {
		return nil, errors.New("missing or invalid jti claim")
	}

	expFloat, ok := (*claims)["exp"].(float64)
	if !ok {
		return nil, errors.New("missing or invalid exp claim")
	}
	expiresAt := time.Unix(int64(expFloat), 0)

	if time.Now().After(expiresAt) {
		return nil, errors.New("token expired")
	}

	// Single-use: reject tokens that already resolved once
	isUsed, err := s.IsTokenUsed(ctx, tokenID)
	if err != nil {
		return nil, fmt.Errorf("failed to check token usage: %w", err)
	}
	if isUsed {
		return nil, errors.New("token already used")
	}

	return &ShareToken{
		Client:    client,
		File:      file,
		TokenID:   tokenID,
		ExpiresAt: expiresAt,
	}, nil
}

// MarkTokenAsUsed marks a token as used (single-use enforcement).
// The burn record carries a TTL matching the token's expiration, so a spent
// token stays rejected for as long as its signature would still verify.
func (s *ShareLinkSigner) MarkTokenAsUsed(ctx context.Context, tokenID string, expiresAt time.Time) error {
	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		// already expired; the exp check rejects it from here on
		return nil
	}

	if err := s.redis.Set(ctx, "used_token:"+tokenID, "1", ttl).Err(); err != nil {
		return fmt.Errorf("failed to mark token as used: %w", err)
	}

	return nil
}

// IsTokenUsed checks if a token has already been used
func (s *ShareLinkSigner) IsTokenUsed(ctx context.Context, tokenID string) (bool, error) {
	result, err := s.redis.Get(ctx, "used_token:"+tokenID).Result()
	if err == redis.Nil {
		return false, nil // Token not used
	}
	if err != nil {
		return false, fmt.Errorf("failed to check token usage: %w", err)
	}
	return result == "1", nil
}
