package common

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"havahills/backoffice/internal/constants"
)

const sessionTTL = 24 * time.Hour

// SessionData is the single source of truth for "who is signed in". Every
// protected view reads this instead of ad-hoc persisted flags.
type SessionData struct {
	SessionID  string             `json:"session_id"`
	SubjectID  string             `json:"subject_id"`
	Email      string             `json:"email"`
	Role       constants.UserRole `json:"role"`
	ClientID   string             `json:"client_id,omitempty"`
	ClientName string             `json:"client_name,omitempty"`
	CreatedAt  time.Time          `json:"created_at"`
	ExpiresAt  time.Time          `json:"expires_at"`
}

// SessionService manages user sessions in Redis
type SessionService struct {
	redis *redis.Client
}

// NewSessionService creates a new session service
func NewSessionService(redis *redis.Client) *SessionService {
	return &SessionService{
		redis: redis,
	}
}

// CreateSession creates a new session after a successful sign-in
func (s *SessionService) CreateSession(
	ctx context.Context,
	subjectID, email string,
	role constants.UserRole,
	clientID, clientName string,
) (string, error) {
	sessionID := uuid.New().String()

	now := time.Now()
	session := SessionData{
		SessionID:  sessionID,
		SubjectID:  subjectID,
		Email:      email,
		Role:       role,
		ClientID:   clientID,
		ClientName: clientName,
		CreatedAt:  now,
		ExpiresAt:  now.Add(sessionTTL),
	}

	data, err := json.Marshal(session)
	if err != nil {
		return "", fmt.Errorf("failed to marshal session: %w", err)
	}

	if err := s.redis.Set(ctx, "session:"+sessionID, data, sessionTTL).Err(); err != nil {
		return "", fmt.Errorf("failed to store session: %w", err)
	}

	return sessionID, nil
}

// GetSession retrieves a session from Redis
func (s *SessionService) GetSession(ctx context.Context, sessionID string) (*SessionData, error) {
	val, err := s.redis.Get(ctx, "session:"+sessionID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.New("session not found")
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	var session SessionData
	if err := json.Unmarshal([]byte(val), &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}

	if time.Now().After(session.ExpiresAt) {
		s.DeleteSession(ctx, sessionID) // Clean up expired session
		return nil, errors.New("session expired")
	}

	return &session, nil
}

// DeleteSession deletes a session from Redis
func (s *SessionService) DeleteSession(ctx context.Context, sessionID string) error {
	if err := s.redis.Del(ctx, "session:"+sessionID).Err(); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

// RefreshSession slides an authenticated session's expiration forward. Called
// on every request that resolved a live session, so active users stay signed
// in while idle sessions age out.
func (s *SessionService) RefreshSession(ctx context.Context, session *SessionData) error {
	session.ExpiresAt = time.Now().Add(sessionTTL)

	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	if err := s.redis.Set(ctx, "session:"+session.SessionID, data, sessionTTL).Err(); err != nil {
		return fmt.Errorf("failed to refresh session: %w", err)
	}

	return nil
}
