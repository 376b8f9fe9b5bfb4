package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"havahills/backoffice/internal/common"
	"havahills/backoffice/internal/db/repositories"
	gormModels "havahills/backoffice/internal/models/gorm"
)

const chatHistoryLimit = 100

// ChatService is the team chat between admins and limited-access staff.
// Messages are stored locally; the sender comes from the session, never from
// the request body.
type ChatService struct {
	repo *repositories.ChatRepository
}

func NewChatService(repo *repositories.ChatRepository) *ChatService {
	return &ChatService{repo: repo}
}

func (s *ChatService) PostMessage(ctx context.Context, session *common.SessionData, content string) (*gormModels.ChatMessage, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, errors.New("message content is empty")
	}

	senderName := session.ClientName
	if senderName == "" {
		senderName = session.Email
	}

	msg := &gormModels.ChatMessage{
		SenderName: senderName,
		SenderRole: session.Role.String(),
		Content:    content,
	}

	if err := s.repo.Insert(ctx, msg); err != nil {
		return nil, fmt.Errorf("failed to post message: %w", err)
	}
	return msg, nil
}

// History returns the most recent messages, oldest first.
func (s *ChatService) History(ctx context.Context) ([]gormModels.ChatMessage, error) {
	return s.repo.ListRecent(ctx, chatHistoryLimit)
}

// UnreadCount reports how many messages arrived after the given message ID.
func (s *ChatService) UnreadCount(ctx context.Context, afterID uint) (int64, error) {
	return s.repo.CountSince(ctx, afterID)
}
