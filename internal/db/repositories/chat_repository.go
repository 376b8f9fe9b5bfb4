package repositories

import (
	"context"
	"fmt"

	gormModels "havahills/backoffice/internal/models/gorm"

	"gorm.io/gorm"
)

// ChatRepository handles team chat messages using GORM
type ChatRepository struct {
	db *gorm.DB
}

// NewChatRepository creates a new GORM-based chat repository
func NewChatRepository(db *gorm.DB) *ChatRepository {
	return &ChatRepository{db: db}
}

// Insert stores a new chat message
func (r *ChatRepository) Insert(ctx context.Context, msg *gormModels.ChatMessage) error {
	if err := r.db.WithContext(ctx).Create(msg).Error; err != nil {
		return fmt.Errorf("failed to insert chat message: %w", err)
	}
	return nil
}

// ListRecent retrieves the most recent messages, oldest first
func (r *ChatRepository) ListRecent(ctx context.Context, limit int) ([]gormModels.ChatMessage, error) {
	var messages []gormModels.ChatMessage

	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&messages).Error

	if err != nil {
		return nil, fmt.Errorf("failed to list chat messages: %w", err)
	}

	// reverse so callers render oldest first
	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}

	return messages, nil
}

// CountSince returns how many messages arrived after the given message ID
func (r *ChatRepository) CountSince(ctx context.Context, afterID uint) (int64, error) {
	var count int64

	err := r.db.WithContext(ctx).
		Model(&gormModels.ChatMessage{}).
		Where("id > ?", afterID).
		Count(&count).Error

	if err != nil {
		return 0, fmt.Errorf("failed to count chat messages: %w", err)
	}

	return count, nil
}
