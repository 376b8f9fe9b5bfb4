package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"havahills/backoffice/internal/common"
	"havahills/backoffice/internal/constants"
	"havahills/backoffice/internal/db/repositories"
	gormModels "havahills/backoffice/internal/models/gorm"
)

// Setup test database
func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(&gormModels.ChatMessage{}); err != nil {
		t.Fatalf("Failed to migrate: %v", err)
	}

	return db
}

func staffSession(name string) *common.SessionData {
	return &common.SessionData{
		Email:      name + "@havahills.ph",
		Role:       constants.RoleLimited,
		ClientName: name,
	}
}

func TestChatService_PostAndHistory(t *testing.T) {
	svc := NewChatService(repositories.NewChatRepository(setupTestDB(t)))
	ctx := context.Background()

	_, err := svc.PostMessage(ctx, staffSession("Ana"), "First message")
	require.NoError(t, err)
	_, err = svc.PostMessage(ctx, staffSession("Ben"), "Second message")
	require.NoError(t, err)

	history, err := svc.History(ctx)
	require.NoError(t, err)
	require.Len(t, history, 2)

	// oldest first
	assert.Equal(t, "First message", history[0].Content)
	assert.Equal(t, "Ana", history[0].SenderName)
	assert.Equal(t, constants.RoleLimited.String(), history[0].SenderRole)
	assert.Equal(t, "Second message", history[1].Content)
}

func TestChatService_EmptyMessageRejected(t *testing.T) {
	svc := NewChatService(repositories.NewChatRepository(setupTestDB(t)))

	_, err := svc.PostMessage(context.Background(), staffSession("Ana"), "   ")
	require.Error(t, err)
}

func TestChatService_SenderFallsBackToEmail(t *testing.T) {
	svc := NewChatService(repositories.NewChatRepository(setupTestDB(t)))

	session := &common.SessionData{Email: "admin@havahills.ph", Role: constants.RoleAdmin}
	msg, err := svc.PostMessage(context.Background(), session, "Hello")
	require.NoError(t, err)

	assert.Equal(t, "admin@havahills.ph", msg.SenderName)
}

func TestChatService_UnreadCount(t *testing.T) {
	svc := NewChatService(repositories.NewChatRepository(setupTestDB(t)))
	ctx := context.Background()

	first, err := svc.PostMessage(ctx, staffSession("Ana"), "One")
	require.NoError(t, err)
	_, err = svc.PostMessage(ctx, staffSession("Ben"), "Two")
	require.NoError(t, err)

	count, err := svc.UnreadCount(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}
