package gorm

import "time"

// ChatMessage is one team-chat message. Stored locally; the hosted data
// service only carries property data.
type ChatMessage struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	SenderName string    `gorm:"index;not null" json:"senderName"`
	SenderRole string    `json:"senderRole"`
	Content    string    `gorm:"not null" json:"content"`
	CreatedAt  time.Time `gorm:"index" json:"createdAt"`
}

func (ChatMessage) TableName() string {
	return "chat_messages"
}
