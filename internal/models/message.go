package models

import (
	"time"
)

type Message struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	ChatID    uint      `gorm:"not null;index" json:"chat_id"`
	Chat      Chat      `gorm:"foreignKey:ChatID;constraint:OnDelete:CASCADE" json:"-"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	Author    User      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Content   string    `gorm:"type:text" json:"content"`
	CreatedAt time.Time `gorm:"autoCreateTime;index" json:"created_at"`
}

// MessageWithAuthor is the shape the chat detail page renders.
type MessageWithAuthor struct {
	Content     string    `json:"content"`
	CreatedAt   time.Time `json:"created_at"`
	AuthorEmail string    `json:"author_email"`
}
