package repositories

import (
	"gorm.io/gorm"

	"webchat/internal/models"
)

type MessageRepository interface {
	Create(message *models.Message) error
	ListByChat(chatID uint) ([]models.MessageWithAuthor, error)
}

type GormMessageRepository struct{ db *gorm.DB }

func NewMessageRepository(db *gorm.DB) *GormMessageRepository {
	return &GormMessageRepository{db: db}
}

func (r *GormMessageRepository) Create(message *models.Message) error {
	return r.db.Create(message).Error
}

// ListByChat returns the chat's messages oldest first, creation time being
// the sole ordering key.
func (r *GormMessageRepository) ListByChat(chatID uint) ([]models.MessageWithAuthor, error) {
	var messages []models.MessageWithAuthor
	err := r.db.
		Table("messages").
		Select("messages.content, messages.created_at, users.email AS author_email").
		Joins("JOIN users ON messages.user_id = users.id").
		Where("messages.chat_id = ?", chatID).
		Order("messages.created_at ASC, messages.id ASC").
		Scan(&messages).Error
	return messages, err
}
