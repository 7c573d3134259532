package repositories

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"webchat/internal/models"
)

type ChatRepository interface {
	FindByID(id uint) (*models.Chat, error)
	CreateWithOwner(chat *models.Chat) error
	IsMember(chatID, userID uint) (bool, error)
	AddMember(chatID, userID uint) error
	ListParticipants(chatID uint) ([]models.User, error)
	ListChatsForUser(userID uint) ([]models.Chat, error)
	DeleteCascade(chatID uint) error
}

type GormChatRepository struct{ db *gorm.DB }

func NewChatRepository(db *gorm.DB) *GormChatRepository { return &GormChatRepository{db: db} }

func (r *GormChatRepository) FindByID(id uint) (*models.Chat, error) {
	var c models.Chat
	if err := r.db.First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

// CreateWithOwner inserts the chat and the owner's membership row in one
// transaction, so a chat can never exist without its owner-membership.
func (r *GormChatRepository) CreateWithOwner(chat *models.Chat) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(chat).Error; err != nil {
			return err
		}
		return tx.Create(&models.ChatUser{ChatID: chat.ID, UserID: chat.OwnerID}).Error
	})
}

func (r *GormChatRepository) IsMember(chatID, userID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.ChatUser{}).
		Where("chat_id = ? AND user_id = ?", chatID, userID).
		Count(&count).Error
	return count > 0, err
}

// AddMember is idempotent: a concurrent or repeated insert of the same pair
// hits the composite primary key and is ignored rather than surfaced.
func (r *GormChatRepository) AddMember(chatID, userID uint) error {
	return r.db.Clauses(clause.OnConflict{DoNothing: true}).
		Create(&models.ChatUser{ChatID: chatID, UserID: userID}).Error
}

func (r *GormChatRepository) ListParticipants(chatID uint) ([]models.User, error) {
	var users []models.User
	err := r.db.
		Joins("JOIN chat_users ON chat_users.user_id = users.id").
		Where("chat_users.chat_id = ?", chatID).
		Order("users.email ASC").
		Find(&users).Error
	return users, err
}

// ListChatsForUser returns every chat the user is a member or owner of,
// de-duplicated, newest id first.
func (r *GormChatRepository) ListChatsForUser(userID uint) ([]models.Chat, error) {
	var chats []models.Chat
	err := r.db.
		Joins("LEFT JOIN chat_users ON chat_users.chat_id = chats.id").
		Where("chat_users.user_id = ? OR chats.owner_id = ?", userID, userID).
		Distinct("chats.*").
		Order("chats.id DESC").
		Find(&chats).Error
	return chats, err
}

// DeleteCascade removes the chat's messages, memberships and finally the chat
// itself inside one transaction. The ordering is explicit so atomicity does
// not depend on the storage engine's cascade feature.
func (r *GormChatRepository) DeleteCascade(chatID uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("chat_id = ?", chatID).Delete(&models.Message{}).Error; err != nil {
			return err
		}
		if err := tx.Where("chat_id = ?", chatID).Delete(&models.ChatUser{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Chat{}, chatID).Error
	})
}
