package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"webchat/internal/models"
	"webchat/internal/repositories"
	"webchat/internal/utils"
)

type ChatService struct {
	chats repositories.ChatRepository
	users repositories.UserRepository
}

func NewChatService(chats repositories.ChatRepository, users repositories.UserRepository) *ChatService {
	return &ChatService{chats: chats, users: users}
}

// CreateChat inserts the chat and the creator's membership atomically. The
// name is trimmed; it may end up empty, there is no minimum length.
func (s *ChatService) CreateChat(ownerID uint, name string) (*models.Chat, error) {
	chat := models.Chat{Name: strings.TrimSpace(name), OwnerID: ownerID}
	if err := s.chats.CreateWithOwner(&chat); err != nil {
		return nil, err
	}
	return &chat, nil
}

func (s *ChatService) GetChat(chatID uint) (*models.Chat, error) {
	chat, err := s.chats.FindByID(chatID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrChatNotFound
		}
		return nil, err
	}
	return chat, nil
}

func (s *ChatService) ListChats(userID uint) ([]models.Chat, error) {
	return s.chats.ListChatsForUser(userID)
}

func (s *ChatService) ListParticipants(chatID uint) ([]models.User, error) {
	return s.chats.ListParticipants(chatID)
}

// CanAccess applies the uniform access rule: member or owner. The owner
// disjunct is a safety net; the creation transaction already makes the owner
// a member. Positive membership checks are cached, which is safe because a
// membership row only ever disappears together with its chat.
func (s *ChatService) CanAccess(chat *models.Chat, userID uint) (bool, error) {
	if chat.OwnerID == userID {
		return true, nil
	}
	cacheKey := fmt.Sprintf("membership:%d:%d", userID, chat.ID)
	if _, found := utils.MembershipCache.Get(cacheKey); found {
		return true, nil
	}
	member, err := s.chats.IsMember(chat.ID, userID)
	if err != nil {
		return false, err
	}
	if member {
		utils.MembershipCache.Set(cacheKey, true, time.Minute*5)
	}
	return member, nil
}

// Join adds the user to the chat. Any authenticated user may join any chat
// by id; joining twice is a silent no-op.
func (s *ChatService) Join(chatID, userID uint) error {
	return s.chats.AddMember(chatID, userID)
}

// Invite adds the user registered under the given email. A missing account
// fails with ErrUserNotFound; inviting an existing member is a silent no-op.
func (s *ChatService) Invite(chatID uint, email string) error {
	target, err := s.users.FindByEmail(strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	return s.chats.AddMember(chatID, target.ID)
}

// DeleteChat removes the chat with all its messages and memberships in one
// transaction. Only the owner may delete, membership is not enough.
func (s *ChatService) DeleteChat(chat *models.Chat, requesterID uint) error {
	if chat.OwnerID != requesterID {
		return ErrNotOwner
	}
	return s.chats.DeleteCascade(chat.ID)
}
