package services

import (
	"strings"

	"webchat/internal/models"
	"webchat/internal/repositories"
)

type MessageService struct {
	messages repositories.MessageRepository
}

func NewMessageService(messages repositories.MessageRepository) *MessageService {
	return &MessageService{messages: messages}
}

// Send persists the message with trimmed content. Content that is empty
// after trimming is silently dropped; the caller still treats it as success.
func (s *MessageService) Send(chatID, userID uint, content string) error {
	text := strings.TrimSpace(content)
	if text == "" {
		return nil
	}
	return s.messages.Create(&models.Message{ChatID: chatID, UserID: userID, Content: text})
}

// ListByChat returns the chat's messages oldest first.
func (s *MessageService) ListByChat(chatID uint) ([]models.MessageWithAuthor, error) {
	return s.messages.ListByChat(chatID)
}
