package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"webchat/internal/models"
)

func TestSendTrimsContent(t *testing.T) {
	auth, chats, messages, _ := newServices(t)
	owner := registerUser(t, auth, "owner@x.com")

	chat, err := chats.CreateChat(owner.ID, "Team")
	require.NoError(t, err)

	require.NoError(t, messages.Send(chat.ID, owner.ID, "  hello  "))

	list, err := messages.ListByChat(chat.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "hello", list[0].Content)
	assert.Equal(t, "owner@x.com", list[0].AuthorEmail)
}

func TestSendWhitespaceOnlyIsSilentNoOp(t *testing.T) {
	auth, chats, messages, db := newServices(t)
	owner := registerUser(t, auth, "owner@x.com")

	chat, err := chats.CreateChat(owner.ID, "Team")
	require.NoError(t, err)

	require.NoError(t, messages.Send(chat.ID, owner.ID, "   "))

	var count int64
	require.NoError(t, db.Model(&models.Message{}).Where("chat_id = ?", chat.ID).Count(&count).Error)
	assert.Zero(t, count)
}
