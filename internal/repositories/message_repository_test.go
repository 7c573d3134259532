package repositories

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"webchat/internal/models"
)

func TestListByChatOldestFirst(t *testing.T) {
	db := newTestDB(t)
	chatRepo := NewChatRepository(db)
	msgRepo := NewMessageRepository(db)
	user := createUser(t, db, "author@x.com")

	chat := models.Chat{Name: "Team", OwnerID: user.ID}
	require.NoError(t, chatRepo.CreateWithOwner(&chat))

	// Inserted out of order; creation time is the sole ordering key.
	base := time.Now().Add(-time.Hour)
	for _, m := range []struct {
		content string
		offset  time.Duration
	}{
		{"second", time.Minute},
		{"third", 2 * time.Minute},
		{"first", 0},
	} {
		require.NoError(t, db.Create(&models.Message{
			ChatID:    chat.ID,
			UserID:    user.ID,
			Content:   m.content,
			CreatedAt: base.Add(m.offset),
		}).Error)
	}

	messages, err := msgRepo.ListByChat(chat.ID)
	require.NoError(t, err)
	require.Len(t, messages, 3)
	assert.Equal(t, "first", messages[0].Content)
	assert.Equal(t, "second", messages[1].Content)
	assert.Equal(t, "third", messages[2].Content)
	assert.Equal(t, "author@x.com", messages[0].AuthorEmail)
}

func TestListByChatScopedToChat(t *testing.T) {
	db := newTestDB(t)
	chatRepo := NewChatRepository(db)
	msgRepo := NewMessageRepository(db)
	user := createUser(t, db, "author@x.com")

	one := models.Chat{Name: "one", OwnerID: user.ID}
	require.NoError(t, chatRepo.CreateWithOwner(&one))
	two := models.Chat{Name: "two", OwnerID: user.ID}
	require.NoError(t, chatRepo.CreateWithOwner(&two))

	require.NoError(t, msgRepo.Create(&models.Message{ChatID: one.ID, UserID: user.ID, Content: "in one"}))
	require.NoError(t, msgRepo.Create(&models.Message{ChatID: two.ID, UserID: user.ID, Content: "in two"}))

	messages, err := msgRepo.ListByChat(one.ID)
	require.NoError(t, err)
	require.Len(t, messages, 1)
	assert.Equal(t, "in one", messages[0].Content)
}

func TestFindByEmailExactMatch(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	createUser(t, db, "Exact@X.com")

	u, err := repo.FindByEmail("Exact@X.com")
	require.NoError(t, err)
	assert.Equal(t, "Exact@X.com", u.Email)

	_, err = repo.FindByEmail("exact@x.com")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
