package services

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"webchat/internal/config"
	"webchat/internal/models"
	"webchat/internal/repositories"
	"webchat/internal/utils"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	// Chat and user ids restart per test DB, so the package-level caches must
	// not leak entries between tests.
	utils.MembershipCache.Flush()
	utils.AuthCache.Flush()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Chat{},
		&models.ChatUser{},
		&models.Message{},
	))
	return db
}

func newServices(t *testing.T) (*AuthService, *ChatService, *MessageService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	userRepo := repositories.NewUserRepository(db)
	chatRepo := repositories.NewChatRepository(db)
	msgRepo := repositories.NewMessageRepository(db)

	tokens := utils.NewTokenManager(config.AuthConfig{Secret: "test-secret", TokenTTL: time.Hour})
	return NewAuthService(userRepo, tokens),
		NewChatService(chatRepo, userRepo),
		NewMessageService(msgRepo),
		db
}

func registerUser(t *testing.T, auth *AuthService, email string) *models.User {
	t.Helper()
	_, user, err := auth.Register(email, "pass-123")
	require.NoError(t, err)
	return user
}
