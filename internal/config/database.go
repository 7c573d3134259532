package config

import (
	"fmt"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"webchat/internal/models"
)

// OpenDB connects to the configured database and migrates the schema.
func OpenDB(cfg DatabaseConfig) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.Driver {
	case "mysql":
		dialector = mysql.Open(cfg.DSN)
	case "sqlite":
		dialector = sqlite.Open(cfg.FilePath)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	// Membership uses an explicit join model so its composite key is visible.
	if err := db.SetupJoinTable(&models.User{}, "Chats", &models.ChatUser{}); err != nil {
		return nil, err
	}
	if err := db.SetupJoinTable(&models.Chat{}, "Users", &models.ChatUser{}); err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Chat{},
		&models.ChatUser{},
		&models.Message{},
	); err != nil {
		return nil, err
	}

	return db, nil
}
