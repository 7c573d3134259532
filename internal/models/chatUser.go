package models

// ChatUser is the membership row: its existence is the only meaning.
// The composite primary key rules out duplicate memberships. The cascading
// foreign keys come from the many2many association tags on User and Chat.
type ChatUser struct {
	ChatID uint `gorm:"primaryKey;autoIncrement:false" json:"chat_id"`
	UserID uint `gorm:"primaryKey;autoIncrement:false" json:"user_id"`
}
