package models

import (
	"time"
)

type Chat struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"type:varchar(200);index" json:"name"`
	OwnerID   uint      `gorm:"not null;index" json:"owner_id"`
	Owner     User      `gorm:"foreignKey:OwnerID" json:"-"`
	Users     []User    `gorm:"many2many:chat_users;constraint:OnDelete:CASCADE" json:"users,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}
