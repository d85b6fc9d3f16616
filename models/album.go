package models

import (
	"time"
)

type Album struct {
	ID          string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	UserID      string    `gorm:"type:varchar(36);not null;index:user_album_created,priority:1" json:"owner"`
	User        User      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	Name        string    `gorm:"type:varchar(300);not null" json:"name"`
	Description string    `gorm:"type:varchar(1000)" json:"description"`
	CreatedAt   time.Time `gorm:"index:user_album_created,priority:2" json:"created_at"`
}
