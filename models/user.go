package models

import (
	"time"
)

type User struct {
	ID        string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"-"`
	Username  string    `gorm:"type:varchar(100);index:uniq_username,unique;not null" json:"username"`
	Email     string    `gorm:"type:varchar(150);index:uniq_email,unique;not null" json:"email"`
	Password  string    `gorm:"type:varchar(128)" json:"-"` // bcrypt hash, never the plain text
}
