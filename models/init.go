package models

import (
	"photoserver/db"
)

func Init() {
	db.Instance.AutoMigrate(&User{})
	db.Instance.AutoMigrate(&Photo{})
	db.Instance.AutoMigrate(&PhotoTag{})
	db.Instance.AutoMigrate(&PhotoLabel{})
	db.Instance.AutoMigrate(&Album{})
	db.Instance.AutoMigrate(&AlbumPhoto{})
}
