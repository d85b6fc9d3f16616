package models

// AlbumPhoto is the explicit Album<->Photo association record.
type AlbumPhoto struct {
	CreatedAt int64
	AlbumID   string `gorm:"primaryKey;type:varchar(36)"`
	Album     Album  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	PhotoID   string `gorm:"primaryKey;type:varchar(36)"`
	Photo     Photo  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}
