package models

// PhotoTag is a user-assigned free-text marker. The surrogate key allows
// the same tag to appear on a photo more than once.
type PhotoTag struct {
	ID      uint64 `gorm:"primaryKey" json:"-"`
	PhotoID string `gorm:"type:varchar(36);not null;index:photo_tag,priority:1" json:"-"`
	Tag     string `gorm:"type:varchar(250);not null;index:photo_tag,priority:2" json:"tag"`
}
