package models

// PhotoLabel is a machine-detected category with its confidence in [0,100].
// The composite key keeps at most one entry per label name.
type PhotoLabel struct {
	PhotoID    string  `gorm:"primaryKey;type:varchar(36)" json:"-"`
	Name       string  `gorm:"primaryKey;type:varchar(250)" json:"name"`
	Confidence float64 `json:"confidence"`
}
