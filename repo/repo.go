package repo

import (
	"errors"
	"strings"

	"photoserver/models"

	"gorm.io/gorm"
)

// ErrNotFound is returned by all ByX lookups when no row matches.
var ErrNotFound = errors.New("record not found")

// Users persists user records. The unique indexes on username and email are
// the final arbiter for concurrent registrations; Create surfaces violations
// so callers can classify them with IsUniqueViolation.
type Users interface {
	ByID(id string) (*models.User, error)
	ByUsername(username string) (*models.User, error)
	ExistsByUsername(username string) (bool, error)
	ExistsByEmail(email string) (bool, error)
	Create(user *models.User) error
	Delete(id string) error
	CountPhotos(id string) (int64, error)
}

// Photos persists photo records together with their tags and labels.
type Photos interface {
	Create(photo *models.Photo) error
	ByID(id string) (*models.Photo, error)
	ByFileName(fileName string) (*models.Photo, error)
	ByOwner(ownerID string, page Page) ([]models.Photo, error)
	ByOwnerAndTag(ownerID, tag string) ([]models.Photo, error)
	ByOwnerAndLabel(ownerID, label string, minConfidence float64) ([]models.Photo, error)
	ByTag(tag string) ([]models.Photo, error)
	ByContentType(contentType string) ([]models.Photo, error)
	AddTag(photoID, tag string) error
	Delete(id string) error
}

// Albums persists album records and their photo associations.
type Albums interface {
	Create(album *models.Album) error
	ByID(id string) (*models.Album, error)
	ByOwner(ownerID string) ([]models.Album, error)
	ByOwnerAndNameContains(ownerID, name string) ([]models.Album, error)
	Photos(albumID string) ([]models.Photo, error)
	AddPhoto(albumID, photoID string) error
	Delete(id string) error
}

// Page describes a paginated, sorted listing request.
type Page struct {
	Number int
	Size   int
	SortBy string
	Desc   bool
}

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

var sortColumns = map[string]string{
	"uploaded_at":  "uploaded_at",
	"size":         "size",
	"file_name":    "file_name",
	"content_type": "content_type",
}

// Normalize clamps page/size and falls back to uploaded_at DESC for
// unknown sort fields.
func (p Page) Normalize() Page {
	if p.Number < 0 {
		p.Number = 0
	}
	if p.Size <= 0 {
		p.Size = DefaultPageSize
	}
	if p.Size > MaxPageSize {
		p.Size = MaxPageSize
	}
	column, ok := sortColumns[p.SortBy]
	if !ok {
		column = "uploaded_at"
		p.Desc = true
	}
	p.SortBy = column
	return p
}

func (p Page) order() string {
	direction := "ASC"
	if p.Desc {
		direction = "DESC"
	}
	return p.SortBy + " " + direction
}

// IsUniqueViolation reports whether err is a storage-level unique constraint
// violation. GORM translates these to ErrDuplicatedKey where the driver
// supports it; the message checks cover MySQL and SQLite otherwise.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "Duplicate entry") ||
		strings.Contains(msg, "UNIQUE constraint failed")
}

func translateNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
