package repo

import (
	"photoserver/models"

	"gorm.io/gorm"
)

type gormPhotos struct {
	db *gorm.DB
}

func NewPhotos(db *gorm.DB) Photos {
	return &gormPhotos{db: db}
}

func (r *gormPhotos) Create(photo *models.Photo) error {
	return r.db.Create(photo).Error
}

func (r *gormPhotos) ByID(id string) (*models.Photo, error) {
	var photo models.Photo
	err := r.db.Preload("Tags").Preload("Labels").First(&photo, "id = ?", id).Error
	if err != nil {
		return nil, translateNotFound(err)
	}
	return &photo, nil
}

func (r *gormPhotos) ByFileName(fileName string) (*models.Photo, error) {
	var photo models.Photo
	err := r.db.Preload("Tags").Preload("Labels").First(&photo, "file_name = ?", fileName).Error
	if err != nil {
		return nil, translateNotFound(err)
	}
	return &photo, nil
}

func (r *gormPhotos) ByOwner(ownerID string, page Page) ([]models.Photo, error) {
	page = page.Normalize()
	var photos []models.Photo
	err := r.db.Preload("Tags").Preload("Labels").
		Where("user_id = ?", ownerID).
		Order(page.order()).
		Offset(page.Number * page.Size).
		Limit(page.Size).
		Find(&photos).Error
	return photos, err
}

func (r *gormPhotos) ByOwnerAndTag(ownerID, tag string) ([]models.Photo, error) {
	var photos []models.Photo
	err := r.db.Preload("Tags").Preload("Labels").
		Joins("join photo_tags on photo_tags.photo_id = photos.id").
		Where("photos.user_id = ? AND photo_tags.tag = ?", ownerID, tag).
		Group("photos.id").
		Find(&photos).Error
	return photos, err
}

func (r *gormPhotos) ByOwnerAndLabel(ownerID, label string, minConfidence float64) ([]models.Photo, error) {
	var photos []models.Photo
	err := r.db.Preload("Tags").Preload("Labels").
		Joins("join photo_labels on photo_labels.photo_id = photos.id").
		Where("photos.user_id = ? AND photo_labels.name = ? AND photo_labels.confidence >= ?",
			ownerID, label, minConfidence).
		Find(&photos).Error
	return photos, err
}

func (r *gormPhotos) ByTag(tag string) ([]models.Photo, error) {
	var photos []models.Photo
	err := r.db.Preload("Tags").Preload("Labels").
		Joins("join photo_tags on photo_tags.photo_id = photos.id").
		Where("photo_tags.tag = ?", tag).
		Group("photos.id").
		Find(&photos).Error
	return photos, err
}

func (r *gormPhotos) ByContentType(contentType string) ([]models.Photo, error) {
	var photos []models.Photo
	err := r.db.Preload("Tags").Preload("Labels").
		Where("content_type = ?", contentType).
		Find(&photos).Error
	return photos, err
}

func (r *gormPhotos) AddTag(photoID, tag string) error {
	return r.db.Create(&models.PhotoTag{PhotoID: photoID, Tag: tag}).Error
}

func (r *gormPhotos) Delete(id string) error {
	return r.db.Delete(&models.Photo{}, "id = ?", id).Error
}
