package repo

import (
	"time"

	"photoserver/models"

	"gorm.io/gorm"
)

type gormAlbums struct {
	db *gorm.DB
}

func NewAlbums(db *gorm.DB) Albums {
	return &gormAlbums{db: db}
}

func (r *gormAlbums) Create(album *models.Album) error {
	return r.db.Create(album).Error
}

func (r *gormAlbums) ByID(id string) (*models.Album, error) {
	var album models.Album
	err := r.db.First(&album, "id = ?", id).Error
	if err != nil {
		return nil, translateNotFound(err)
	}
	return &album, nil
}

func (r *gormAlbums) ByOwner(ownerID string) ([]models.Album, error) {
	var albums []models.Album
	err := r.db.Where("user_id = ?", ownerID).Order("created_at DESC").Find(&albums).Error
	return albums, err
}

func (r *gormAlbums) ByOwnerAndNameContains(ownerID, name string) ([]models.Album, error) {
	var albums []models.Album
	err := r.db.Where("user_id = ? AND name LIKE ?", ownerID, "%"+name+"%").
		Order("created_at DESC").
		Find(&albums).Error
	return albums, err
}

func (r *gormAlbums) Photos(albumID string) ([]models.Photo, error) {
	var photos []models.Photo
	err := r.db.Preload("Tags").Preload("Labels").
		Joins("join album_photos on album_photos.photo_id = photos.id").
		Where("album_photos.album_id = ?", albumID).
		Order("album_photos.created_at ASC").
		Find(&photos).Error
	return photos, err
}

func (r *gormAlbums) AddPhoto(albumID, photoID string) error {
	association := models.AlbumPhoto{
		AlbumID:   albumID,
		PhotoID:   photoID,
		CreatedAt: time.Now().Unix(),
	}
	return r.db.FirstOrCreate(&association, models.AlbumPhoto{AlbumID: albumID, PhotoID: photoID}).Error
}

func (r *gormAlbums) Delete(id string) error {
	return r.db.Delete(&models.Album{}, "id = ?", id).Error
}
