package repo

import (
	"photoserver/models"

	"gorm.io/gorm"
)

type gormUsers struct {
	db *gorm.DB
}

func NewUsers(db *gorm.DB) Users {
	return &gormUsers{db: db}
}

func (r *gormUsers) ByID(id string) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "id = ?", id).Error
	if err != nil {
		return nil, translateNotFound(err)
	}
	return &user, nil
}

func (r *gormUsers) ByUsername(username string) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "username = ?", username).Error
	if err != nil {
		return nil, translateNotFound(err)
	}
	return &user, nil
}

func (r *gormUsers) ExistsByUsername(username string) (bool, error) {
	var count int64
	err := r.db.Model(&models.User{}).Where("username = ?", username).Count(&count).Error
	return count > 0, err
}

func (r *gormUsers) ExistsByEmail(email string) (bool, error) {
	var count int64
	err := r.db.Model(&models.User{}).Where("email = ?", email).Count(&count).Error
	return count > 0, err
}

func (r *gormUsers) Create(user *models.User) error {
	return r.db.Create(user).Error
}

func (r *gormUsers) Delete(id string) error {
	return r.db.Delete(&models.User{}, "id = ?", id).Error
}

func (r *gormUsers) CountPhotos(id string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Photo{}).Where("user_id = ?", id).Count(&count).Error
	return count, err
}
