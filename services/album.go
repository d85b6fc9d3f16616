package services

import (
	"errors"
	"time"

	"photoserver/models"
	"photoserver/repo"

	"github.com/google/uuid"
)

// AlbumService orchestrates album creation and photo membership with
// ownership checks.
type AlbumService struct {
	users  repo.Users
	photos repo.Photos
	albums repo.Albums
}

func NewAlbumService(users repo.Users, photos repo.Photos, albums repo.Albums) *AlbumService {
	return &AlbumService{
		users:  users,
		photos: photos,
		albums: albums,
	}
}

func (s *AlbumService) Create(ownerID, name, description string) (*models.Album, error) {
	if _, err := s.users.ByID(ownerID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	album := models.Album{
		ID:          uuid.NewString(),
		UserID:      ownerID,
		Name:        name,
		Description: description,
		CreatedAt:   time.Now(),
	}
	if err := s.albums.Create(&album); err != nil {
		return nil, err
	}
	return &album, nil
}

// AddPhoto associates the photo with the album. Both must exist and share
// the same owner; on a mismatch the album is left untouched.
func (s *AlbumService) AddPhoto(albumID, photoID string) (*models.Album, error) {
	album, err := s.albums.ByID(albumID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	photo, err := s.photos.ByID(photoID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if album.UserID != photo.UserID {
		return nil, ErrOwnershipMismatch
	}
	if err := s.albums.AddPhoto(albumID, photoID); err != nil {
		return nil, err
	}
	return album, nil
}

func (s *AlbumService) ListForUser(ownerID string) ([]models.Album, error) {
	if _, err := s.users.ByID(ownerID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return s.albums.ByOwner(ownerID)
}

func (s *AlbumService) Search(ownerID, name string) ([]models.Album, error) {
	return s.albums.ByOwnerAndNameContains(ownerID, name)
}

func (s *AlbumService) Get(albumID string) (*models.Album, error) {
	album, err := s.albums.ByID(albumID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return album, nil
}

// Photos lists the album's photo contents, scoped to the album owner.
func (s *AlbumService) Photos(ownerID, albumID string) ([]models.Photo, error) {
	album, err := s.Get(albumID)
	if err != nil {
		return nil, err
	}
	if album.UserID != ownerID {
		return nil, ErrNotFound
	}
	return s.albums.Photos(albumID)
}
