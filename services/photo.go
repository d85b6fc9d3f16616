package services

import (
	"errors"
	"fmt"
	"io"
	"log"
	"time"

	"photoserver/models"
	"photoserver/repo"
	"photoserver/storage"
	"photoserver/utils"
	"photoserver/vision"

	"github.com/google/uuid"
)

const (
	// Label detection parameters passed to the vision provider on ingest.
	maxLabelsPerPhoto  = 10
	minLabelConfidence = 75.0
)

// PhotoService runs the ingestion pipeline and owner-scoped photo queries.
type PhotoService struct {
	users  repo.Users
	photos repo.Photos
	store  storage.Provider
	vision vision.Provider

	// Label detection parameters, overridable from configuration
	MaxLabels          int64
	MinLabelConfidence float64
}

func NewPhotoService(users repo.Users, photos repo.Photos, store storage.Provider, detector vision.Provider) *PhotoService {
	return &PhotoService{
		users:              users,
		photos:             photos,
		store:              store,
		vision:             detector,
		MaxLabels:          maxLabelsPerPhoto,
		MinLabelConfidence: minLabelConfidence,
	}
}

// Ingest stores the uploaded file, analyzes it and persists the photo
// record. Analysis is best-effort: a vision provider failure is logged and
// the photo is saved with no labels. A storage failure aborts the pipeline
// before anything is persisted.
func (s *PhotoService) Ingest(ownerID string, reader io.Reader, originalName, contentType string, size int64) (*models.Photo, error) {
	if _, err := s.users.ByID(ownerID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	// A random prefix keeps keys globally unique even for repeated names
	key := uuid.NewString() + "_" + utils.SanitizeFileName(originalName)

	if err := s.store.Put(key, reader, contentType, size); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}

	labels, err := s.vision.DetectLabels(key, s.MaxLabels, s.MinLabelConfidence)
	if err != nil {
		log.Printf("label detection failed for %s: %v", key, err)
		labels = map[string]float64{}
	}

	url, err := s.store.URL(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}

	photo := models.Photo{
		ID:          uuid.NewString(),
		UserID:      ownerID,
		FileName:    key,
		ContentType: contentType,
		Size:        size,
		URL:         url,
		UploadedAt:  time.Now(),
		Tags:        []models.PhotoTag{},
	}
	for name, confidence := range labels {
		photo.Labels = append(photo.Labels, models.PhotoLabel{
			PhotoID:    photo.ID,
			Name:       name,
			Confidence: confidence,
		})
	}
	if err := s.photos.Create(&photo); err != nil {
		return nil, err
	}
	return &photo, nil
}

// GetOwned returns the photo only when it exists and belongs to ownerID.
func (s *PhotoService) GetOwned(ownerID, photoID string) (*models.Photo, error) {
	photo, err := s.photos.ByID(photoID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if photo.UserID != ownerID {
		return nil, ErrNotFound
	}
	return photo, nil
}

// ListOwned returns a page of the owner's photos, by default newest first.
func (s *PhotoService) ListOwned(ownerID string, page repo.Page) ([]models.Photo, error) {
	if _, err := s.users.ByID(ownerID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return s.photos.ByOwner(ownerID, page)
}

// AddTag appends the tag to the owner's photo and returns the updated
// record. Duplicate tags are allowed.
func (s *PhotoService) AddTag(ownerID, photoID, tag string) (*models.Photo, error) {
	if _, err := s.GetOwned(ownerID, photoID); err != nil {
		return nil, err
	}
	if err := s.photos.AddTag(photoID, tag); err != nil {
		return nil, err
	}
	return s.photos.ByID(photoID)
}

// FindByTag returns the owner's photos carrying the exact tag.
func (s *PhotoService) FindByTag(ownerID, tag string) ([]models.Photo, error) {
	return s.photos.ByOwnerAndTag(ownerID, tag)
}

// FindByLabel returns the owner's photos with the label at or above
// minConfidence.
func (s *PhotoService) FindByLabel(ownerID, label string, minConfidence float64) ([]models.Photo, error) {
	return s.photos.ByOwnerAndLabel(ownerID, label, minConfidence)
}

// Delete removes the owner's photo record and its stored content. Blob
// removal is best-effort; the record is deleted regardless.
func (s *PhotoService) Delete(ownerID, photoID string) error {
	photo, err := s.GetOwned(ownerID, photoID)
	if err != nil {
		return err
	}
	if err := s.store.Delete(photo.FileName); err != nil {
		log.Printf("photo %s: blob delete error: %v", photo.ID, err)
	}
	return s.photos.Delete(photo.ID)
}

// OpenOwned returns the stored content of the owner's photo, looked up by
// storage key.
func (s *PhotoService) OpenOwned(ownerID, key string) (*models.Photo, io.ReadCloser, error) {
	photo, err := s.photos.ByFileName(key)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, nil, ErrNotFound
		}
		return nil, nil, err
	}
	if photo.UserID != ownerID {
		return nil, nil, ErrNotFound
	}
	content, err := s.store.Open(photo.FileName)
	if err != nil {
		return nil, nil, err
	}
	return photo, content, nil
}
