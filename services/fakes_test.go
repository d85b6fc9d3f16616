package services

import (
	"bytes"
	"errors"
	"io"
	"sync"
	"time"

	"photoserver/models"
	"photoserver/repo"

	"gorm.io/gorm"
)

// In-memory collaborators implementing the repository, storage and vision
// contracts the services are built against.

type fakeUsers struct {
	mu sync.Mutex
	// createErrs are returned by Create before the real insert happens,
	// first to last
	createErrs []error
	users      map[string]*models.User
	photoCount map[string]int64
}

func newFakeUsers() *fakeUsers {
	return &fakeUsers{
		users:      map[string]*models.User{},
		photoCount: map[string]int64{},
	}
}

func (f *fakeUsers) add(user models.User) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.users[user.ID] = &user
}

func (f *fakeUsers) ByID(id string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	user, ok := f.users[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	copied := *user
	return &copied, nil
}

func (f *fakeUsers) ByUsername(username string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, user := range f.users {
		if user.Username == username {
			copied := *user
			return &copied, nil
		}
	}
	return nil, repo.ErrNotFound
}

func (f *fakeUsers) ExistsByUsername(username string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, user := range f.users {
		if user.Username == username {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeUsers) ExistsByEmail(email string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, user := range f.users {
		if user.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeUsers) Create(user *models.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.createErrs) > 0 {
		err := f.createErrs[0]
		f.createErrs = f.createErrs[1:]
		if err != nil {
			return err
		}
	}
	// The unique indexes are the final arbiter
	for _, existing := range f.users {
		if existing.Username == user.Username || existing.Email == user.Email {
			return gorm.ErrDuplicatedKey
		}
	}
	copied := *user
	f.users[user.ID] = &copied
	return nil
}

func (f *fakeUsers) Delete(id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.users, id)
	return nil
}

func (f *fakeUsers) CountPhotos(id string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.photoCount[id], nil
}

func (f *fakeUsers) remainingCreateErrs() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.createErrs)
}

func (f *fakeUsers) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.users)
}

type fakePhotos struct {
	mu     sync.Mutex
	photos map[string]*models.Photo
}

func newFakePhotos() *fakePhotos {
	return &fakePhotos{photos: map[string]*models.Photo{}}
}

func (f *fakePhotos) Create(photo *models.Photo) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	copied := *photo
	f.photos[photo.ID] = &copied
	return nil
}

func (f *fakePhotos) ByID(id string) (*models.Photo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	photo, ok := f.photos[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	copied := *photo
	return &copied, nil
}

func (f *fakePhotos) ByFileName(fileName string) (*models.Photo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, photo := range f.photos {
		if photo.FileName == fileName {
			copied := *photo
			return &copied, nil
		}
	}
	return nil, repo.ErrNotFound
}

func (f *fakePhotos) ByOwner(ownerID string, page repo.Page) ([]models.Photo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	result := []models.Photo{}
	for _, photo := range f.photos {
		if photo.UserID == ownerID {
			result = append(result, *photo)
		}
	}
	return result, nil
}

func (f *fakePhotos) ByOwnerAndTag(ownerID, tag string) ([]models.Photo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	result := []models.Photo{}
	for _, photo := range f.photos {
		if photo.UserID != ownerID {
			continue
		}
		for _, t := range photo.Tags {
			if t.Tag == tag {
				result = append(result, *photo)
				break
			}
		}
	}
	return result, nil
}

func (f *fakePhotos) ByOwnerAndLabel(ownerID, label string, minConfidence float64) ([]models.Photo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	result := []models.Photo{}
	for _, photo := range f.photos {
		if photo.UserID != ownerID {
			continue
		}
		for _, l := range photo.Labels {
			if l.Name == label && l.Confidence >= minConfidence {
				result = append(result, *photo)
				break
			}
		}
	}
	return result, nil
}

func (f *fakePhotos) ByTag(tag string) ([]models.Photo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	result := []models.Photo{}
	for _, photo := range f.photos {
		for _, t := range photo.Tags {
			if t.Tag == tag {
				result = append(result, *photo)
				break
			}
		}
	}
	return result, nil
}

func (f *fakePhotos) ByContentType(contentType string) ([]models.Photo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	result := []models.Photo{}
	for _, photo := range f.photos {
		if photo.ContentType == contentType {
			result = append(result, *photo)
		}
	}
	return result, nil
}

func (f *fakePhotos) AddTag(photoID, tag string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	photo, ok := f.photos[photoID]
	if !ok {
		return repo.ErrNotFound
	}
	photo.Tags = append(photo.Tags, models.PhotoTag{PhotoID: photoID, Tag: tag})
	return nil
}

func (f *fakePhotos) Delete(id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.photos, id)
	return nil
}

func (f *fakePhotos) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.photos)
}

type fakeAlbums struct {
	mu      sync.Mutex
	albums  map[string]*models.Album
	members map[string][]string // album id -> photo ids
}

func newFakeAlbums() *fakeAlbums {
	return &fakeAlbums{
		albums:  map[string]*models.Album{},
		members: map[string][]string{},
	}
}

func (f *fakeAlbums) Create(album *models.Album) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	copied := *album
	f.albums[album.ID] = &copied
	return nil
}

func (f *fakeAlbums) ByID(id string) (*models.Album, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	album, ok := f.albums[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	copied := *album
	return &copied, nil
}

func (f *fakeAlbums) ByOwner(ownerID string) ([]models.Album, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	result := []models.Album{}
	for _, album := range f.albums {
		if album.UserID == ownerID {
			result = append(result, *album)
		}
	}
	return result, nil
}

func (f *fakeAlbums) ByOwnerAndNameContains(ownerID, name string) ([]models.Album, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	result := []models.Album{}
	for _, album := range f.albums {
		if album.UserID == ownerID && bytes.Contains([]byte(album.Name), []byte(name)) {
			result = append(result, *album)
		}
	}
	return result, nil
}

func (f *fakeAlbums) Photos(albumID string) ([]models.Photo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	result := []models.Photo{}
	for _, photoID := range f.members[albumID] {
		result = append(result, models.Photo{ID: photoID})
	}
	return result, nil
}

func (f *fakeAlbums) AddPhoto(albumID, photoID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.members[albumID] {
		if existing == photoID {
			return nil
		}
	}
	f.members[albumID] = append(f.members[albumID], photoID)
	return nil
}

func (f *fakeAlbums) Delete(id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.albums, id)
	delete(f.members, id)
	return nil
}

func (f *fakeAlbums) memberCount(albumID string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.members[albumID])
}

type fakeStorage struct {
	mu      sync.Mutex
	putErr  error
	objects map[string][]byte
	types   map[string]string
	deleted []string
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{
		objects: map[string][]byte{},
		types:   map[string]string{},
	}
}

func (f *fakeStorage) Put(key string, reader io.Reader, contentType string, size int64) error {
	if f.putErr != nil {
		return f.putErr
	}
	content, err := io.ReadAll(reader)
	if err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.objects[key] = content
	f.types[key] = contentType
	return nil
}

func (f *fakeStorage) URL(key string) (string, error) {
	return "https://photos.test/" + key, nil
}

func (f *fakeStorage) Open(key string) (io.ReadCloser, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	content, ok := f.objects[key]
	if !ok {
		return nil, errors.New("no such object")
	}
	return io.NopCloser(bytes.NewReader(content)), nil
}

func (f *fakeStorage) Delete(key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.objects, key)
	f.deleted = append(f.deleted, key)
	return nil
}

func (f *fakeStorage) Presigned() bool {
	return false
}

func (f *fakeStorage) objectCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.objects)
}

type fakeVision struct {
	mu     sync.Mutex
	labels map[string]float64
	err    error
	calls  int
}

func (f *fakeVision) DetectLabels(storageKey string, maxLabels int64, minConfidence float64) (map[string]float64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	if f.labels == nil {
		return map[string]float64{}, nil
	}
	return f.labels, nil
}

func (f *fakeVision) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func defaultPage() repo.Page {
	return repo.Page{}
}

func seedUser(users *fakeUsers, id, username string) models.User {
	user := models.User{
		ID:        id,
		CreatedAt: time.Now(),
		Username:  username,
		Email:     username + "@example.com",
	}
	users.add(user)
	return user
}
