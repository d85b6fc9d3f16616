package storage

import (
	"io"
	"os"
	"path/filepath"
	"sync"
)

type DiskStorage struct {
	// BasePath is a directory writable by the current process
	BasePath  string
	dirs      map[string]bool
	dirsMutex sync.Mutex
}

func NewDiskStorage(basePath string) (*DiskStorage, error) {
	if err := os.MkdirAll(basePath, 0777); err != nil {
		return nil, err
	}
	return &DiskStorage{
		BasePath: basePath,
		dirs:     make(map[string]bool, 10),
	}, nil
}

func (s *DiskStorage) createDir(dir string) error {
	s.dirsMutex.Lock()
	defer s.dirsMutex.Unlock()

	if ok := s.dirs[dir]; ok {
		return nil
	}
	s.dirs[dir] = true
	return os.MkdirAll(dir, 0777)
}

func (s *DiskStorage) getFullPath(key string) string {
	return s.BasePath + "/" + key
}

func (s *DiskStorage) Put(key string, reader io.Reader, contentType string, size int64) error {
	fileName := s.getFullPath(key)
	if err := s.createDir(filepath.Dir(fileName)); err != nil {
		return err
	}
	file, err := os.Create(fileName)
	if err != nil {
		return err
	}
	_, err = io.Copy(file, reader)
	if closeErr := file.Close(); err == nil {
		err = closeErr
	}
	return err
}

// URL points back at the photo fetch endpoint; disk storage cannot issue
// externally fetchable URLs.
func (s *DiskStorage) URL(key string) (string, error) {
	return "/api/photos/fetch?key=" + key, nil
}

func (s *DiskStorage) Open(key string) (io.ReadCloser, error) {
	return os.Open(s.getFullPath(key))
}

func (s *DiskStorage) Delete(key string) error {
	return os.Remove(s.getFullPath(key))
}

func (s *DiskStorage) Presigned() bool {
	return false
}
