package services

import (
	"errors"
	"log"
	"time"

	"photoserver/models"
	"photoserver/repo"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const (
	registerAttempts = 5
	registerBackoff  = 200 * time.Millisecond
)

// UserService creates and authenticates users. Registration is safe under
// concurrent attempts: the pre-checks are advisory and the storage-level
// unique constraints are the final arbiter.
type UserService struct {
	users repo.Users
}

func NewUserService(users repo.Users) *UserService {
	return &UserService{users: users}
}

// Register creates a user with a fresh id and a bcrypt password hash.
// Transient persist errors are retried a bounded number of times with a
// short backoff; a uniqueness violation ends the loop immediately with
// ErrAlreadyExists.
func (s *UserService) Register(username, email, password string) (*models.User, error) {
	var lastErr error
	for attempt := 0; attempt < registerAttempts; attempt++ {
		if attempt > 0 {
			time.Sleep(registerBackoff)
		}
		user, err := s.registerOnce(username, email, password)
		if err == nil {
			return user, nil
		}
		if errors.Is(err, ErrAlreadyExists) {
			return nil, err
		}
		log.Printf("registration attempt %d for %q failed: %v", attempt+1, username, err)
		lastErr = err
	}
	return nil, lastErr
}

func (s *UserService) registerOnce(username, email, password string) (*models.User, error) {
	if taken, err := s.users.ExistsByUsername(username); err != nil {
		return nil, err
	} else if taken {
		return nil, ErrAlreadyExists
	}
	if taken, err := s.users.ExistsByEmail(email); err != nil {
		return nil, err
	} else if taken {
		return nil, ErrAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := models.User{
		ID:        uuid.NewString(),
		CreatedAt: time.Now(),
		Username:  username,
		Email:     email,
		Password:  string(hash),
	}
	if err := s.users.Create(&user); err != nil {
		// Two registrations raced past the pre-checks; the losing insert
		// hits the unique index
		if repo.IsUniqueViolation(err) {
			return nil, ErrAlreadyExists
		}
		return nil, err
	}
	return &user, nil
}

// Authenticate verifies the credentials and returns the user. It fails
// closed: a missing user and a wrong password are indistinguishable.
func (s *UserService) Authenticate(username, password string) (*models.User, error) {
	user, err := s.users.ByUsername(username)
	if err != nil {
		return nil, ErrNotFound
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, ErrNotFound
	}
	return user, nil
}

func (s *UserService) ByID(id string) (*models.User, error) {
	user, err := s.users.ByID(id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return user, nil
}

// Delete removes the user account. Deletion is refused while the user still
// owns photos; albums are removed by the cascading foreign key.
func (s *UserService) Delete(id string) error {
	if _, err := s.ByID(id); err != nil {
		return err
	}
	count, err := s.users.CountPhotos(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrPhotosRemain
	}
	return s.users.Delete(id)
}
