package services

import "errors"

var (
	// ErrNotFound covers absent records and records not owned by the
	// caller; cross-user lookups fail closed with this, never with a
	// "forbidden" that would reveal existence.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists signals a username/email uniqueness violation,
	// including ones detected by the storage layer during persist.
	ErrAlreadyExists = errors.New("already exists")
	// ErrOwnershipMismatch signals an attempt to associate a photo with an
	// album owned by a different user.
	ErrOwnershipMismatch = errors.New("photo does not belong to album owner")
	// ErrUploadFailed wraps storage provider write failures.
	ErrUploadFailed = errors.New("upload failed")
	// ErrPhotosRemain blocks account deletion while the user still owns
	// photos.
	ErrPhotosRemain = errors.New("user still owns photos")
)
