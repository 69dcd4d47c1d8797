package secure

import "errors"

// Sentinel errors returned by the secure package.
var (
	// ErrCleared is returned when reading a String after Clear.
	ErrCleared = errors.New("secure: string has been cleared")

	// ErrInvalidKeyLength is returned when an export key is not 32 bytes.
	ErrInvalidKeyLength = errors.New("secure: key must be 32 bytes")

	// ErrInvalidPayload is returned when an exported payload is malformed.
	ErrInvalidPayload = errors.New("secure: invalid payload")

	// ErrDecryptFailed is returned when a payload fails authentication,
	// usually because the key is wrong or the payload was altered.
	ErrDecryptFailed = errors.New("secure: could not decrypt payload")
)
