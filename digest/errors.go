package digest

import "errors"

// Sentinel errors returned by the digest package.
var (
	// ErrUnknownAlgorithm is returned when an algorithm name is not registered.
	ErrUnknownAlgorithm = errors.New("digest: unknown algorithm")

	// ErrEmptyName is returned when registering an algorithm without a name.
	ErrEmptyName = errors.New("digest: algorithm name must not be empty")

	// ErrNilFactory is returned when registering a nil constructor.
	ErrNilFactory = errors.New("digest: hash constructor must not be nil")

	// ErrInvalidDigest is returned by Verify when the expected digest is not
	// valid hex.
	ErrInvalidDigest = errors.New("digest: expected digest is not valid hex")
)
