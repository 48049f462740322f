package resources

import "errors"

// Sentinel errors for resource resolution.
var (
	// ErrNotFound indicates a backend has no resource under the requested name.
	// It is the only error that lets resolution continue with the next backend.
	ErrNotFound = errors.New("resource not found")

	// ErrConfiguration indicates the name cannot be served because no backend
	// is configured for it, or the archive could not be opened or read.
	ErrConfiguration = errors.New("resource configuration error")

	// ErrIO indicates an unexpected I/O failure other than "file absent".
	ErrIO = errors.New("resource I/O failure")

	// ErrInvalidBasePath indicates the configured override directory is not a
	// readable directory.
	ErrInvalidBasePath = errors.New("invalid base path")

	// ErrPathTraversal indicates a name that resolves outside the override directory.
	ErrPathTraversal = errors.New("path traversal detected")

	// ErrInvalidName indicates an empty resource name or one containing a null byte.
	ErrInvalidName = errors.New("invalid resource name")
)
