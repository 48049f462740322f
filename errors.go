package ukase

import "errors"

// Sentinel errors for resource resolution.
var (
	// ErrNotFound indicates no configured backend has the requested resource.
	ErrNotFound = errors.New("resource not found")

	// ErrConfiguration indicates a deployment mistake: no backend can serve the
	// name, or the archive cannot be opened or read.
	ErrConfiguration = errors.New("resource configuration error")

	// ErrIO indicates an unexpected I/O failure in the override directory.
	ErrIO = errors.New("resource I/O failure")

	// ErrInvalidPath indicates an invalid override directory, a name escaping
	// it, or a malformed resource name.
	ErrInvalidPath = errors.New("invalid resource path")
)
