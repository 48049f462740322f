// Package resources resolves templates and static resources by name.
//
// # Resolver Architecture
//
// The package implements a layered lookup:
//
//	Resolver
//	    │
//	    ├── Builtin()      - the embedded "default - image as page" template
//	    ├── UploadStore    - in-memory uploads under the "upload://" prefix
//	    ├── FileResolver   - optional override directory on disk
//	    └── Archive        - optional zip/jar or tar(.gz) bundle, indexed once
//
// Resolve routes by the shape of the name. The builtin name always resolves.
// Upload names are answered by the UploadStore and never fall back. Any other
// name is normalized with the configured prefix and suffix and tried against
// the override directory, then the archive.
//
// Only ErrNotFound moves resolution to the next backend. ErrIO from the
// override directory is returned immediately, and a Resolver with neither
// a directory nor an archive reports ErrConfiguration.
//
// # Uploads
//
// The UploadStore is unbounded unless UploadLimits says otherwise. Uploads
// live in memory only and are lost on restart.
//
// # Security
//
// FileResolver resolves symlinks and verifies every path stays within its
// base directory.
package resources
