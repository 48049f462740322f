package resources

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"syscall"
)

// FileResolver reads resources from an override directory on disk.
// Every lookup reads the file again; nothing is cached.
type FileResolver struct {
	basePath string
}

// NewFileResolver creates a FileResolver rooted at basePath.
// Returns ErrInvalidBasePath if the path is not a valid, readable directory.
func NewFileResolver(basePath string) (*FileResolver, error) {
	if basePath == "" {
		return nil, fmt.Errorf("%w: empty path", ErrInvalidBasePath)
	}

	absPath, err := filepath.Abs(basePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBasePath, err)
	}

	// Containment checks compare resolved paths, so resolve the base too.
	if realPath, err := filepath.EvalSymlinks(absPath); err == nil {
		absPath = realPath
	}

	info, err := os.Stat(absPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: directory does not exist: %s", ErrInvalidBasePath, absPath)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidBasePath, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: not a directory: %s", ErrInvalidBasePath, absPath)
	}
	if _, err := os.ReadDir(absPath); err != nil {
		return nil, fmt.Errorf("%w: cannot read directory: %v", ErrInvalidBasePath, err)
	}

	return &FileResolver{basePath: absPath}, nil
}

// BasePath returns the resolved override directory.
func (f *FileResolver) BasePath() string { return f.basePath }

// Lookup reads the template at the normalized name.
// Returns ErrNotFound if the file does not exist, ErrIO for any other failure.
func (f *FileResolver) Lookup(name string) (*Source, error) {
	filePath, err := f.path(name)
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(filePath)
	if err != nil {
		return nil, f.classify(name, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %q is a directory", ErrIO, name)
	}

	data, err := os.ReadFile(filePath) // #nosec G304 -- path validated above
	if err != nil {
		return nil, f.classify(name, err)
	}
	content := string(data)
	return newTextSource(KindFile, name, &content, info.ModTime()), nil
}

// ReadRaw reads the bytes of the file at name with Lookup's error semantics.
func (f *FileResolver) ReadRaw(name string) ([]byte, error) {
	filePath, err := f.path(name)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(filePath) // #nosec G304 -- path validated above
	if err != nil {
		return nil, f.classify(name, err)
	}
	return data, nil
}

func (f *FileResolver) path(name string) (string, error) {
	if name == "" || strings.ContainsRune(name, 0) {
		return "", fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	filePath := filepath.Join(f.basePath, filepath.FromSlash(name))
	if err := f.verifyPathContainment(filePath); err != nil {
		return "", err
	}
	return filePath, nil
}

// classify separates "file absent", which allows fallback, from real failures.
// A path component that is a regular file (ENOTDIR) also means absent.
func (f *FileResolver) classify(name string, err error) error {
	if errors.Is(err, fs.ErrNotExist) || errors.Is(err, syscall.ENOTDIR) {
		return fmt.Errorf("%w: %q in %s", ErrNotFound, name, f.basePath)
	}
	return fmt.Errorf("%w: %v", ErrIO, err)
}

// verifyPathContainment ensures the resolved file path is within basePath,
// following symlinks so a link cannot point outside it.
func (f *FileResolver) verifyPathContainment(filePath string) error {
	absFilePath, err := filepath.Abs(filePath)
	if err != nil {
		return fmt.Errorf("%w: cannot resolve path", ErrPathTraversal)
	}

	// A missing file cannot be resolved; the prefix check still applies and
	// the read reports not-found afterwards.
	if realPath, err := filepath.EvalSymlinks(absFilePath); err == nil {
		absFilePath = realPath
	}

	if !strings.HasPrefix(absFilePath, f.basePath+string(filepath.Separator)) {
		return fmt.Errorf("%w: path escapes base directory", ErrPathTraversal)
	}
	return nil
}
