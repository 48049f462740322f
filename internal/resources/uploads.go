package resources

import (
	"sort"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// Upload is a resource registered at runtime. A nil Content is a tombstone:
// the key stays registered but serves no bytes.
type Upload struct {
	Name       string
	Content    *string
	UploadedAt time.Time
}

// UploadLimits bounds the upload store. The zero value means unbounded with
// no expiry, which is the default: uploads accumulate for the life of the
// process unless a limit is configured.
//
// A TTL above zero starts a background cleanup goroutine inside the LRU that
// lives until the process exits; Close does not stop it. Code that creates
// many short-lived stores should leave TTL at zero.
type UploadLimits struct {
	MaxEntries int           // 0 = unlimited
	TTL        time.Duration // 0 = never expire
}

// UploadStore is a concurrency-safe map from upload key to Upload.
// Writes are last-write-wins. Stored values are never mutated, so a reader
// sees either the old or the new upload, never a mix.
type UploadStore struct {
	entries *expirable.LRU[string, *Upload]
	now     func() time.Time
}

// NewUploadStore creates a store with the given limits.
func NewUploadStore(limits UploadLimits) *UploadStore {
	size := limits.MaxEntries
	if size < 0 {
		size = 0
	}
	return &UploadStore{
		entries: expirable.NewLRU[string, *Upload](size, nil, limits.TTL),
		now:     time.Now,
	}
}

// Put stores content under UploadKey(name), replacing any earlier upload.
// A nil content records a tombstone.
func (s *UploadStore) Put(name string, content *string) {
	var stored *string
	if content != nil {
		c := *content
		stored = &c
	}
	s.entries.Add(UploadKey(name), &Upload{
		Name:       name,
		Content:    stored,
		UploadedAt: s.now(),
	})
}

// Get returns the upload stored under key.
func (s *UploadStore) Get(key string) (Upload, bool) {
	u, ok := s.entries.Get(key)
	if !ok {
		return Upload{}, false
	}
	return *u, true
}

// Contains reports whether key was registered, tombstoned or not.
func (s *UploadStore) Contains(key string) bool {
	return s.entries.Contains(key)
}

// Len returns the number of registered keys.
func (s *UploadStore) Len() int {
	return s.entries.Len()
}

// Keys returns the registered keys, sorted.
func (s *UploadStore) Keys() []string {
	keys := s.entries.Keys()
	sort.Strings(keys)
	return keys
}

// Source wraps an upload as a template source.
func (u Upload) Source() *Source {
	return newTextSource(KindUploaded, u.Name, u.Content, u.UploadedAt)
}
