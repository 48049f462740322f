package resources

import "strings"

// Reserved names shared by every backend.
const (
	// BuiltinName is the logical name of the embedded fallback template.
	BuiltinName = "default - image as page"

	// UploadPrefix marks names served only from the upload store.
	UploadPrefix = "upload://"

	// TemplateSuffix is appended to upload keys and is the default template suffix.
	TemplateSuffix = ".hbs"

	// DefaultPrefix is the default location of templates inside a backend.
	DefaultPrefix = "/templates"
)

// Naming holds the prefix and suffix applied to generic template names.
// A Naming value is immutable; Resolver swaps whole values on Configure so
// the override directory and the archive always see the same normalization.
type Naming struct {
	Prefix string
	Suffix string
}

// DefaultNaming returns the naming used when nothing is configured.
func DefaultNaming() Naming {
	return Naming{Prefix: DefaultPrefix, Suffix: TemplateSuffix}
}

// Normalize maps a logical template name to the backend-relative path.
//
// Backslashes become slashes and a leading slash is dropped. A prefix or
// suffix the caller already included is not applied twice, so "invoice" and
// "templates/invoice.hbs" normalize to the same path under the default naming.
func (n Naming) Normalize(name string) string {
	bare := RawName(name)
	prefix := RawName(n.Prefix)
	if prefix != "" {
		dir := strings.TrimSuffix(prefix, "/") + "/"
		bare = strings.TrimPrefix(bare, dir)
	}
	if n.Suffix != "" {
		bare = strings.TrimSuffix(bare, n.Suffix)
	}

	composed := bare + n.Suffix
	if prefix != "" {
		composed = strings.TrimSuffix(prefix, "/") + "/" + composed
	}
	return strings.TrimPrefix(composed, "/")
}

// RawName normalizes path separators without applying prefix or suffix.
// Raw names address static resources such as fonts and images.
func RawName(name string) string {
	name = strings.ReplaceAll(name, "\\", "/")
	return strings.TrimLeft(name, "/")
}

// IsUploadName reports whether name addresses the upload store.
func IsUploadName(name string) bool {
	return strings.HasPrefix(name, UploadPrefix)
}

// UploadKey returns the store key for an uploaded template name.
func UploadKey(name string) string {
	return UploadPrefix + name + TemplateSuffix
}
