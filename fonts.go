package ukase

import (
	"path"
	"strings"
)

// fontExtensions are the font formats a PDF renderer can embed.
var fontExtensions = map[string]bool{
	".ttf": true,
	".otf": true,
	".afm": true,
	".pfb": true,
}

// IsFont reports whether name has a font file extension (case-insensitive).
func IsFont(name string) bool {
	return fontExtensions[strings.ToLower(path.Ext(name))]
}

// FontNames lists the fonts packaged in the loader's archive.
func FontNames(l ResourceLoader) []string {
	return l.ListResources(IsFont)
}

// DefaultFont returns the first packaged font that is neither bold nor
// italic, or "" if there is none.
func DefaultFont(l ResourceLoader) string {
	for _, name := range FontNames(l) {
		base := path.Base(name)
		if !strings.Contains(base, "Bold") && !strings.Contains(base, "Italic") {
			return name
		}
	}
	return ""
}
