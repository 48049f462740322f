package resources

import (
	_ "embed"
	"time"
)

//go:embed builtin/image-as-page.hbs
var imageAsPage string

// builtinSource is created once at package initialization and never mutated.
var builtinSource = mustBuiltin(imageAsPage)

// mustBuiltin panics on an empty asset: the process has no usable default
// template without it.
func mustBuiltin(content string) *Source {
	if content == "" {
		panic("resources: embedded template " + BuiltinName + " is empty")
	}
	return newTextSource(KindBuiltin, BuiltinName, &content, time.Time{})
}

// Builtin returns the embedded default template.
func Builtin() *Source {
	return builtinSource
}
