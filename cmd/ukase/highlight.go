package main

import (
	"fmt"
	"io"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// highlight writes content with terminal colors. The lexer is picked from
// filename, falling back to Handlebars for template sources.
func highlight(w io.Writer, filename, content, style string) error {
	lexer := lexers.Match(filename)
	if lexer == nil {
		lexer = lexers.Get("handlebars")
	}
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	iterator, err := lexer.Tokenise(nil, content)
	if err != nil {
		return fmt.Errorf("tokenising %s: %w", filename, err)
	}
	return formatters.TTY256.Format(w, styles.Get(style), iterator)
}
