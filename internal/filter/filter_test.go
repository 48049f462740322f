package filter

import (
	"errors"
	"strings"
	"testing"
)

func TestCompile_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		expression string
	}{
		{"syntax error", "ext == "},
		{"not boolean", `name + "x"`},
		{"unknown variable", "size > 10"},
		{"too long", strings.Repeat("a", MaxExpressionLength+1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Compile(tt.expression)
			if !errors.Is(err, ErrInvalidExpression) {
				t.Errorf("Compile(%q) error = %v, want ErrInvalidExpression", tt.expression, err)
			}
		})
	}
}

func TestCompile_Empty(t *testing.T) {
	t.Parallel()

	f, err := Compile("   ")
	if err != nil {
		t.Fatalf("Compile() error = %v", err)
	}
	if f != nil {
		t.Fatal("Compile(blank) should return a nil Filter")
	}
	if f.Predicate() != nil {
		t.Error("nil Filter should have a nil predicate")
	}
	if !f.Keep("anything") {
		t.Error("nil Filter should keep every name")
	}
	if f.String() != "" {
		t.Errorf("String() = %q, want empty", f.String())
	}
}

func TestFilter_Match(t *testing.T) {
	t.Parallel()

	tests := []struct {
		expression string
		input      string
		want       bool
	}{
		{`ext == ".ttf"`, "fonts/Arial.TTF", true},
		{`ext == ".ttf"`, "templates/invoice.hbs", false},
		{`dir == "fonts"`, "fonts/Arial.ttf", true},
		{`dir == ""`, "readme.txt", true},
		{`base == "readme.txt"`, "readme.txt", true},
		{`name startsWith "templates/"`, "templates/invoice.hbs", true},
		{`!(base contains "Bold")`, "fonts/Arial-Bold.ttf", false},
		{`glob("*.css", base)`, "static/site.css", true},
		{`glob("*.css", base)`, "static/site.js", false},
		{`base matches "^Dejavu"`, "fonts/DejaVu.ttf", false},
	}

	for _, tt := range tests {
		t.Run(tt.expression+"/"+tt.input, func(t *testing.T) {
			t.Parallel()

			f, err := Compile(tt.expression)
			if err != nil {
				t.Fatalf("Compile(%q) error = %v", tt.expression, err)
			}
			got, err := f.Match(tt.input)
			if err != nil {
				t.Fatalf("Match(%q) error = %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("Match(%q) = %v, want %v", tt.input, got, tt.want)
			}
			if f.Keep(tt.input) != tt.want {
				t.Errorf("Keep(%q) disagrees with Match", tt.input)
			}
		})
	}
}

func TestFilter_RuntimeErrorRejects(t *testing.T) {
	t.Parallel()

	f, err := Compile(`glob("[", base)`)
	if err != nil {
		t.Fatalf("Compile() error = %v", err)
	}
	if _, err := f.Match("a.txt"); err == nil {
		t.Error("Match() should report the bad pattern")
	}
	if f.Keep("a.txt") {
		t.Error("Keep() should reject names that fail to evaluate")
	}
}
