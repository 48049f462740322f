// Package filter compiles boolean expressions over resource names.
//
// Expressions are written in the expr language and see these variables:
//
//	name  full entry name, e.g. "fonts/DejaVuSans-Bold.ttf"
//	base  last path element, e.g. "DejaVuSans-Bold.ttf"
//	dir   parent directory, e.g. "fonts"
//	ext   lower-case extension with dot, e.g. ".ttf"
//
// plus glob(pattern, s) for shell-style matching. Examples:
//
//	ext == ".ttf" && !(base contains "Bold")
//	dir startsWith "templates" || glob("*.css", base)
package filter

import (
	"errors"
	"fmt"
	"path"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// ErrInvalidExpression is returned when an expression does not compile to a
// boolean.
var ErrInvalidExpression = errors.New("invalid filter expression")

// MaxExpressionLength bounds the expression source accepted by Compile.
const MaxExpressionLength = 1024

// env is the variable set an expression runs against.
type env struct {
	Name string `expr:"name"`
	Base string `expr:"base"`
	Dir  string `expr:"dir"`
	Ext  string `expr:"ext"`
}

func envFor(name string) env {
	dir := path.Dir(name)
	if dir == "." {
		dir = ""
	}
	return env{
		Name: name,
		Base: path.Base(name),
		Dir:  dir,
		Ext:  strings.ToLower(path.Ext(name)),
	}
}

// Filter is a compiled expression. It is safe for concurrent use.
type Filter struct {
	source  string
	program *vm.Program
}

// Compile parses and type-checks expression. An empty expression yields a
// nil Filter, which accepts every name.
func Compile(expression string) (*Filter, error) {
	expression = strings.TrimSpace(expression)
	if expression == "" {
		return nil, nil
	}
	if len(expression) > MaxExpressionLength {
		return nil, fmt.Errorf("%w: %d chars (max %d)", ErrInvalidExpression, len(expression), MaxExpressionLength)
	}

	program, err := expr.Compile(expression,
		expr.Env(env{}),
		expr.AsBool(),
		expr.Function("glob", glob, new(func(string, string) bool)),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidExpression, err)
	}
	return &Filter{source: expression, program: program}, nil
}

// String returns the expression source.
func (f *Filter) String() string {
	if f == nil {
		return ""
	}
	return f.source
}

// Match evaluates the expression for name.
func (f *Filter) Match(name string) (bool, error) {
	if f == nil {
		return true, nil
	}
	out, err := expr.Run(f.program, envFor(name))
	if err != nil {
		return false, fmt.Errorf("evaluating %q for %q: %w", f.source, name, err)
	}
	ok, _ := out.(bool)
	return ok, nil
}

// Keep adapts Match to a listing predicate. Evaluation errors reject the name.
func (f *Filter) Keep(name string) bool {
	ok, err := f.Match(name)
	return err == nil && ok
}

// Predicate returns Keep, or nil for a nil Filter so callers can pass it
// straight to a listing that treats nil as "accept all".
func (f *Filter) Predicate() func(string) bool {
	if f == nil {
		return nil
	}
	return f.Keep
}

func glob(params ...any) (any, error) {
	pattern, _ := params[0].(string)
	s, _ := params[1].(string)
	ok, err := path.Match(pattern, s)
	if err != nil {
		return false, fmt.Errorf("glob %q: %w", pattern, err)
	}
	return ok, nil
}
