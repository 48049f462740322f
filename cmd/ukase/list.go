package main

import (
	"encoding/json"
	"fmt"
	"path"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/esvolkov/ukase"
	"github.com/esvolkov/ukase/internal/filter"
)

// listResult is the JSON shape of "ukase list --json".
type listResult struct {
	Filter      string   `json:"filter,omitempty"`
	Resources   []string `json:"resources"`
	DefaultFont string   `json:"defaultFont,omitempty"`
}

// runList prints the archive entries accepted by --filter.
func runList(args []string, env *Environment) error {
	f, fs, err := parseListFlags(args, env.Stderr)
	if err != nil {
		return flagError(err)
	}
	if fs.NArg() != 0 {
		return fmt.Errorf("%w: list takes no arguments, got %d", ErrUsage, fs.NArg())
	}

	expr, err := filter.Compile(f.filter)
	if err != nil {
		return err
	}

	loader, _, err := openLoader(&f.common, fs, env)
	if err != nil {
		return err
	}
	defer loader.Close()

	keep := expr.Predicate()
	if f.fonts {
		keep = func(name string) bool { return ukase.IsFont(name) && expr.Keep(name) }
	}
	res := listResult{Filter: expr.String(), Resources: loader.ListResources(keep)}
	if f.fonts {
		res.DefaultFont = ukase.DefaultFont(loader)
	}

	if f.json {
		enc := json.NewEncoder(env.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}
	renderList(env, res)
	return nil
}

// renderList prints resources as a borderless table.
func renderList(env *Environment, res listResult) {
	t := table.NewWriter()
	t.SetOutputMirror(env.Stdout)
	t.AppendHeader(table.Row{"Resource", "Type", "Directory"})
	for _, name := range res.Resources {
		t.AppendRow(table.Row{name, resourceType(name), path.Dir(name)})
	}
	t.AppendFooter(table.Row{fmt.Sprintf("%d resources", len(res.Resources)), "", ""})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 3, AutoMerge: true},
	})
	style := table.StyleLight
	style.Options.DrawBorder = false
	t.SetStyle(style)
	t.Render()

	if res.DefaultFont != "" {
		fmt.Fprintf(env.Stdout, "\ndefault font: %s\n", res.DefaultFont)
	}
}

// resourceType classifies an entry for display.
func resourceType(name string) string {
	switch {
	case ukase.IsFont(name):
		return "font"
	case path.Ext(name) == ukase.TemplateSuffix:
		return "template"
	default:
		return "resource"
	}
}
