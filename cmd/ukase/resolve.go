package main

import (
	_ "crypto/sha256" // registers digest.SHA256
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/opencontainers/go-digest"

	"github.com/esvolkov/ukase/internal/fileutil"
)

// runResolve prints the template a logical name resolves to.
func runResolve(args []string, env *Environment) error {
	f, fs, err := parseResolveFlags(args, env.Stderr)
	if err != nil {
		return flagError(err)
	}
	name, err := singleArg("resolve", fs.Args())
	if err != nil {
		return err
	}

	loader, cfg, err := openLoader(&f.common, fs, env)
	if err != nil {
		return err
	}
	defer loader.Close()

	src, err := loader.Resolve(name)
	if err != nil {
		return withHint(err, lookupHint(err, name, cfg))
	}
	if src.Cleared() {
		if !f.common.quiet {
			fmt.Fprintf(env.Stderr, "%s: upload cleared\n", name)
		}
		return nil
	}

	content, err := src.Content()
	if err != nil {
		return err
	}
	if f.highlight {
		return highlight(env.Stdout, src.Filename(), content, f.style)
	}
	_, err = fmt.Fprint(env.Stdout, content)
	return err
}

// runBytes writes the raw bytes of a static resource.
func runBytes(args []string, env *Environment) error {
	f, fs, err := parseBytesFlags(args, env.Stderr)
	if err != nil {
		return flagError(err)
	}
	name, err := singleArg("bytes", fs.Args())
	if err != nil {
		return err
	}

	loader, cfg, err := openLoader(&f.common, fs, env)
	if err != nil {
		return err
	}
	defer loader.Close()

	data, err := loader.ResourceBytes(name)
	if err != nil {
		return withHint(err, lookupHint(err, name, cfg))
	}

	if f.output == "" {
		_, err = env.Stdout.Write(data)
		return err
	}
	if fileutil.DirExists(f.output) {
		return fmt.Errorf("%w: --output %s is a directory", ErrUsage, f.output)
	}
	if err := os.WriteFile(f.output, data, 0o644); err != nil { // #nosec G306 -- resources are not secrets
		return fmt.Errorf("writing %s: %w", f.output, err)
	}
	if !f.common.quiet {
		fmt.Fprintf(env.Stderr, "wrote %d bytes to %s\n", len(data), f.output)
	}
	return nil
}

// statResult describes a resolved template.
type statResult struct {
	Name         string    `json:"name"`
	Kind         string    `json:"kind"`
	Filename     string    `json:"filename"`
	LastModified time.Time `json:"lastModified"`
	Cleared      bool      `json:"cleared"`
	Size         int       `json:"size"`
	Digest       string    `json:"digest,omitempty"`
}

// runStat prints metadata and a content digest for a template.
func runStat(args []string, env *Environment) error {
	f, fs, err := parseStatFlags(args, env.Stderr)
	if err != nil {
		return flagError(err)
	}
	name, err := singleArg("stat", fs.Args())
	if err != nil {
		return err
	}

	loader, cfg, err := openLoader(&f.common, fs, env)
	if err != nil {
		return err
	}
	defer loader.Close()

	src, err := loader.Resolve(name)
	if err != nil {
		return withHint(err, lookupHint(err, name, cfg))
	}

	res := statResult{
		Name:         name,
		Kind:         string(src.Kind()),
		Filename:     src.Filename(),
		LastModified: src.LastModified(),
		Cleared:      src.Cleared(),
	}
	if !res.Cleared {
		content, err := src.Content()
		if err != nil {
			return err
		}
		res.Size = len(content)
		res.Digest = digest.FromString(content).String()
	}

	if f.json {
		enc := json.NewEncoder(env.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}
	fmt.Fprintf(env.Stdout, "name:          %s\n", res.Name)
	fmt.Fprintf(env.Stdout, "kind:          %s\n", res.Kind)
	fmt.Fprintf(env.Stdout, "filename:      %s\n", res.Filename)
	fmt.Fprintf(env.Stdout, "last modified: %s\n", res.LastModified.Format(time.RFC3339))
	if res.Cleared {
		fmt.Fprintln(env.Stdout, "cleared:       true")
		return nil
	}
	fmt.Fprintf(env.Stdout, "size:          %d\n", res.Size)
	fmt.Fprintf(env.Stdout, "digest:        %s\n", res.Digest)
	return nil
}
