package main

import (
	"errors"
	"io"

	flag "github.com/spf13/pflag"
)

// ErrUsage marks invalid command-line usage.
var ErrUsage = errors.New("usage error")

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config    string
	templates string
	archive   string
	prefix    string
	suffix    string
	logLevel  string
	logFormat string
	quiet     bool
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.StringVarP(&f.templates, "templates", "t", "", "override directory consulted before the archive")
	fs.StringVarP(&f.archive, "archive", "a", "", "packaged archive (zip, jar, tar, tar.gz)")
	fs.StringVar(&f.prefix, "prefix", "", "template prefix (default \"/templates\")")
	fs.StringVar(&f.suffix, "suffix", "", "template suffix (default \".hbs\")")
	fs.StringVar(&f.logLevel, "log-level", "", "log level: debug, info, warn, error")
	fs.StringVar(&f.logFormat, "log-format", "", "log format: text, json")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
}

// resolveFlags holds flags for resolve.
type resolveFlags struct {
	common    commonFlags
	highlight bool
	style     string
}

// bytesFlags holds flags for bytes.
type bytesFlags struct {
	common commonFlags
	output string
}

// statFlags holds flags for stat.
type statFlags struct {
	common commonFlags
	json   bool
}

// listFlags holds flags for list.
type listFlags struct {
	common commonFlags
	filter string
	fonts  bool
	json   bool
}

// serveFlags holds flags for serve.
type serveFlags struct {
	common         commonFlags
	addr           string
	maxUploads     int
	uploadTTL      string
	maxUploadBytes int64
}

// newFlagSet creates a FlagSet that reports errors instead of exiting and
// prints usage to w.
func newFlagSet(name string, w io.Writer, usage func(io.Writer)) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(w)
	fs.Usage = func() { usage(w) }
	return fs
}

func parseResolveFlags(args []string, w io.Writer) (*resolveFlags, *flag.FlagSet, error) {
	f := &resolveFlags{}
	fs := newFlagSet("resolve", w, printResolveUsage)
	addCommonFlags(fs, &f.common)
	fs.BoolVar(&f.highlight, "highlight", false, "syntax-highlight the template for the terminal")
	fs.StringVar(&f.style, "style", "monokai", "highlight style")
	err := fs.Parse(args)
	return f, fs, err
}

func parseBytesFlags(args []string, w io.Writer) (*bytesFlags, *flag.FlagSet, error) {
	f := &bytesFlags{}
	fs := newFlagSet("bytes", w, printBytesUsage)
	addCommonFlags(fs, &f.common)
	fs.StringVarP(&f.output, "output", "o", "", "write to file instead of stdout")
	err := fs.Parse(args)
	return f, fs, err
}

func parseStatFlags(args []string, w io.Writer) (*statFlags, *flag.FlagSet, error) {
	f := &statFlags{}
	fs := newFlagSet("stat", w, printStatUsage)
	addCommonFlags(fs, &f.common)
	fs.BoolVar(&f.json, "json", false, "print as JSON")
	err := fs.Parse(args)
	return f, fs, err
}

func parseListFlags(args []string, w io.Writer) (*listFlags, *flag.FlagSet, error) {
	f := &listFlags{}
	fs := newFlagSet("list", w, printListUsage)
	addCommonFlags(fs, &f.common)
	fs.StringVarP(&f.filter, "filter", "f", "", "filter expression, e.g. 'ext == \".ttf\"'")
	fs.BoolVar(&f.fonts, "fonts", false, "list fonts only and show the default font")
	fs.BoolVar(&f.json, "json", false, "print as JSON")
	err := fs.Parse(args)
	return f, fs, err
}

func parseServeFlags(args []string, w io.Writer) (*serveFlags, *flag.FlagSet, error) {
	f := &serveFlags{}
	fs := newFlagSet("serve", w, printServeUsage)
	addCommonFlags(fs, &f.common)
	fs.StringVar(&f.addr, "addr", "", "listen address (default \"127.0.0.1:8080\")")
	fs.IntVar(&f.maxUploads, "max-uploads", 0, "upload store bound (0 = unbounded)")
	fs.StringVar(&f.uploadTTL, "upload-ttl", "", "upload expiry, e.g. 1h (empty = never)")
	fs.Int64Var(&f.maxUploadBytes, "max-upload-bytes", 0, "largest accepted upload body (0 = 1MiB)")
	err := fs.Parse(args)
	return f, fs, err
}
