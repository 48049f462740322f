package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: ukase <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  resolve    Print the template a name resolves to")
	fmt.Fprintln(w, "  bytes      Print the raw bytes of a resource")
	fmt.Fprintln(w, "  stat       Show where a template comes from and its digest")
	fmt.Fprintln(w, "  list       List archive resources")
	fmt.Fprintln(w, "  serve      Serve templates and resources over HTTP")
	fmt.Fprintln(w, "  doctor     Check configuration and backends")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'ukase help <command>' for details on a specific command.")
}

// printCommonUsage prints the flags every resource command accepts.
func printCommonUsage(w io.Writer) {
	fmt.Fprintln(w, "Resources:")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -t, --templates <dir>     Override directory consulted before the archive")
	fmt.Fprintln(w, "  -a, --archive <path>      Packaged archive (zip, jar, tar, tar.gz)")
	fmt.Fprintln(w, "      --prefix <s>          Template prefix (default \"/templates\")")
	fmt.Fprintln(w, "      --suffix <s>          Template suffix (default \".hbs\")")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "      --log-level <s>       debug, info, warn, error")
	fmt.Fprintln(w, "      --log-format <s>      text, json")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
}

func printResolveUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: ukase resolve <name> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Print the template a logical name resolves to. Generic names are")
	fmt.Fprintln(w, "looked up as <prefix>/<name><suffix> in the override directory, then")
	fmt.Fprintln(w, "the archive. \"default - image as page\" is always available.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "      --highlight           Syntax-highlight for the terminal")
	fmt.Fprintln(w, "      --style <s>           Highlight style (default \"monokai\")")
	fmt.Fprintln(w)
	printCommonUsage(w)
}

func printBytesUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: ukase bytes <name> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Print the raw bytes of a resource such as a font or image.")
	fmt.Fprintln(w, "No template prefix or suffix is applied.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  -o, --output <path>       Write to file instead of stdout")
	fmt.Fprintln(w)
	printCommonUsage(w)
}

func printStatUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: ukase stat <name> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Show the backend, modification time, size and sha256 digest of a template.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "      --json                Print as JSON")
	fmt.Fprintln(w)
	printCommonUsage(w)
}

func printListUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: ukase list [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "List archive entries. Filter expressions see name, base, dir and ext,")
	fmt.Fprintln(w, "and may call glob(pattern, s):")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  ukase list -a bundle.jar -f 'dir == \"fonts\" && !(base contains \"Bold\")'")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  -f, --filter <expr>       Filter expression")
	fmt.Fprintln(w, "      --fonts               Fonts only, plus the default font")
	fmt.Fprintln(w, "      --json                Print as JSON")
	fmt.Fprintln(w)
	printCommonUsage(w)
}

func printServeUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: ukase serve [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Serve templates, resources and uploads over HTTP until interrupted.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "      --addr <host:port>    Listen address (default \"127.0.0.1:8080\")")
	fmt.Fprintln(w, "      --max-uploads <n>     Upload store bound (0 = unbounded)")
	fmt.Fprintln(w, "      --upload-ttl <d>      Upload expiry, e.g. 1h")
	fmt.Fprintln(w, "      --max-upload-bytes <n> Largest accepted upload body (0 = 1MiB)")
	fmt.Fprintln(w)
	printCommonUsage(w)
}

func printDoctorUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: ukase doctor [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Check the configuration, the override directory and the archive.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "      --json                Print as JSON")
	fmt.Fprintln(w)
	printCommonUsage(w)
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) int {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return ExitSuccess
	}

	switch args[0] {
	case "resolve":
		printResolveUsage(env.Stdout)
	case "bytes":
		printBytesUsage(env.Stdout)
	case "stat":
		printStatUsage(env.Stdout)
	case "list":
		printListUsage(env.Stdout)
	case "serve":
		printServeUsage(env.Stdout)
	case "doctor":
		printDoctorUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: ukase version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: ukase help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
		return ExitUsage
	}
	return ExitSuccess
}
