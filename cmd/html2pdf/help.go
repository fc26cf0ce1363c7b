package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: html2pdf <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  convert    Convert one HTML file (or stdin) to PDF")
	fmt.Fprintln(w, "  batch      Convert every HTML file in a directory to PDF")
	fmt.Fprintln(w, "  doctor     Check that a usable Chrome/Chromium is reachable")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'html2pdf help <command>' for details on a specific command.")
}

// printConvertUsage prints usage for the convert command.
func printConvertUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: html2pdf convert <input.html> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert an HTML file to PDF. Reads from stdin if input is \"-\" or omitted.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <path>         Output PDF path (default: stdout)")
	fmt.Fprintln(w, "  -c, --config <path>         Config file (.yaml/.yml or properties-style)")
	fmt.Fprintln(w, "  -v, --verbose               Log pool and browser activity to stderr")
	fmt.Fprintln(w, "  -q, --quiet                 Suppress non-error output")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Pool:")
	fmt.Fprintln(w, "      --chrome-path <path>    Path to the Chrome/Chromium binary")
	fmt.Fprintln(w, "      --min-connections <n>   Minimum browsers to keep warm")
	fmt.Fprintln(w, "      --max-connections <n>   Maximum concurrent browsers")
	fmt.Fprintln(w, "      --base-port <n>         First remote-debugging port to try")
	fmt.Fprintln(w, "      --idle-timeout <secs>   Idle browser eviction timeout")
	fmt.Fprintln(w, "      --acquire-timeout <secs> Time to wait for a free browser")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Page:")
	fmt.Fprintln(w, "      --landscape             Render in landscape orientation")
	fmt.Fprintln(w, "      --page-size <s>         letter, a4, legal, tabloid, a3, a5")
	fmt.Fprintln(w, "      --paper-width <f>       Paper width in inches, overrides --page-size")
	fmt.Fprintln(w, "      --paper-height <f>      Paper height in inches, overrides --page-size")
	fmt.Fprintln(w, "      --margin-top <f>        Top margin in inches")
	fmt.Fprintln(w, "      --margin-bottom <f>     Bottom margin in inches")
	fmt.Fprintln(w, "      --margin-left <f>       Left margin in inches")
	fmt.Fprintln(w, "      --margin-right <f>      Right margin in inches")
	fmt.Fprintln(w, "      --page-ranges <s>       e.g. \"1-4,9\" (default: all pages)")
	fmt.Fprintln(w, "      --no-background         Suppress background graphics")
	fmt.Fprintln(w, "      --prefer-css-page-size  Let @page CSS rules override --page-size")
}

// printBatchUsage prints usage for the batch command.
func printBatchUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: html2pdf batch <input-dir> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert every *.html / *.htm file in input-dir to PDF, in parallel across")
	fmt.Fprintln(w, "the pool's browsers.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  -o, --out-dir <path>   Directory to write PDFs into (default: input-dir)")
	fmt.Fprintln(w, "  -w, --workers <n>      Concurrent conversions (default: --max-connections)")
	fmt.Fprintln(w, "  -c, --config <path>    Config file (.yaml/.yml or properties-style)")
	fmt.Fprintln(w, "  -v, --verbose          Log pool and browser activity to stderr")
	fmt.Fprintln(w, "  -q, --quiet            Suppress non-error output")
}

// printDoctorUsage prints usage for the doctor command.
func printDoctorUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: html2pdf doctor [--json]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Check that Chrome/Chromium can be located and launched, and report")
	fmt.Fprintln(w, "environment details relevant to sandboxing in containers and CI.")
}
