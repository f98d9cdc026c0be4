package cli

import (
	"fmt"
	"io"
	"runtime"

	"github.com/charmbracelet/lipgloss"
)

var (
	headingStyle = lipgloss.NewStyle().Bold(true)
	flagStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("14")) // cyan
)

type usageEntry struct {
	flag string
	help string
}

var usageEntries = []usageEntry{
	{"-b", "issue warnings about bytes/text comparisons (-bb: errors)"},
	{"-B", "don't write bytecode cache files"},
	{"-c code", "run the code string (terminates option list)"},
	{"-d", "turn on debug output"},
	{"-E", "ignore QUILL* environment variables"},
	{"-h, --help", "print this help message and exit"},
	{"-i", "enter interactive mode after running the program"},
	{"-I", "isolated mode (implies -E and -s)"},
	{"-m module", "run the named module from the search path"},
	{"-O", "raise the optimization level (repeatable: -OO, -OOO, ...)"},
	{"-q", "don't print version banner on interactive startup"},
	{"-s", "don't add the user site directory to the search path"},
	{"-S", "don't run site initialization on startup"},
	{"-t", "accepted for compatibility, ignored"},
	{"-v", "raise the verbosity level (repeatable)"},
	{"-V, --version", "print the runtime version and exit"},
	{"-W filter", "add a warning filter (repeatable, applied in order)"},
}

func printUsage(w io.Writer) {
	fmt.Fprintf(w, "%s\n  quill [option ...] [file | -c code | -m module | -] [arg ...]\n\n",
		headingStyle.Render("Usage:"))
	fmt.Fprintf(w, "%s\n", headingStyle.Render("Options:"))
	for _, e := range usageEntries {
		fmt.Fprintf(w, "  %-16s %s\n", flagStyle.Render(e.flag), e.help)
	}
	fmt.Fprintf(w, "\n%s\n", headingStyle.Render("Environment:"))
	fmt.Fprintln(w, "  QUILLHASHSEED   \"random\" or a fixed seed in [0, 2^32-1]; 0 disables randomization")
	fmt.Fprintln(w, "  QUILLPATH       colon-separated directories prepended to the module search path")
	fmt.Fprintln(w, "  QUILLWARNINGS   comma-separated warning filters, applied before -W filters")
}

func versionLine() string {
	return fmt.Sprintf("quill %s (commit: %s, built: %s, go: %s)", Version, Commit, BuildDate, runtime.Version())
}
