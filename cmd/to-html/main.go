// Command to-html runs a shell command under a pseudoterminal and converts
// its captured output into HTML.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Aloso/to-html"
	"github.com/Aloso/to-html/internal/appconfig"
	"github.com/Aloso/to-html/internal/docwrap"
	"github.com/Aloso/to-html/internal/logging"
	"github.com/Aloso/to-html/internal/shellrun"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr *os.File) int {
	var (
		shell      string
		doc        bool
		cwd        string
		highlight  string
		prefix     string
		theme      string
		hidePrompt bool
		debug      bool
	)

	fs := flag.NewFlagSet("to-html", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&shell, "shell", "", "shell to run when no command is given")
	fs.StringVar(&shell, "s", "", "shorthand for --shell")
	fs.BoolVar(&doc, "doc", false, "wrap output in a full HTML document")
	fs.BoolVar(&doc, "d", false, "shorthand for --doc")
	fs.StringVar(&cwd, "cwd", "", "working directory for the spawned command")
	fs.StringVar(&cwd, "c", "", "shorthand for --cwd")
	fs.StringVar(&highlight, "highlight", "", "comma-separated words to highlight in the prompt line")
	fs.StringVar(&highlight, "l", "", "shorthand for --highlight")
	fs.StringVar(&prefix, "prefix", "", "CSS class prefix")
	fs.StringVar(&prefix, "p", "", "shorthand for --prefix")
	fs.StringVar(&theme, "theme", "", "dark or light")
	fs.BoolVar(&hidePrompt, "hide-prompt", false, "omit the synthesized prompt line")
	fs.BoolVar(&debug, "debug", false, "enable debug logging")

	if err := fs.Parse(args); err != nil {
		return 2
	}
	logging.SetDebug(debug)

	cfg, err := appconfig.Load()
	if err != nil {
		fmt.Fprintln(stderr, "to-html:", err)
		return 2
	}

	command := fs.Args()
	if len(command) == 0 {
		command = []string{resolveShell(shell, cfg)}
	}
	if cwd == "" {
		cwd = cfg.Output.CWD
	}
	if prefix == "" {
		prefix = cfg.Output.CSSPrefix
	}
	if theme == "" {
		theme = cfg.Output.Theme
	}
	if !doc {
		doc = cfg.Output.FullDocument
	}
	if highlight == "" {
		highlight = strings.Join(cfg.Output.Highlight, ",")
	}

	result, err := shellrun.Run(command, cwd)
	if err != nil {
		fmt.Fprintln(stderr, "to-html:", err)
		return 1
	}

	conv := tohtml.New(tohtml.WithPrefix(prefix), tohtml.WithTheme(theme))

	var body strings.Builder
	if !hidePrompt {
		body.WriteString(conv.Convert(promptLine(command, highlight)))
		body.WriteByte('\n')
	}
	body.WriteString(conv.Convert(result.Output))

	if doc {
		fmt.Fprintln(stdout, docwrap.Wrap(body.String(), prefix, conv.Theme()))
	} else {
		fmt.Fprintln(stdout, docwrap.Fragment(body.String(), prefix, conv.Theme()))
	}

	if result.ExitCode != 0 {
		return result.ExitCode
	}
	return 0
}

// resolveShell picks the shell to run when the user gave no command:
// --shell flag, then config, then $SHELL, then /bin/sh.
func resolveShell(flagShell string, cfg appconfig.Config) string {
	if flagShell != "" {
		return flagShell
	}
	if cfg.Shell.Program != "" {
		return cfg.Shell.Program
	}
	if env := os.Getenv("SHELL"); env != "" {
		return env
	}
	return "/bin/sh"
}

// promptLine synthesizes the displayed command line: bolded via lipgloss
// (so the bold SGR path is exercised the same way a real shell prompt
// would), with any highlight words additionally wrapped in ANSI red before
// the whole line is fed through the same converter as the command output.
func promptLine(command []string, highlight string) string {
	joined := strings.Join(command, " ")
	words := strings.FieldsFunc(highlight, func(r rune) bool { return r == ',' })

	for _, w := range words {
		w = strings.TrimSpace(w)
		if w == "" {
			continue
		}
		joined = strings.ReplaceAll(joined, w, "\x1b[31m"+w+"\x1b[39m")
	}

	bold := lipgloss.NewStyle().Bold(true)
	return bold.Render("$ " + joined)
}
