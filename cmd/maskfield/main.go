package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
	"github.com/joho/godotenv"
	apppkg "github.com/kk-code-lab/maskfield/internal/app"
	"github.com/kk-code-lab/maskfield/internal/config"
	"github.com/kk-code-lab/maskfield/internal/mask"
	"github.com/kk-code-lab/maskfield/internal/shellsetup"
)

func printHelp(w io.Writer) {
	fmt.Fprint(w, `maskfield - Masked text input for the terminal

USAGE:
    maskfield [OPTIONS]                         Interactive form
    maskfield format   --profile NAME [--caret N] RAW
    maskfield unformat --profile NAME [--strict|--legacy] MASKED
    maskfield profiles

OPTIONS:
    -h, --help            Show this help message and exit
    -s, --setup [SHELL]   Output the maskform shell function (optionally force SHELL)
    --config FILE         Profile file (default: $MASKFIELD_CONFIG)
    --profile NAME        Field to show; repeat for several (default: all)
    --export SHELL        Write submitted values as SHELL statements (sh, fish, pwsh)
    --result FILE         Write submitted values to FILE instead of stdout

ENVIRONMENT:
    MASKFIELD_CONFIG      Profile file path
    MASKFIELD_LOG         Debug log file (interactive mode logs nowhere else)
`)
}

var parentShellDetector = shellsetup.DetectParentShellName

// stringList collects a repeatable flag.
type stringList []string

func (l *stringList) String() string {
	return strings.Join(*l, ",")
}

func (l *stringList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

func main() {
	// Set UTF-8 as fallback encoding for maximum compatibility
	tcell.SetEncodingFallback(tcell.EncodingFallbackUTF8)

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "Warning: could not load .env: %v\n", err)
	}

	closeLog := setupLogging(config.LogPath())
	code := run(os.Args[1:], os.Stdout, os.Stderr)
	closeLog()
	os.Exit(code)
}

// setupLogging points the default slog logger at path. The terminal belongs
// to the form, so without a path nothing is logged.
func setupLogging(path string) func() {
	if path == "" {
		slog.SetDefault(slog.New(slog.DiscardHandler))
		return func() {}
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open log file %s: %v\n", path, err)
		slog.SetDefault(slog.New(slog.DiscardHandler))
		return func() {}
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(file, &slog.HandlerOptions{Level: slog.LevelDebug})))
	return func() { _ = file.Close() }
}

func run(args []string, stdout, stderr io.Writer) int {
	if len(args) > 0 {
		arg := args[0]
		switch {
		case arg == "-h" || arg == "--help":
			printHelp(stdout)
			return 0
		case arg == "-s" || arg == "--setup":
			shellOverride := ""
			if len(args) > 1 {
				shellOverride = args[1]
			}
			shellsetup.PrintSetup(stdout, shellOverride, shellsetup.Config{DetectParent: parentShellDetector})
			return 0
		case strings.HasPrefix(arg, "--setup="):
			shellOverride := strings.TrimPrefix(arg, "--setup=")
			shellsetup.PrintSetup(stdout, shellOverride, shellsetup.Config{DetectParent: parentShellDetector})
			return 0
		case arg == "format":
			return runFormat(args[1:], stdout, stderr)
		case arg == "unformat":
			return runUnformat(args[1:], stdout, stderr)
		case arg == "profiles":
			return runProfiles(args[1:], stdout, stderr)
		}
	}
	return runForm(args, stdout, stderr)
}

func loadConfig(path string, stderr io.Writer) (*config.Config, bool) {
	cfg, err := config.Load(config.ResolvePath(path))
	if err != nil {
		fmt.Fprintf(stderr, "Error loading profiles: %v\n", err)
		return nil, false
	}
	return cfg, true
}

// engineFor resolves one profile into a compiled engine.
func engineFor(configPath, profile string, stderr io.Writer) (*mask.Engine, bool) {
	if profile == "" {
		fmt.Fprintln(stderr, "Error: --profile is required")
		return nil, false
	}
	cfg, ok := loadConfig(configPath, stderr)
	if !ok {
		return nil, false
	}
	p, err := cfg.Lookup(profile)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return nil, false
	}
	maskCfg, err := p.MaskConfig()
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return nil, false
	}
	return mask.New(maskCfg), true
}

func newFlagSet(name string, stderr io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	return fs
}

func runForm(args []string, stdout, stderr io.Writer) int {
	fs := newFlagSet("maskfield", stderr)
	configPath := fs.String("config", "", "profile file")
	exportShell := fs.String("export", "", "write values as shell statements")
	resultPath := fs.String("result", "", "write values to file")
	var profiles stringList
	fs.Var(&profiles, "profile", "profile to show (repeatable)")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	cfg, ok := loadConfig(*configPath, stderr)
	if !ok {
		return 1
	}
	selected, err := cfg.Select(profiles)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	app, err := apppkg.NewApplication(selected, slog.Default())
	if err != nil {
		fmt.Fprintf(stderr, "Error initializing application: %v\n", err)
		return 1
	}
	app.Run()
	_ = app.Close()

	if !app.Submitted() {
		return 1
	}

	output := formatValues(app.Values(), *exportShell)
	if *resultPath != "" {
		// Write with 0600 permissions (owner only) for security
		if err := os.WriteFile(*resultPath, []byte(output), 0o600); err != nil {
			fmt.Fprintf(stderr, "Error: could not write result file: %v\n", err)
			return 1
		}
		return 0
	}
	fmt.Fprint(stdout, output)
	return 0
}

func formatValues(values []apppkg.FieldValue, exportShell string) string {
	if exportShell != "" {
		exports := make([]shellsetup.Export, 0, len(values))
		for _, v := range values {
			exports = append(exports, shellsetup.Export{Name: v.Name, Value: v.Value})
		}
		return shellsetup.FormatExports(exportShell, exports)
	}

	var b strings.Builder
	for _, v := range values {
		fmt.Fprintf(&b, "%s=%s\n", v.Name, v.Value)
	}
	return b.String()
}

func runFormat(args []string, stdout, stderr io.Writer) int {
	fs := newFlagSet("format", stderr)
	configPath := fs.String("config", "", "profile file")
	profile := fs.String("profile", "", "profile name")
	caret := fs.Int("caret", -1, "caret offset into RAW; prints the mapped offset")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(stderr, "Error: format takes exactly one RAW argument")
		return 2
	}

	engine, ok := engineFor(*configPath, *profile, stderr)
	if !ok {
		return 1
	}

	raw := fs.Arg(0)
	if *caret < 0 {
		fmt.Fprintln(stdout, engine.Display(raw))
		return 0
	}
	pos := min(*caret, utf8.RuneCountInString(raw))
	display, pos := engine.Render(raw, pos)
	fmt.Fprintln(stdout, display)
	fmt.Fprintln(stdout, strconv.Itoa(pos))
	return 0
}

func runUnformat(args []string, stdout, stderr io.Writer) int {
	fs := newFlagSet("unformat", stderr)
	configPath := fs.String("config", "", "profile file")
	profile := fs.String("profile", "", "profile name")
	strict := fs.Bool("strict", false, "fail unless MASKED matches the template exactly")
	legacy := fs.Bool("legacy", false, "template-only extraction that re-appends the right affix")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(stderr, "Error: unformat takes exactly one MASKED argument")
		return 2
	}
	if *strict && *legacy {
		fmt.Fprintln(stderr, "Error: --strict and --legacy are mutually exclusive")
		return 2
	}

	engine, ok := engineFor(*configPath, *profile, stderr)
	if !ok {
		return 1
	}

	masked := fs.Arg(0)
	switch {
	case *strict:
		text, _ := engine.StripAffixes(masked, 0)
		raw, err := engine.UnformatStrict(text)
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
		fmt.Fprintln(stdout, raw)
	case *legacy:
		fmt.Fprintln(stdout, engine.UnformatWithSuffix(masked))
	default:
		fmt.Fprintln(stdout, engine.Value(masked))
	}
	return 0
}

func runProfiles(args []string, stdout, stderr io.Writer) int {
	fs := newFlagSet("profiles", stderr)
	configPath := fs.String("config", "", "profile file")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	cfg, ok := loadConfig(*configPath, stderr)
	if !ok {
		return 1
	}

	tw := tabwriter.NewWriter(stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tTEMPLATE\tDIRECTION\tAFFIXES")
	for _, p := range cfg.Profiles {
		direction := p.Direction
		if direction == "" {
			direction = "ltr"
		}
		affixes := ""
		if p.LeftAffix != "" || p.RightAffix != "" {
			affixes = fmt.Sprintf("%q %q", p.LeftAffix, p.RightAffix)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", p.Name, p.Template, direction, affixes)
	}
	if err := tw.Flush(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}
