package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/dkoosis/stylish/internal/config"
	"github.com/dkoosis/stylish/internal/detect"
	"github.com/dkoosis/stylish/internal/version"
	"github.com/dkoosis/stylish/pkg/render"
	"github.com/dkoosis/stylish/pkg/report"
	"github.com/dkoosis/stylish/pkg/sarif"
)

const usageLine = `usage: try piping something in or using --json="{ \"filename\": [errors...] }"`

// Exit codes.
const (
	exitOK       = 0
	exitProblems = 1
	exitFailure  = 2
)

// errNoInput reports piped stdin that carried nothing.
var errNoInput = errors.New("no input on stdin")

// app carries the process streams through a single invocation.
type app struct {
	stdin          io.Reader
	stdout, stderr io.Writer

	// isTerminal reports whether stdin is interactive.
	isTerminal func(io.Reader) bool
	// workDir locates .stylish.yaml and .stylishcolors; "" is the cwd.
	workDir string

	code int
}

func newApp(stdin io.Reader, stdout, stderr io.Writer) *app {
	return &app{stdin: stdin, stdout: stdout, stderr: stderr, isTerminal: isTTYReader, code: exitOK}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	return newApp(stdin, stdout, stderr).run(args)
}

func (a *app) run(args []string) int {
	cmd := a.rootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(a.stdin)
	cmd.SetOut(a.stdout)
	cmd.SetErr(a.stderr)

	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(a.stderr, "stylish: %v\n", err)
		return exitFailure
	}
	return a.code
}

// isTTYReader reports whether r is a terminal.
func isTTYReader(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func (a *app) rootCmd() *cobra.Command {
	var (
		jsonInput string
		cli       config.CliFlags
	)

	cmd := &cobra.Command{
		Use:   "stylish",
		Short: "Format linter reports as aligned, colorized tables",
		Long: `stylish reads a JSON object mapping file paths to arrays of linter
entries (or a SARIF 2.1.0 document) from stdin or --json and prints one
aligned table per file followed by a problem summary.`,
		Version:       version.Get().Version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			flags := cmd.Flags()
			cli.FormatSet = flags.Changed("format")
			cli.ColorSet = flags.Changed("color")
			cli.WrapSet = flags.Changed("wrap")
			cli.NoWrapSet = flags.Changed("no-wrap")
			cli.TerseSet = flags.Changed("terse")
			cli.ExitCodeSet = flags.Changed("exit-code")
			cli.DebugSet = flags.Changed("debug")
			return a.format(jsonInput, flags.Changed("json"), cli)
		},
	}

	f := cmd.Flags()
	f.StringVar(&jsonInput, "json", "", "Report JSON to format when stdin is a terminal")
	f.StringVar(&cli.Format, "format", config.FormatStylish, "Output format: stylish, llm, json")
	f.StringVar(&cli.Color, "color", config.ColorAuto, "Color mode: auto, always, never")
	f.IntVar(&cli.Wrap, "wrap", render.DefaultWrap, "Wrap reasons at this width (0 disables)")
	f.BoolVar(&cli.NoWrap, "no-wrap", false, "Disable reason wrapping")
	f.BoolVar(&cli.Terse, "terse", false, "Omit the reason column")
	f.BoolVar(&cli.ExitCode, "exit-code", false, "Exit 1 when any error-severity entry is reported")
	f.BoolVar(&cli.Debug, "debug", false, "Print configuration resolution to stderr")

	cmd.AddCommand(newWrapCmd())
	cmd.AddCommand(newVersionCmd())
	return cmd
}

// format is the root command: read, decode, render, print.
func (a *app) format(jsonInput string, jsonSet bool, cli config.CliFlags) error {
	var input []byte
	if a.isTerminal(a.stdin) {
		if !jsonSet {
			fmt.Fprintln(a.stdout, usageLine)
			return nil
		}
		input = []byte(jsonInput)
	} else {
		data, err := io.ReadAll(a.stdin)
		if err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
		if len(strings.TrimSpace(string(data))) == 0 {
			return errNoInput
		}
		input = data
	}

	cfg, err := config.ResolveConfig(a.workDir, cli)
	if err != nil {
		return err
	}
	a.debugf(cfg.Debug, "config: file=%q format=%s (%s) color=%s (%s) wrap=%d (%s) verbose=%t",
		cfg.ConfigPath, cfg.Format, cfg.FormatSource, cfg.Color, cfg.ColorSource,
		cfg.Options.Wrap, cfg.WrapSource, cfg.Options.Verbose)

	format := detect.Sniff(input)
	a.debugf(cfg.Debug, "input: %d bytes, detected %s", len(input), format)

	files, err := decode(format, input)
	if err != nil {
		return err
	}

	output, err := a.render(cfg, files)
	if err != nil {
		return err
	}
	fmt.Fprint(a.stdout, output)

	if cfg.ExitCode && report.Count(files).Errors > 0 {
		a.code = exitProblems
	}
	return nil
}

func decode(format detect.Format, input []byte) (report.Files, error) {
	if format == detect.SARIF {
		doc, err := sarif.ReadBytes(input)
		if err != nil {
			return nil, fmt.Errorf("parsing SARIF: %w", err)
		}
		return sarif.ToFiles(doc), nil
	}
	return report.Decode(input)
}

// render produces the final stdout text. The stylish layout gets one
// extra trailing newline; the machine formats end with exactly one.
func (a *app) render(cfg *config.ResolvedConfig, files report.Files) (string, error) {
	switch cfg.Format {
	case config.FormatJSON:
		return strings.TrimRight(render.NewJSON().Render(files), "\n") + "\n", nil
	case config.FormatLLM:
		return strings.TrimRight(render.NewLLM().Render(files), "\n") + "\n", nil
	default:
		out, err := render.Format(a.workDir, files, cfg.Options, a.lipglossRenderer(cfg.Color))
		if err != nil {
			return "", err
		}
		return out + "\n", nil
	}
}

// lipglossRenderer binds styles to stdout with the color profile the mode
// asks for. Auto leaves detection to termenv.
func (a *app) lipglossRenderer(mode string) *lipgloss.Renderer {
	r := lipgloss.NewRenderer(a.stdout)
	switch mode {
	case config.ColorAlways:
		r.SetColorProfile(termenv.TrueColor)
	case config.ColorNever:
		r.SetColorProfile(termenv.Ascii)
	}
	return r
}

func (a *app) debugf(enabled bool, format string, args ...any) {
	if enabled {
		fmt.Fprintf(a.stderr, "[DEBUG] "+format+"\n", args...)
	}
}
