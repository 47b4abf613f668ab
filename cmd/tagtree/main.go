package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/chrisuehlinger/tagtree/config"
	"github.com/chrisuehlinger/tagtree/dom"
	"github.com/chrisuehlinger/tagtree/html"
)

const defaultWidth = 80

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run executes the command and returns the process exit code.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var (
		configPath string
		format     string
		pretty     bool
		escape     bool
		maxDepth   int
		width      int
		logLevel   string
		outPath    string
	)

	flags := pflag.NewFlagSet("tagtree", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.StringVarP(&configPath, "config", "c", "", "Env file with TAGTREE_* settings (default ./tagtree.env if present)")
	flags.StringVarP(&format, "format", "f", config.FormatTree, "Output format: tree|markup")
	flags.BoolVarP(&pretty, "pretty", "p", false, "Indent markup output")
	flags.BoolVar(&escape, "escape", false, "Escape text and attribute values in markup output")
	flags.IntVar(&maxDepth, "max-depth", 0, "Maximum tag nesting depth, 0 disables the bound (default from config, 512)")
	flags.IntVarP(&width, "width", "w", 0, "Truncate tree lines to this width (0 uses terminal width if available)")
	flags.StringVar(&logLevel, "log-level", "", "Log level: debug|info|warn|error")
	flags.StringVarP(&outPath, "output", "o", "", "Output file instead of stdout")
	flags.Usage = func() {
		fmt.Fprintf(stderr, "Usage: tagtree [flags] [inputs...]\n")
		fmt.Fprintln(stderr, "\nIf no input is provided, markup is read from stdin.")
		fmt.Fprintln(stderr, "\nFlags:")
		flags.PrintDefaults()
	}

	if err := flags.Parse(args); err != nil {
		if err == pflag.ErrHelp {
			return 0
		}
		return 2
	}

	cfg, err := loadConfig(configPath)
	if err != nil {
		fmt.Fprintf(stderr, "config: %v\n", err)
		return 2
	}
	if flags.Changed("format") {
		cfg.Format = format
	}
	if flags.Changed("pretty") {
		cfg.Pretty = pretty
	}
	if flags.Changed("escape") {
		cfg.EscapeText = escape
	}
	if flags.Changed("max-depth") {
		cfg.MaxDepth = maxDepth
	}
	if flags.Changed("width") {
		cfg.Width = width
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = logLevel
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "config: %v\n", err)
		return 2
	}

	logger := newLogger(stderr, cfg)

	out, closeOut, err := resolveOutput(outPath, stdout)
	if err != nil {
		logger.Error().Err(err).Str("path", outPath).Msg("cannot open output")
		return 1
	}
	if closeOut != nil {
		defer func() { _ = closeOut.Close() }()
	}

	inputs, err := readInputs(flags.Args(), stdin)
	if err != nil {
		logger.Error().Err(err).Msg("cannot read input")
		return 1
	}

	parser := html.NewParser(
		html.WithMaxDepth(cfg.MaxDepth),
		html.WithLogger(logger),
	)

	status := 0
	for _, in := range inputs {
		nodes, err := parser.Parse(in.data)
		if err != nil {
			logger.Error().Err(err).Str("input", in.name).Msg("cannot parse markup")
			status = 1
			continue
		}
		if err := write(out, nodes, cfg); err != nil {
			logger.Error().Err(err).Msg("cannot write output")
			return 1
		}
	}
	return status
}

func loadConfig(path string) (config.Config, error) {
	if path != "" {
		return config.LoadFile(path)
	}
	return config.Load(".")
}

func newLogger(w io.Writer, cfg config.Config) zerolog.Logger {
	level, _ := cfg.Level()
	if isTerminal(w) {
		w = zerolog.ConsoleWriter{Out: w}
	}
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}

func write(w io.Writer, nodes dom.NodeList, cfg config.Config) error {
	if strings.EqualFold(cfg.Format, config.FormatMarkup) {
		opts := dom.RenderOptions{Pretty: cfg.Pretty, EscapeText: cfg.EscapeText}
		_, err := fmt.Fprintln(w, dom.RenderWith(opts, nodes...))
		return err
	}
	width := cfg.Width
	if width == 0 {
		width = outputWidth(w, defaultWidth)
	}
	return writeTree(w, nodes, width)
}

type input struct {
	name string
	data string
}

func readInputs(args []string, stdin io.Reader) ([]input, error) {
	if len(args) == 0 {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, err
		}
		return []input{{name: "-", data: string(data)}}, nil
	}
	inputs := make([]input, 0, len(args))
	for _, raw := range args {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			return nil, fmt.Errorf("empty input argument")
		}
		if raw == "-" {
			data, err := io.ReadAll(stdin)
			if err != nil {
				return nil, err
			}
			inputs = append(inputs, input{name: raw, data: string(data)})
			continue
		}
		data, err := os.ReadFile(raw)
		if err != nil {
			return nil, err
		}
		inputs = append(inputs, input{name: raw, data: string(data)})
	}
	return inputs, nil
}

func resolveOutput(path string, stdout io.Writer) (io.Writer, io.Closer, error) {
	if strings.TrimSpace(path) == "" {
		return stdout, nil, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}
	return f, f, nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

func outputWidth(w io.Writer, fallback int) int {
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		if cols, _, err := term.GetSize(int(f.Fd())); err == nil && cols > 0 {
			return cols
		}
	}
	return fallback
}
