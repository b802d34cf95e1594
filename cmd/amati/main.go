// Command amati renders music-theory analytics as text or CSV tables.
//
// Usage:
//
//	amati -t scale -k C -s major
//	amati -t key -k G -f text -o modes.txt
//	amati -t guitar -k A -c m7
//	amati list scales
//
// Flags:
//
//	-t, --type string      Request kind: key, scale, chord, guitar
//	-k, --key string       Key tone, e.g. C, F#, Bb
//	-s, --scale string     Scale name, e.g. major, dorian, blues
//	-c, --chord string     Chord name, e.g. maj7, m7b5
//	-f, --format string    Output format: text, csv, xls, xlsx (default from config)
//	-o, --output string    Output file (default: standard output)
//	    --views string     SCALE analytics to run: roman, interval, scalar, reharmonization
//	    --config string    Config file path (YAML)
//	    --log-level string Log level: debug, info, warn, error (default from config)
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fwojciec/amati"
	"github.com/fwojciec/amati/analytic"
	"github.com/fwojciec/amati/csv"
	"github.com/fwojciec/amati/fs"
	"github.com/fwojciec/amati/lipgloss"
	"github.com/fwojciec/amati/theory"
	"github.com/fwojciec/amati/yaml"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const version = "0.1.0"

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr, "").Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "amati: %v\n", err)
		os.Exit(1)
	}
}

// app holds the state shared by the root command and its subcommands.
type app struct {
	stdout io.Writer
	stderr io.Writer
	home   string // empty = os.UserHomeDir

	configPath string
	logLevel   string
	kind       string
	key        string
	scale      string
	chord      string
	format     string
	output     string
	views      string

	cfg    yaml.Config
	logger *zap.Logger
}

func newRootCmd(stdout, stderr io.Writer, home string) *cobra.Command {
	a := &app{stdout: stdout, stderr: stderr, home: home, logger: zap.NewNop()}

	cmd := &cobra.Command{
		Use:   "amati",
		Short: "Music theory analytics as tables",
		Long: `Amati renders music-theory analytics for a key, scale, chord or guitar
fretboard as text tables or CSV, to standard output or a file.

Each request kind runs a fixed set of analytics. Analytics that cannot be
rendered for the request (for example, Roman numerals for a blues scale)
are skipped with a warning.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "Config file path (YAML)")
	pf.StringVar(&a.logLevel, "log-level", "", "Log level: debug, info, warn, error (default from config)")

	f := cmd.Flags()
	f.StringVarP(&a.kind, "type", "t", "", "Request kind: key, scale, chord, guitar")
	f.StringVarP(&a.key, "key", "k", "", "Key tone, e.g. C, F#, Bb")
	f.StringVarP(&a.scale, "scale", "s", "", "Scale name, e.g. major, dorian, blues")
	f.StringVarP(&a.chord, "chord", "c", "", "Chord name, e.g. maj7, m7b5")
	f.StringVarP(&a.format, "format", "f", "", "Output format: "+strings.Join(amati.FormatNames(), ", ")+" (default from config)")
	f.StringVarP(&a.output, "output", "o", "", "Output file (default: standard output)")
	f.StringVar(&a.views, "views", "", "Comma-separated SCALE analytics to run: "+strings.Join(analytic.Views(), ", ")+" (default from config)")

	_ = cmd.RegisterFlagCompletionFunc("type", fixedCompletion(kindNames()))
	_ = cmd.RegisterFlagCompletionFunc("scale", fixedCompletion(theory.ScaleAliases()))
	_ = cmd.RegisterFlagCompletionFunc("chord", fixedCompletion(theory.ChordAliases()))
	_ = cmd.RegisterFlagCompletionFunc("format", fixedCompletion(amati.FormatNames()))
	_ = cmd.RegisterFlagCompletionFunc("views", fixedCompletion(analytic.Views()))

	cmd.AddCommand(a.listCmd(), a.versionCmd())
	return cmd
}

// setup loads configuration and builds the logger. Flags override config.
func (a *app) setup(cmd *cobra.Command) error {
	home := a.home
	if home == "" {
		home, _ = os.UserHomeDir()
	}
	userPath := ""
	if home != "" {
		userPath = yaml.UserConfigPath(home)
	}
	cfg, err := yaml.Load(userPath, a.configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = a.logLevel
	}
	if f := cmd.Flags().Lookup("views"); f != nil && f.Changed {
		views, err := analytic.ParseViews(a.views)
		if err != nil {
			return fmt.Errorf("flag --views: %w", err)
		}
		cfg.Analytics.Views = views
	}
	logger, err := newLogger(cfg.LogLevel, a.stderr)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = logger
	return nil
}

func newLogger(level string, w io.Writer) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(strings.ToLower(level))
	if err != nil {
		return nil, fmt.Errorf("log level: %w: %w", err, amati.ErrValidation)
	}
	enc := zap.NewProductionEncoderConfig()
	enc.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(enc), zapcore.AddSync(w), lvl)
	return zap.New(core), nil
}

func (a *app) run(cmd *cobra.Command) error {
	report, err := buildReport(a.cfg, a.stdout)
	if err != nil {
		return err
	}
	params := a.params(cmd)
	a.logger.Debug("running request",
		zap.Stringp("type", params.Kind),
		zap.Stringp("key", params.Key),
		zap.Stringp("scale", params.Scale),
		zap.Stringp("chord", params.Chord),
		zap.Stringp("format", params.Format),
		zap.Stringp("output", params.Output))

	return report.Run(params,
		amati.WithFailureHandler(func(res amati.AnalyticResult) {
			a.logger.Warn("analytic skipped",
				zap.String("analytic", res.Analytic),
				zap.Error(res.Err))
		}),
		amati.WithRenderedHandler(func(res amati.AnalyticResult) {
			a.logger.Debug("analytic rendered",
				zap.String("analytic", res.Analytic),
				zap.Int("rows", len(res.Model.Rows)))
		}),
	)
}

// params converts the flags that were set into request parameters. Format
// always carries a value: the flag if set, otherwise the configured default.
func (a *app) params(cmd *cobra.Command) amati.RequestParameters {
	flags := cmd.Flags()
	set := func(name, value string) *string {
		if !flags.Changed(name) {
			return nil
		}
		return &value
	}
	format := a.cfg.Format
	if flags.Changed("format") {
		format = a.format
	}
	return amati.RequestParameters{
		Kind:   set("type", a.kind),
		Key:    set("key", a.key),
		Scale:  set("scale", a.scale),
		Chord:  set("chord", a.chord),
		Format: &format,
		Output: set("output", a.output),
	}
}

// buildReport wires the resolver, analytics, output strategies and sink
// described by cfg.
func buildReport(cfg yaml.Config, stdout io.Writer) (*amati.Report, error) {
	tuning := make([]amati.Tone, len(cfg.Guitar.Tuning))
	for i, name := range cfg.Guitar.Tuning {
		t, err := theory.ParseTone(name)
		if err != nil {
			return nil, fmt.Errorf("config guitar.tuning: %w: %w", err, amati.ErrValidation)
		}
		tuning[i] = t
	}
	registry := analytic.NewRegistry(analytic.Config{
		Reharmonization: cfg.Analytics.Reharmonization,
		Views:           cfg.Analytics.Views,
		Tuning:          tuning,
		Frets:           cfg.Guitar.Frets,
	})

	opts := lipgloss.Options{Border: cfg.Text.Border, MaxCellWidth: cfg.Text.MaxCellWidth}
	if cfg.Text.Color {
		theme := amati.DefaultTheme()
		opts.Theme = &theme
	}
	text, err := lipgloss.NewTextFactory(opts)
	if err != nil {
		return nil, fmt.Errorf("config text: %w", err)
	}
	forms := amati.NewForms(text, map[amati.OutputFormat]amati.OutputFormFactory{
		amati.FormatCSV: csv.NewFactory(),
	})
	return amati.NewReport(theory.New(), registry, forms, fs.NewSink(stdout)), nil
}

func (a *app) listCmd() *cobra.Command {
	catalogs := map[string]func() []string{
		"scales":  theory.ScaleNames,
		"chords":  theory.ChordNames,
		"formats": amati.FormatNames,
	}
	return &cobra.Command{
		Use:       "list scales|chords|formats",
		Short:     "List known scales, chords or output formats",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"scales", "chords", "formats"},
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, n := range catalogs[args[0]]() {
				if _, err := fmt.Fprintln(a.stdout, n); err != nil {
					return fmt.Errorf("write stdout: %w: %w", err, amati.ErrIO)
				}
			}
			return nil
		},
	}
}

func (a *app) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(a.stdout, "amati version %s\n", version)
		},
	}
}

func kindNames() []string {
	kinds := amati.Kinds()
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = strings.ToLower(string(k))
	}
	return names
}

func fixedCompletion(values []string) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return values, cobra.ShellCompDirectiveNoFileComp
	}
}
