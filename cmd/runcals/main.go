// Package main provides the CLI entrypoint for runcals.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/verte-zerg/runcals/internal/articles"
	"github.com/verte-zerg/runcals/internal/config"
	"github.com/verte-zerg/runcals/internal/history"
	"github.com/verte-zerg/runcals/internal/render"
	"github.com/verte-zerg/runcals/internal/settings"
	"github.com/verte-zerg/runcals/internal/store"
)

const timestampLayout = "2006-01-02 15:04:05"

// app holds the state shared by every command of one invocation.
type app struct {
	dbPath  string
	lang    string
	theme   string
	verbose bool
	noColor bool

	fileCfg config.FileConfig
	logger  *zap.Logger
	st      *store.Store
	state   *settings.State

	now     func() time.Time
	fetcher articles.Fetcher
	stderr  io.Writer
}

func newApp() *app {
	return &app{now: time.Now, stderr: os.Stderr}
}

func main() {
	if err := run(newApp(), os.Args[1:], os.Stdout, os.Stderr); err != nil {
		os.Exit(1)
	}
}

func run(a *app, args []string, stdout, stderr io.Writer) error {
	rootCmd := a.newRootCmd()
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	a.stderr = stderr
	err := rootCmd.Execute()
	a.close()
	return err
}

func (a *app) newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:               "runcals",
		Short:             "Running pace, track split and EpH calculators",
		SilenceUsage:      true,
		SilenceErrors:     false,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.dbPath, "db", "", "SQLite database path (default: XDG data dir)")
	flags.StringVar(&a.lang, "lang", "", "output language for this run: en or zh")
	flags.StringVar(&a.theme, "theme", "", "colour theme for this run: light, dark or automatic")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	flags.BoolVar(&a.noColor, "no-color", false, "disable coloured output")

	rootCmd.AddCommand(a.newEphCmd())
	rootCmd.AddCommand(a.newTrackCmd())
	rootCmd.AddCommand(a.newHistoryCmd())
	rootCmd.AddCommand(a.newEventsCmd())
	rootCmd.AddCommand(a.newArticlesCmd())
	rootCmd.AddCommand(a.newSettingsCmd())
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(a.newInfoCmd())

	return rootCmd
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if a.logger == nil {
		cfg := zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
		if a.verbose {
			cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		logger, err := cfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		a.logger = logger
	}

	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	fileCfg.ApplyEnv()
	a.fileCfg = fileCfg

	applyStringConfig(cmd, "db", &a.dbPath, fileCfg.Storage.DB)
	if a.lang != "" {
		if _, err := settings.ParseLanguage(a.lang); err != nil {
			return err
		}
	}
	if a.theme != "" {
		if _, err := settings.ParseTheme(a.theme); err != nil {
			return err
		}
	}
	if a.dbPath == "" {
		a.dbPath = config.DefaultDBPath()
	}
	a.logger.Debug("configured", zap.String("db", a.dbPath), zap.String("lang", a.lang), zap.String("theme", a.theme))
	return nil
}

func (a *app) close() {
	if a.st == nil {
		return
	}
	if cerr := a.st.Close(); cerr != nil {
		logErrf(a.stderr, "failed to close db: %v\n", cerr)
	}
	a.st = nil
}

// store opens the database on first use.
func (a *app) store(ctx context.Context) (*store.Store, error) {
	if a.st != nil {
		return a.st, nil
	}
	st, err := store.Open(a.dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open db: %w", err)
	}
	a.st = st
	a.state = settings.NewState(ctx, st, a.logger)
	return st, nil
}

// settings returns the effective preferences. Flags win over saved values,
// saved values over the config file, and the locale decides the language
// when nothing else does.
func (a *app) settings(ctx context.Context) (settings.Settings, error) {
	st, err := a.store(ctx)
	if err != nil {
		return settings.Settings{}, err
	}
	cur := a.state.Current()
	display := a.fileCfg.Display

	switch {
	case a.lang != "":
		cur.Language, _ = settings.ParseLanguage(a.lang)
	case settings.HasLanguage(ctx, st):
	case display.Language != nil:
		l, err := settings.ParseLanguage(*display.Language)
		if err != nil {
			return settings.Settings{}, fmt.Errorf("invalid display.language in config: %w", err)
		}
		cur.Language = l
	default:
		cur.Language = settings.Initial(cur, false, localeFromEnv())
	}

	switch {
	case a.theme != "":
		cur.Theme, _ = settings.ParseTheme(a.theme)
	case settings.HasTheme(ctx, st):
	case display.Theme != nil:
		t, err := settings.ParseTheme(*display.Theme)
		if err != nil {
			return settings.Settings{}, fmt.Errorf("invalid display.theme in config: %w", err)
		}
		cur.Theme = t
	}
	return cur, nil
}

func localeFromEnv() string {
	for _, key := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		if v := os.Getenv(key); v != "" {
			return v
		}
	}
	return ""
}

func (a *app) printer(cmd *cobra.Command) (render.Printer, error) {
	s, err := a.settings(cmd.Context())
	if err != nil {
		return render.Printer{}, err
	}
	w := cmd.OutOrStdout()
	color := render.ShouldUseColor(w, a.noColor)
	dark := s.Theme.IsDark(color && render.TerminalDark())
	return render.Printer{
		W:      w,
		Styles: render.NewStyles(dark, color),
		Labels: render.LabelsFor(s.Language),
	}, nil
}

func (a *app) historyCap() int {
	if a.fileCfg.History.Cap != nil {
		return *a.fileCfg.History.Cap
	}
	return history.DefaultCapacity
}

func (a *app) timestamp() string {
	return a.now().Format(timestampLayout)
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func logErrf(w io.Writer, format string, args ...any) {
	if w == nil {
		w = os.Stderr
	}
	if _, err := fmt.Fprintf(w, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
