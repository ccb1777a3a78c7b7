package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/theirongolddev/sbudget/internal/cli"
	"github.com/theirongolddev/sbudget/internal/config"
	"github.com/theirongolddev/sbudget/internal/controller"
	"github.com/theirongolddev/sbudget/internal/logging"
	"github.com/theirongolddev/sbudget/internal/store"
	"github.com/theirongolddev/sbudget/internal/tui/theme"
)

var (
	flagDB       string
	flagQuiet    bool
	flagLogLevel string
)

var rootCmd = &cobra.Command{
	Use:          "sbudget",
	Short:        "Personal budget tracker with a financial health score",
	Long:         "Track income and expenses, get a 0-100 health score with recommendations, and project your FIRE number.",
	RunE:         runSummary,
	SilenceUsage: true,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDB, "db", "", "Database path (overrides "+config.DBEnvVar+" and config)")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress output after changes")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")
}

// cmdEnv bundles what a command needs: config, logger, storage and the
// session built on top of them.
type cmdEnv struct {
	cfg     config.Config
	log     *logrus.Logger
	kv      *store.KV
	session *controller.Session
}

// sessionOpts tunes openSession for one command.
type sessionOpts struct {
	assumeYes bool
	logOut    io.Writer
	renderers []controller.Renderer
	prompter  controller.Prompter
}

// loadConfig reads config, falling back to defaults on a broken file so the
// tool still runs.
func loadConfig() config.Config {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "  %s\n", cli.RenderWarning(fmt.Sprintf("Config unreadable, using defaults: %s", err)))
		return config.DefaultConfig()
	}
	return cfg
}

func dbPath(cfg config.Config) string {
	if flagDB != "" {
		return flagDB
	}
	return config.DBPath(cfg)
}

func logLevel(cfg config.Config) string {
	if flagLogLevel != "" {
		return flagLogLevel
	}
	return cfg.Logging.Level
}

// openSession is the shared startup path used by all commands.
func openSession(opts sessionOpts) (*cmdEnv, error) {
	cfg := loadConfig()
	theme.SetActive(cfg.Appearance.Theme)
	cli.ApplyTheme(theme.Active)

	out := opts.logOut
	if out == nil {
		out = os.Stderr
	}
	log := logging.New(logLevel(cfg), cfg.Logging.Format, out)

	path := dbPath(cfg)
	kv, err := store.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	log.WithField(logging.FieldPath, path).Debug("database opened")

	prompt := opts.prompter
	if prompt == nil {
		prompt = cliPrompter{assumeYes: opts.assumeYes, out: os.Stderr}
	}

	sessOpts := []controller.Option{controller.WithLogger(log)}
	if !flagQuiet {
		for _, r := range opts.renderers {
			sessOpts = append(sessOpts, controller.WithRenderer(r))
		}
	}

	return &cmdEnv{
		cfg:     cfg,
		log:     log,
		kv:      kv,
		session: controller.Open(store.NewPersisted(kv, log), prompt, sessOpts...),
	}, nil
}

func (e *cmdEnv) Close() {
	_ = e.kv.Close()
}
