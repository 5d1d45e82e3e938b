package main

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"melodious/internal/catalog"
	"melodious/internal/config"
	"melodious/internal/logging"
	"melodious/internal/telemetry"
	"melodious/internal/ui"
)

// app carries what the persistent pre-run resolved to every subcommand.
type app struct {
	cfgFile string
	cfg     config.Config
	logger  *zap.Logger
	catalog *catalog.Catalog
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "melodious",
		Short: "Browse the Melodious Harmony course catalog",
		Long: `melodious is a terminal catalog for the Melodious Harmony music school.
Run it without arguments to browse courses and their levels interactively.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.browse(cmd.Context())
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "config file (default is ./melodious.yaml)")
	pf.String("catalog", "", "YAML or JSON catalog to load instead of the bundled one")
	pf.String("log-file", "", "write JSON logs to this file")
	pf.BoolP("verbose", "v", false, "log debug events")

	root.AddCommand(
		&cobra.Command{
			Use:   "browse",
			Short: "Open the interactive catalog (default)",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return a.browse(cmd.Context())
			},
		},
		newCoursesCmd(a),
		newShowCmd(a),
	)
	return root
}

// init resolves config, the logger and the catalog.
func (a *app) init(cmd *cobra.Command) error {
	cfg, err := config.Load(a.cfgFile, cmd.Flags())
	if err != nil {
		return err
	}
	a.cfg = cfg

	logger, err := logging.New(cfg.LogFile, cfg.Verbose)
	if err != nil {
		return err
	}
	a.logger = logger

	if cfg.Catalog == "" {
		a.catalog = catalog.Default()
		return nil
	}
	c, err := catalog.LoadFile(cfg.Catalog)
	if err != nil {
		return err
	}
	a.catalog = c
	logger.Info("catalog loaded", zap.String("path", cfg.Catalog), zap.Int("courses", len(c.Names())))
	return nil
}

func (a *app) browse(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	rec, err := telemetry.NewOTLPRecorder(ctx)
	if err != nil {
		a.logger.Warn("telemetry disabled", zap.Error(err))
		rec = nil
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := rec.Shutdown(shutdownCtx); err != nil {
			a.logger.Warn("telemetry shutdown", zap.Error(err))
		}
	}()

	model := ui.NewAppModel(ui.Options{
		Catalog:   a.catalog,
		Logger:    a.logger,
		Telemetry: rec,
		Delay:     a.cfg.TransitionDelay,
	}).AsTeaModel()

	opts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}
	if a.cfg.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	a.logger.Info("starting", zap.Duration("transition_delay", a.cfg.TransitionDelay), zap.Bool("mouse", a.cfg.Mouse))
	if _, err := tea.NewProgram(model, opts...).Run(); err != nil {
		return err
	}
	return nil
}
