package cmd

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/abhisek/mindarena/internal/app"
	"github.com/abhisek/mindarena/internal/config"
	"github.com/abhisek/mindarena/internal/gate"
	"github.com/abhisek/mindarena/internal/logging"
	"github.com/abhisek/mindarena/internal/progress"
	"github.com/abhisek/mindarena/internal/quiz"
	"github.com/abhisek/mindarena/internal/store"
)

// runtime bundles what every data-backed command opens.
type runtime struct {
	cfg      config.Config
	logger   *slog.Logger
	store    *store.Store
	progress *progress.Store
	closeLog func() error
}

// openRuntime loads the config, opens the log file and the database, and
// restores progress. Unreadable progress never stops a command.
func openRuntime(cmd *cobra.Command) (*runtime, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	dbPath, err := resolveDBPath(cmd, cfg)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}

	logPath := cfg.LogFile
	if logPath == "" {
		logPath = filepath.Join(filepath.Dir(dbPath), "mindarena.log")
	}
	logger, closeLog, err := logging.Open(logPath, cfg.Level())
	if err != nil {
		return nil, err
	}

	st, err := store.Open(dbPath)
	if err != nil {
		closeLog()
		return nil, fmt.Errorf("open store: %w", err)
	}

	// Keys that fail to decode are logged by progress.Open and stay at
	// their defaults; the next save overwrites them.
	p, err := progress.Open(cmd.Context(), st.KV(), progress.Options{
		Runs:   st.RunRepo(),
		Logger: logger,
	})
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), "warning: some saved progress could not be read and was reset to defaults")
	}

	logger.Info("runtime opened", "db", dbPath)
	return &runtime{cfg: cfg, logger: logger, store: st, progress: p, closeLog: closeLog}, nil
}

func (r *runtime) Close() {
	if err := r.store.Close(); err != nil {
		r.logger.Warn("close store failed", "error", err)
	}
	_ = r.closeLog()
}

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	rt, err := openRuntime(cmd)
	if err != nil {
		return err
	}
	defer rt.Close()

	catalog, err := quiz.Load(rt.cfg.Catalog)
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}

	prober := gate.NewProber(rt.cfg.GateURL,
		gate.WithTimeout(rt.cfg.GateTimeout),
		gate.WithLogger(rt.logger))

	return app.Run(app.Options{
		Progress: rt.progress,
		Catalog:  catalog,
		Arcade:   rt.cfg.Arcade(),
		Prober:   prober,
		KV:       rt.store.KV(),
		Logger:   rt.logger,
	})
}
