package root

import (
	"io"
	"log/slog"

	"taskroll/internal/config"
	"taskroll/internal/logging"
	"taskroll/internal/taskstore"
)

type session struct {
	cfg    config.Config
	logger *slog.Logger
	store  *taskstore.Store
}

// openSession loads config, builds the logger and a store filled with the
// configured seed tasks. logFallback is used when no log file is set.
func openSession(opts *globalOptions, logFallback io.Writer) (*session, func(), error) {
	path := opts.configPath
	if path == "" {
		p, err := config.DefaultPath()
		if err == nil {
			path = p
		}
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, nil, err
	}
	if opts.logLevel != "" {
		cfg.Log.Level = opts.logLevel
	}

	w, closeLog, err := logging.Open(cfg.Log.File, logFallback)
	if err != nil {
		return nil, nil, err
	}
	logger, err := logging.New(w, cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		_ = closeLog()
		return nil, nil, err
	}

	store := taskstore.New(taskstore.Options{Logger: logger})
	for i, seed := range cfg.Seed {
		if _, err := store.Add(seed.Description, seed.Due, seed.Difficulty); err != nil {
			logger.Warn("skipping seed task", "index", i, "error", err)
		}
	}

	cleanup := func() {
		_ = closeLog()
	}
	return &session{cfg: cfg, logger: logger, store: store}, cleanup, nil
}
