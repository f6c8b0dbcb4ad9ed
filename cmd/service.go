package cmd

import (
	"clipstash/pkg/clipboard"
	"clipstash/pkg/config"
	"clipstash/pkg/history"
	"clipstash/pkg/logger"
	"clipstash/pkg/snippets"
	"clipstash/pkg/store"
)

// newService loads the config and store and wires up the snippet service.
// The returned cleanup func closes the history database, if any.
func newService() (*snippets.Service, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}

	path := storePathFlag
	if path == "" {
		path = cfg.StorePath()
	}

	st, err := store.Load(path)
	if err != nil {
		// Recoverable: report and continue with an empty store.
		PrintWarning("%v, starting with an empty store", err)
		logger.Warn().Err(err).Str("path", path).Msg("store load failed")
	}

	svc := snippets.NewService(st, clipboard.System{})

	cleanup := func() {}
	if cfg.HistoryEnabled() {
		rec, err := history.Open(cfg.HistoryPath())
		if err != nil {
			logger.Debug().Err(err).Msg("history unavailable")
		} else {
			svc.WithRecorder(rec)
			cleanup = func() { rec.Close() }
		}
	}

	return svc, cleanup, nil
}

// openHistory opens the history database for the history subcommands.
func openHistory() (*history.Recorder, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	return history.Open(cfg.HistoryPath())
}
