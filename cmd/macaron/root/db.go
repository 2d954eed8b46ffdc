package root

import (
	"context"
	"os"
	"strings"

	"github.com/charmbracelet/log"

	"macaron/internal/config"
	"macaron/internal/storage"
	"macaron/internal/store"
)

func newLogger(level string) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: false})
	if lvl, err := log.ParseLevel(strings.ToLower(level)); err == nil {
		logger.SetLevel(lvl)
	}
	return logger
}

// openStore loads config, opens the database and returns a loaded state
// store plus the raw key-value handle for the odd non-snapshot consumer
// (the invite ledger).
func openStore(ctx context.Context) (*store.Store, *storage.KV, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, nil, err
	}

	db, err := storage.Open(ctx, cfg.DBPath)
	if err != nil {
		return nil, nil, nil, err
	}
	cleanup := func() {
		_ = db.Close()
	}

	kv := storage.NewKV(db)
	st := store.New(storage.NewSnapshotRepo(kv), store.WithLogger(newLogger(cfg.LogLevel)))
	if err := st.Load(ctx); err != nil {
		cleanup()
		return nil, nil, nil, err
	}
	return st, kv, cleanup, nil
}
