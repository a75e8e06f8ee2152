package sqldb

import (
	"database/sql"
	"fmt"
	"os"

	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

// Open deletes any previous database at path and opens a fresh one. Every
// run rebuilds from scratch; a partially written file left behind by an
// interrupted run is never resumed.
func Open(path string, log *zap.Logger) (*sql.DB, error) {
	if _, err := os.Stat(path); err == nil {
		log.Info("removing existing database", zap.String("path", path))
		if err := os.Remove(path); err != nil {
			return nil, fmt.Errorf("removing old database: %w", err)
		}
	}

	log.Info("creating new database", zap.String("path", path))
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// Bulk-load tuning. The run is single-threaded and restartable from
	// scratch, so there is no point paying for full durability between
	// batch commits.
	for _, pragma := range []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("applying %q: %w", pragma, err)
		}
	}
	return db, nil
}
