package sqldb

import (
	"database/sql"
	"fmt"

	"github.com/lintang-b-s/area-db/pkg/boundary"
)

// DefaultBatchSize bounds both the memory held per level and the rows lost
// if the process dies mid-level.
const DefaultBatchSize = 1000

// BatchWriter accumulates records for one level and commits them in
// fixed-size transactional batches. INSERT OR REPLACE keys on id, so
// re-running the importer replaces rows instead of duplicating them.
type BatchWriter struct {
	db        *sql.DB
	level     boundary.Level
	batchSize int
	batch     []boundary.Record
}

func NewBatchWriter(db *sql.DB, level boundary.Level, batchSize int) *BatchWriter {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}
	return &BatchWriter{
		db:        db,
		level:     level,
		batchSize: batchSize,
		batch:     make([]boundary.Record, 0, batchSize),
	}
}

// Append queues one record and flushes when the batch is full. A flush
// error is fatal to the level.
func (w *BatchWriter) Append(rec boundary.Record) error {
	w.batch = append(w.batch, rec)
	if len(w.batch) >= w.batchSize {
		return w.Flush()
	}
	return nil
}

// Flush writes the queued records inside a single transaction and clears
// the batch. Flushing an empty batch is a no-op; callers flush once more
// at the end of a level to drain the partial remainder.
func (w *BatchWriter) Flush() error {
	if len(w.batch) == 0 {
		return nil
	}

	tx, err := w.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning batch transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(w.upsertSQL())
	if err != nil {
		return fmt.Errorf("preparing upsert for %s: %w", w.level, err)
	}
	defer stmt.Close()

	for _, rec := range w.batch {
		args := make([]interface{}, 0, 10)
		args = append(args, rec.ID, rec.Name)
		if w.level.HasParent() {
			var parent sql.NullString
			if rec.ParentID != nil {
				parent = sql.NullString{String: *rec.ParentID, Valid: true}
			}
			args = append(args, parent)
		}
		args = append(args, rec.Lat, rec.Lng,
			rec.MinLat, rec.MaxLat, rec.MinLng, rec.MaxLng, rec.Boundaries)
		if _, err := stmt.Exec(args...); err != nil {
			return fmt.Errorf("upserting %s %q: %w", w.level, rec.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing batch for %s: %w", w.level, err)
	}
	w.batch = w.batch[:0]
	return nil
}

func (w *BatchWriter) upsertSQL() string {
	if w.level.HasParent() {
		return fmt.Sprintf(`INSERT OR REPLACE INTO %s
		(id, name, parent_id, lat, lng, min_lat, max_lat, min_lng, max_lng, boundaries)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`, w.level.TableName())
	}
	return fmt.Sprintf(`INSERT OR REPLACE INTO %s
	(id, name, lat, lng, min_lat, max_lat, min_lng, max_lng, boundaries)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`, w.level.TableName())
}
