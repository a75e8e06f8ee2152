package sqldb

import (
	"database/sql"
	"fmt"

	"github.com/lintang-b-s/area-db/pkg/boundary"
)

// CreateSchema creates the four level tables plus a centroid index and a
// bounding-box index per table. It must run against the fresh database
// before any level is processed.
//
// parent_id is declared as a foreign key for documentation only; sqlite
// leaves enforcement off during the bulk load, and the level processing
// order already guarantees parents are committed first.
func CreateSchema(db *sql.DB) error {
	var stmts []string
	for _, level := range boundary.Levels() {
		table := level.TableName()
		stmts = append(stmts,
			createTableSQL(level),
			fmt.Sprintf("CREATE INDEX IF NOT EXISTS idx_%s_lat_lng ON %s(lat, lng)", table, table),
			fmt.Sprintf("CREATE INDEX IF NOT EXISTS idx_%s_bbox ON %s(min_lat, max_lat, min_lng, max_lng)", table, table),
		)
	}
	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("creating schema: %w", err)
		}
	}
	return nil
}

func createTableSQL(level boundary.Level) string {
	parentCol := ""
	parentFK := ""
	if level.HasParent() {
		parentCol = "\n\t\tparent_id TEXT,"
		parentFK = fmt.Sprintf(",\n\t\tFOREIGN KEY (parent_id) REFERENCES %s(id)", level.Parent().TableName())
	}
	return fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
		id TEXT PRIMARY KEY,
		name TEXT,%s
		lat REAL,
		lng REAL,
		min_lat REAL,
		max_lat REAL,
		min_lng REAL,
		max_lng REAL,
		boundaries BLOB%s
	)`, level.TableName(), parentCol, parentFK)
}
