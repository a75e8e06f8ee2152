package main

import (
	"flag"
	"log"

	"github.com/lintang-b-s/area-db/pkg/config"
	"github.com/lintang-b-s/area-db/pkg/logger"
	"github.com/lintang-b-s/area-db/pkg/pipeline"
	"github.com/lintang-b-s/area-db/pkg/sqldb"
)

var (
	dataDir = flag.String("d", "", "directory with provinces/, regencies/, districts/, villages/ geojson subdirectories")
	dbFile  = flag.String("o", "", "output sqlite database file")
)

func main() {
	flag.Parse()
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

// run keeps every resource behind a defer so the database handle is
// released on success and failure alike.
func run() error {
	cfg, err := config.New()
	if err != nil {
		return err
	}
	if *dataDir != "" {
		cfg.DataDir = *dataDir
	}
	if *dbFile != "" {
		cfg.DBPath = *dbFile
	}

	zlog, cleanup, err := logger.New()
	if err != nil {
		return err
	}
	defer cleanup()

	db, err := sqldb.Open(cfg.DBPath, zlog)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := sqldb.CreateSchema(db); err != nil {
		return err
	}

	importer := pipeline.NewImporter(db, zlog, cfg.DataDir, cfg.Tolerance, cfg.BatchSize)
	return importer.Run()
}
