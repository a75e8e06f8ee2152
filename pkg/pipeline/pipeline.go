package pipeline

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/lintang-b-s/area-db/pkg/boundary"
	"github.com/lintang-b-s/area-db/pkg/geo"
	"github.com/lintang-b-s/area-db/pkg/sqldb"

	"github.com/k0kubun/go-ansi"
	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"
)

const progressEvery = 1000

// Importer drives the whole ingestion: the four levels in hierarchical
// order, each level fully committed before the next starts so parent ids
// always exist when children reference them. Strictly sequential.
type Importer struct {
	db        *sql.DB
	log       *zap.Logger
	dataDir   string
	tolerance float64
	batchSize int
}

func NewImporter(db *sql.DB, log *zap.Logger, dataDir string, tolerance float64, batchSize int) *Importer {
	if tolerance <= 0 {
		tolerance = geo.DefaultTolerance
	}
	return &Importer{
		db:        db,
		log:       log,
		dataDir:   dataDir,
		tolerance: tolerance,
		batchSize: batchSize,
	}
}

// Run processes all four levels in order. A storage failure aborts the
// run; a bad source file only skips that file.
func (im *Importer) Run() error {
	for step, level := range boundary.Levels() {
		if err := im.processLevel(step, level); err != nil {
			return err
		}
	}
	im.log.Info("database creation completed successfully")
	return nil
}

func (im *Importer) processLevel(step int, level boundary.Level) error {
	pattern := filepath.Join(im.dataDir, level.DirName(), "*.geojson")
	files, err := filepath.Glob(pattern)
	if err != nil {
		return fmt.Errorf("listing %s: %w", pattern, err)
	}

	im.log.Info("processing level",
		zap.String("level", level.String()),
		zap.Int("files", len(files)))

	bar := progressbar.NewOptions(len(files),
		progressbar.OptionSetWriter(ansi.NewAnsiStdout()),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWidth(15),
		progressbar.OptionSetDescription(fmt.Sprintf("[cyan][%d/4][reset] Importing %s...", step+1, level)),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}))

	writer := sqldb.NewBatchWriter(im.db, level, im.batchSize)
	count := 0
	for _, path := range files {
		bar.Add(1)

		rec, err := im.processFile(level, path)
		if err != nil {
			im.log.Warn("skipping boundary file",
				zap.String("file", path),
				zap.Error(err))
			continue
		}
		if err := writer.Append(rec); err != nil {
			return err
		}
		count++
		if count%progressEvery == 0 {
			im.log.Info("processed records",
				zap.String("level", level.String()),
				zap.Int("count", count),
				zap.Int("total", len(files)))
		}
	}
	if err := writer.Flush(); err != nil {
		return err
	}

	im.log.Info("finished level",
		zap.String("level", level.String()),
		zap.Int("inserted", count),
		zap.Int("skipped", len(files)-count))
	return nil
}

// processFile turns one geojson file into a row for the level's table.
// Every failure here is local to the file.
func (im *Importer) processFile(level boundary.Level, path string) (boundary.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return boundary.Record{}, fmt.Errorf("reading file: %w", err)
	}

	feature, err := geo.ParseFeature(data)
	if err != nil {
		return boundary.Record{}, err
	}

	normalized, err := geo.Normalize(feature.Geometry, im.tolerance)
	if err != nil {
		return boundary.Record{}, err
	}

	id, name, parentID := boundary.Resolve(im.log, level, path, feature.Properties)

	return boundary.Record{
		ID:         id,
		Name:       name,
		ParentID:   parentID,
		Lat:        normalized.Lat,
		Lng:        normalized.Lng,
		MinLat:     normalized.MinLat,
		MaxLat:     normalized.MaxLat,
		MinLng:     normalized.MinLng,
		MaxLng:     normalized.MaxLng,
		Boundaries: normalized.WKB,
	}, nil
}
