package boundary

import (
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const geojsonExt = ".geojson"

// source names are plain ASCII case soup, so the caser is locale-naive
var titleCaser = cases.Title(language.Und)

// IDFromFilename derives the hierarchical id from the source file name.
// Ids themselves are dot-delimited ("32.12.02.2007.geojson"), so only the
// literal .geojson suffix is stripped; filepath.Ext would eat the last id
// segment instead.
func IDFromFilename(path string) string {
	return strings.TrimSuffix(filepath.Base(path), geojsonExt)
}

// NormalizeName converts inconsistent source casing to title case,
// e.g. "JAWA BARAT" -> "Jawa Barat".
func NormalizeName(name string) string {
	if name == "" {
		return ""
	}
	return titleCaser.String(name)
}

// ParentID strips the trailing dot segment: "32.12.02.2007" -> "32.12.02".
// An id without a dot has no derivable parent and yields nil.
func ParentID(id string) *string {
	idx := strings.LastIndex(id, ".")
	if idx < 0 {
		return nil
	}
	parent := id[:idx]
	return &parent
}

// Resolve produces the canonical identity for one source file: the id from
// the filename (falling back to the "code" property when the filename
// yields nothing), the title-cased display name, and the derived parent id
// for non-root levels.
//
// Ids whose segment count does not match the level's expected depth are
// still ingested, but reported through the log so broken linkage shows up
// instead of silently detaching records from the hierarchy.
func Resolve(log *zap.Logger, level Level, path string, props map[string]interface{}) (id, name string, parentID *string) {
	id = IDFromFilename(path)
	if id == "" {
		if code, ok := props["code"].(string); ok {
			id = code
		}
	}
	if id == "" {
		log.Warn("record has no id",
			zap.String("file", path),
			zap.String("level", level.String()))
	}

	if n, ok := props["name"].(string); ok {
		name = NormalizeName(n)
	}

	if depth := strings.Count(id, ".") + 1; id != "" && depth != level.Depth() {
		log.Warn("id depth does not match level",
			zap.String("id", id),
			zap.String("level", level.String()),
			zap.Int("expected_segments", level.Depth()),
			zap.Int("actual_segments", depth))
	}

	if level.HasParent() {
		parentID = ParentID(id)
	}
	return id, name, parentID
}
