package boundary

// Level is one of the four Indonesian administrative levels stored in the
// output database. The enumeration carries everything level-specific
// (table name, source directory, id depth, parent linkage) so the pipeline
// and schema never branch on ad hoc "has parent" flags.
type Level int

const (
	Province Level = iota
	Regency
	District
	Village
)

// Levels returns the levels in processing order. Parent rows must be
// committed before any child level starts, so the order is significant.
func Levels() []Level {
	return []Level{Province, Regency, District, Village}
}

func (l Level) String() string {
	return l.TableName()
}

// TableName is the output table for the level.
func (l Level) TableName() string {
	switch l {
	case Province:
		return "provinces"
	case Regency:
		return "regencies"
	case District:
		return "districts"
	default:
		return "villages"
	}
}

// DirName is the source subdirectory holding the level's geojson files,
// one file per administrative unit.
func (l Level) DirName() string {
	return l.TableName()
}

// HasParent reports whether the level's table carries a parent_id column.
// Provinces are the hierarchy root.
func (l Level) HasParent() bool {
	return l != Province
}

// Depth is the expected number of dot-delimited id segments for the level.
// "32" is a province (1), "32.12.02" a district (3).
func (l Level) Depth() int {
	return int(l) + 1
}

// Parent returns the level above. Only meaningful for non-root levels.
func (l Level) Parent() Level {
	return l - 1
}
