package config

import (
	"errors"

	"github.com/lintang-b-s/area-db/pkg/geo"
	"github.com/lintang-b-s/area-db/pkg/sqldb"

	"github.com/spf13/viper"
)

type Config struct {
	DataDir   string
	DBPath    string
	Tolerance float64
	BatchSize int
}

// New loads the defaults, overridden by an optional config.yaml in the
// working directory. The importer runs fine with no config file at all.
func New() (*Config, error) {
	viper.SetDefault("DATA_DIR", "./data")
	viper.SetDefault("DB_FILE", "indonesia_area.db")
	viper.SetDefault("SIMPLIFY_TOLERANCE", geo.DefaultTolerance)
	viper.SetDefault("BATCH_SIZE", sqldb.DefaultBatchSize)

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	return &Config{
		DataDir:   viper.GetString("DATA_DIR"),
		DBPath:    viper.GetString("DB_FILE"),
		Tolerance: viper.GetFloat64("SIMPLIFY_TOLERANCE"),
		BatchSize: viper.GetInt("BATCH_SIZE"),
	}, nil
}
