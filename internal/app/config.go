package app

import (
	"strings"

	"github.com/yungbote/cardealer/internal/data/db"
	"github.com/yungbote/cardealer/internal/dataset"
	"github.com/yungbote/cardealer/internal/platform/envutil"
	"github.com/yungbote/cardealer/internal/platform/logger"
	"github.com/yungbote/cardealer/internal/report"
)

type Config struct {
	DB db.Config

	DatasetsDir   string
	ImportOnStart bool
	// Collections imported on start, in order.
	Collections []dataset.Collection

	Report string
}

func LoadConfig(log *logger.Logger) Config {
	return Config{
		DB: db.Config{
			Driver:           envutil.String("DB_DRIVER", db.DriverSQLite, log),
			SQLitePath:       envutil.String("SQLITE_PATH", "cardealer.db", log),
			PostgresHost:     envutil.String("POSTGRES_HOST", "localhost", log),
			PostgresPort:     envutil.String("POSTGRES_PORT", "5432", log),
			PostgresUser:     envutil.String("POSTGRES_USER", "postgres", log),
			PostgresPassword: envutil.String("POSTGRES_PASSWORD", "", log),
			PostgresName:     envutil.String("POSTGRES_NAME", "cardealer", log),
			MaxOpenConns:     envutil.Int("DB_MAX_OPEN_CONNS", 0, log),
		},
		DatasetsDir:   envutil.String("DATASETS_DIR", "datasets", log),
		ImportOnStart: envutil.Bool("IMPORT_ON_START", false, log),
		Collections:   parseCollections(envutil.String("IMPORT_COLLECTIONS", "", log), log),
		Report:        envutil.String("REPORT", string(report.DefaultReport), log),
	}
}

// parseCollections reads a comma separated list of collections. "dealer" and "hospital" expand to
// their whole group in dependency order. Unknown names are skipped; an empty list means the dealership set.
func parseCollections(raw string, log *logger.Logger) []dataset.Collection {
	var out []dataset.Collection
	for _, part := range strings.Split(raw, ",") {
		name := strings.ToLower(strings.TrimSpace(part))
		switch name {
		case "":
			continue
		case "dealer":
			out = append(out, dataset.DealerOrder...)
			continue
		case "hospital":
			out = append(out, dataset.HospitalOrder...)
			continue
		}
		c, ok := dataset.ParseCollection(name)
		if !ok {
			if log != nil {
				log.Warn("Unknown collection in IMPORT_COLLECTIONS, skipping", "collection", part)
			}
			continue
		}
		out = append(out, c)
	}
	if len(out) == 0 {
		return append([]dataset.Collection(nil), dataset.DealerOrder...)
	}
	return out
}
