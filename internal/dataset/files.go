package dataset

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/yungbote/cardealer/internal/platform/dbctx"
)

// ImportAll reads <dir>/<collection>.json for each collection in order, DealerOrder by default.
// Missing files are skipped; any other failure stops the run and returns what was imported so far.
func (im *Importer) ImportAll(dbc dbctx.Context, dir string, order ...Collection) ([]Result, error) {
	if len(order) == 0 {
		order = DealerOrder
	}
	results := make([]Result, 0, len(order))
	for _, c := range order {
		path := filepath.Join(dir, c.FileName())
		raw, err := os.ReadFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			im.log.Warn("Dataset file not found, skipping", "collection", c, "path", path)
			continue
		}
		if err != nil {
			return results, fmt.Errorf("read %s: %w", path, err)
		}
		res, err := im.ImportCollection(dbc, c, raw)
		if err != nil {
			return results, fmt.Errorf("import %s: %w", c, err)
		}
		results = append(results, res)
	}
	return results, nil
}
