package app

import (
	"fmt"
	"io"

	apperr "github.com/yungbote/cardealer/internal/pkg/errors"
	"github.com/yungbote/cardealer/internal/platform/dbctx"
)

// Run imports the configured datasets when asked to and writes the configured report to out.
func (a *App) Run(dbc dbctx.Context, out io.Writer) error {
	if a.Cfg.ImportOnStart {
		results, err := a.Services.Importer.ImportAll(dbc, a.Cfg.DatasetsDir, a.Cfg.Collections...)
		for _, res := range results {
			a.Log.Info(res.Message(), "collection", res.Collection)
		}
		if err != nil {
			return err
		}
	}

	name, ok := a.Services.Exporter.Lookup(a.Cfg.Report)
	if !ok {
		return fmt.Errorf("%w: %q (known: %v)", apperr.ErrUnknownReport, a.Cfg.Report, a.Services.Exporter.Names())
	}
	doc, err := a.Services.Exporter.Export(dbc, name)
	if err != nil {
		return err
	}
	if _, err := out.Write(append(doc, '\n')); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
