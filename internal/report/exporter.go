package report

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	apperr "github.com/yungbote/cardealer/internal/pkg/errors"
	"github.com/yungbote/cardealer/internal/platform/dbctx"
	"github.com/yungbote/cardealer/internal/platform/logger"
)

type Exporter struct {
	store   Store
	log     *logger.Logger
	reports map[Name]Report
	names   []Name
}

func NewExporter(store Store, baseLog *logger.Logger) *Exporter {
	e := &Exporter{
		store:   store,
		log:     baseLog.With("service", "Exporter"),
		reports: map[Name]Report{},
	}
	for _, r := range builtin() {
		e.reports[r.Name] = r
		e.names = append(e.names, r.Name)
	}
	return e
}

// Names lists the registered reports in declaration order.
func (e *Exporter) Names() []Name {
	return append([]Name(nil), e.names...)
}

// Lookup resolves a report name case-insensitively.
func (e *Exporter) Lookup(name string) (Name, bool) {
	n := Name(strings.ToLower(strings.TrimSpace(name)))
	_, ok := e.reports[n]
	return n, ok
}

// Export runs the named report and returns its JSON document.
func (e *Exporter) Export(dbc dbctx.Context, name Name) ([]byte, error) {
	r, ok := e.reports[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", apperr.ErrUnknownReport, name)
	}
	runID := uuid.NewString()
	rows, err := r.Build(dbc, e.store)
	if err != nil {
		e.log.Error("Report query failed", "run_id", runID, "report", name, "error", err)
		return nil, fmt.Errorf("report %s: %w", name, err)
	}
	out, err := r.Format.Marshal(rows)
	if err != nil {
		e.log.Error("Report serialization failed", "run_id", runID, "report", name, "error", err)
		return nil, fmt.Errorf("report %s: %w", name, err)
	}
	e.log.Info("Exported report",
		"run_id", runID,
		"report", name,
		"naming", r.Format.Naming,
		"bytes", len(out),
	)
	return out, nil
}
