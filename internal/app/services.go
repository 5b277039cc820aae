package app

import (
	"gorm.io/gorm"

	"github.com/yungbote/cardealer/internal/dataset"
	"github.com/yungbote/cardealer/internal/platform/logger"
	"github.com/yungbote/cardealer/internal/report"
)

type Services struct {
	Importer *dataset.Importer
	Exporter *report.Exporter
}

func wireServices(db *gorm.DB, log *logger.Logger, r Repos) Services {
	log.Info("Wiring services...")
	importer := dataset.NewImporter(db, log, dataset.Repos{
		Supplier:   r.Supplier,
		Part:       r.Part,
		Car:        r.Car,
		Customer:   r.Customer,
		Sale:       r.Sale,
		Patient:    r.Patient,
		Visitation: r.Visitation,
	})
	exporter := report.NewExporter(report.NewRepoStore(r.Customer, r.Car, r.Supplier, r.Sale), log)
	return Services{Importer: importer, Exporter: exporter}
}
