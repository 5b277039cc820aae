package app

import (
	"gorm.io/gorm"

	"github.com/yungbote/cardealer/internal/data/repos"
	"github.com/yungbote/cardealer/internal/platform/logger"
)

type Repos struct {
	Supplier   repos.SupplierRepo
	Part       repos.PartRepo
	Car        repos.CarRepo
	Customer   repos.CustomerRepo
	Sale       repos.SaleRepo
	Patient    repos.PatientRepo
	Visitation repos.VisitationRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		Supplier:   repos.NewSupplierRepo(db, log),
		Part:       repos.NewPartRepo(db, log),
		Car:        repos.NewCarRepo(db, log),
		Customer:   repos.NewCustomerRepo(db, log),
		Sale:       repos.NewSaleRepo(db, log),
		Patient:    repos.NewPatientRepo(db, log),
		Visitation: repos.NewVisitationRepo(db, log),
	}
}
