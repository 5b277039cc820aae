package repos

import (
	"github.com/yungbote/cardealer/internal/data/repos/dealer"
	"github.com/yungbote/cardealer/internal/data/repos/hospital"
	"github.com/yungbote/cardealer/internal/platform/logger"
	"gorm.io/gorm"
)

type SupplierRepo = dealer.SupplierRepo
type PartRepo = dealer.PartRepo
type CarRepo = dealer.CarRepo
type CustomerRepo = dealer.CustomerRepo
type SaleRepo = dealer.SaleRepo

type PatientRepo = hospital.PatientRepo
type VisitationRepo = hospital.VisitationRepo

func NewSupplierRepo(db *gorm.DB, baseLog *logger.Logger) SupplierRepo {
	return dealer.NewSupplierRepo(db, baseLog)
}
func NewPartRepo(db *gorm.DB, baseLog *logger.Logger) PartRepo { return dealer.NewPartRepo(db, baseLog) }
func NewCarRepo(db *gorm.DB, baseLog *logger.Logger) CarRepo   { return dealer.NewCarRepo(db, baseLog) }
func NewCustomerRepo(db *gorm.DB, baseLog *logger.Logger) CustomerRepo {
	return dealer.NewCustomerRepo(db, baseLog)
}
func NewSaleRepo(db *gorm.DB, baseLog *logger.Logger) SaleRepo { return dealer.NewSaleRepo(db, baseLog) }

func NewPatientRepo(db *gorm.DB, baseLog *logger.Logger) PatientRepo {
	return hospital.NewPatientRepo(db, baseLog)
}
func NewVisitationRepo(db *gorm.DB, baseLog *logger.Logger) VisitationRepo {
	return hospital.NewVisitationRepo(db, baseLog)
}
