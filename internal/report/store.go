package report

import (
	"github.com/yungbote/cardealer/internal/data/repos"
	types "github.com/yungbote/cardealer/internal/domain"
	"github.com/yungbote/cardealer/internal/platform/dbctx"
)

// Store is the read side the reports need. Each method returns its relations already loaded.
type Store interface {
	Customers(dbc dbctx.Context) ([]*types.Customer, error)
	CustomersWithPurchases(dbc dbctx.Context) ([]*types.Customer, error)
	CarsByMake(dbc dbctx.Context, carMake string) ([]*types.Car, error)
	CarsWithParts(dbc dbctx.Context) ([]*types.Car, error)
	LocalSuppliers(dbc dbctx.Context) ([]*types.Supplier, error)
	SalesWithCarAndCustomer(dbc dbctx.Context, limit int) ([]*types.Sale, error)
}

type repoStore struct {
	customers repos.CustomerRepo
	cars      repos.CarRepo
	suppliers repos.SupplierRepo
	sales     repos.SaleRepo
}

func NewRepoStore(customers repos.CustomerRepo, cars repos.CarRepo, suppliers repos.SupplierRepo, sales repos.SaleRepo) Store {
	return &repoStore{customers: customers, cars: cars, suppliers: suppliers, sales: sales}
}

func (s *repoStore) Customers(dbc dbctx.Context) ([]*types.Customer, error) {
	return s.customers.List(dbc)
}

func (s *repoStore) CustomersWithPurchases(dbc dbctx.Context) ([]*types.Customer, error) {
	return s.customers.ListWithPurchases(dbc)
}

func (s *repoStore) CarsByMake(dbc dbctx.Context, carMake string) ([]*types.Car, error) {
	return s.cars.ListByMake(dbc, carMake)
}

func (s *repoStore) CarsWithParts(dbc dbctx.Context) ([]*types.Car, error) {
	return s.cars.ListWithParts(dbc)
}

func (s *repoStore) LocalSuppliers(dbc dbctx.Context) ([]*types.Supplier, error) {
	return s.suppliers.ListLocalWithParts(dbc)
}

func (s *repoStore) SalesWithCarAndCustomer(dbc dbctx.Context, limit int) ([]*types.Sale, error) {
	return s.sales.ListFirstWithDetails(dbc, limit)
}
