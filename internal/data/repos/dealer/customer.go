package dealer

import (
	"gorm.io/gorm"

	types "github.com/yungbote/cardealer/internal/domain"
	"github.com/yungbote/cardealer/internal/platform/dbctx"
	"github.com/yungbote/cardealer/internal/platform/logger"
)

type CustomerRepo interface {
	Create(dbc dbctx.Context, rows []*types.Customer) (int, error)
	ListIDs(dbc dbctx.Context) ([]uint, error)
	List(dbc dbctx.Context) ([]*types.Customer, error)
	// ListWithPurchases returns customers with at least one sale, loading Sales → Car → PartCars → Part.
	ListWithPurchases(dbc dbctx.Context) ([]*types.Customer, error)
}

type customerRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewCustomerRepo(db *gorm.DB, baseLog *logger.Logger) CustomerRepo {
	return &customerRepo{db: db, log: baseLog.With("repo", "CustomerRepo")}
}

func (r *customerRepo) Create(dbc dbctx.Context, rows []*types.Customer) (int, error) {
	return createBatch(dbc.Resolve(r.db), rows)
}

func (r *customerRepo) ListIDs(dbc dbctx.Context) ([]uint, error) {
	return pluckIDs(dbc.Resolve(r.db), &types.Customer{})
}

func (r *customerRepo) List(dbc dbctx.Context) ([]*types.Customer, error) {
	out := []*types.Customer{}
	if err := dbc.Resolve(r.db).Order("id").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *customerRepo) ListWithPurchases(dbc dbctx.Context) ([]*types.Customer, error) {
	out := []*types.Customer{}
	if err := dbc.Resolve(r.db).
		Preload("Sales", func(tx *gorm.DB) *gorm.DB { return tx.Order("id") }).
		Preload("Sales.Car").
		Preload("Sales.Car.PartCars", orderByPart).
		Preload("Sales.Car.PartCars.Part").
		Where("EXISTS (SELECT 1 FROM sales WHERE sales.customer_id = customers.id)").
		Order("id").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
