package dealer

import (
	"gorm.io/gorm"

	types "github.com/yungbote/cardealer/internal/domain"
	"github.com/yungbote/cardealer/internal/platform/dbctx"
	"github.com/yungbote/cardealer/internal/platform/logger"
)

type SaleRepo interface {
	Create(dbc dbctx.Context, rows []*types.Sale) (int, error)
	// ListFirstWithDetails takes the first limit sales by id and loads Customer and Car → PartCars → Part.
	// A limit <= 0 returns every sale.
	ListFirstWithDetails(dbc dbctx.Context, limit int) ([]*types.Sale, error)
}

type saleRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewSaleRepo(db *gorm.DB, baseLog *logger.Logger) SaleRepo {
	return &saleRepo{db: db, log: baseLog.With("repo", "SaleRepo")}
}

func (r *saleRepo) Create(dbc dbctx.Context, rows []*types.Sale) (int, error) {
	return createBatch(dbc.Resolve(r.db), rows)
}

func (r *saleRepo) ListFirstWithDetails(dbc dbctx.Context, limit int) ([]*types.Sale, error) {
	out := []*types.Sale{}
	q := dbc.Resolve(r.db).
		Preload("Customer").
		Preload("Car").
		Preload("Car.PartCars", orderByPart).
		Preload("Car.PartCars.Part").
		Order("id")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
