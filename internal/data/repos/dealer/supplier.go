package dealer

import (
	"gorm.io/gorm"

	types "github.com/yungbote/cardealer/internal/domain"
	"github.com/yungbote/cardealer/internal/platform/dbctx"
	"github.com/yungbote/cardealer/internal/platform/logger"
)

type SupplierRepo interface {
	Create(dbc dbctx.Context, rows []*types.Supplier) (int, error)
	ListIDs(dbc dbctx.Context) ([]uint, error)
	ListLocalWithParts(dbc dbctx.Context) ([]*types.Supplier, error)
}

type supplierRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewSupplierRepo(db *gorm.DB, baseLog *logger.Logger) SupplierRepo {
	return &supplierRepo{db: db, log: baseLog.With("repo", "SupplierRepo")}
}

func (r *supplierRepo) Create(dbc dbctx.Context, rows []*types.Supplier) (int, error) {
	return createBatch(dbc.Resolve(r.db), rows)
}

func (r *supplierRepo) ListIDs(dbc dbctx.Context) ([]uint, error) {
	return pluckIDs(dbc.Resolve(r.db), &types.Supplier{})
}

// ListLocalWithParts returns non-importing suppliers in id order with their parts loaded.
func (r *supplierRepo) ListLocalWithParts(dbc dbctx.Context) ([]*types.Supplier, error) {
	out := []*types.Supplier{}
	if err := dbc.Resolve(r.db).
		Preload("Parts").
		Where("is_importer = ?", false).
		Order("id").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
