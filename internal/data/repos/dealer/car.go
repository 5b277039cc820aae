package dealer

import (
	"gorm.io/gorm"

	types "github.com/yungbote/cardealer/internal/domain"
	"github.com/yungbote/cardealer/internal/platform/dbctx"
	"github.com/yungbote/cardealer/internal/platform/logger"
)

type CarRepo interface {
	// Create inserts cars together with their PartCars; the count covers cars only.
	Create(dbc dbctx.Context, rows []*types.Car) (int, error)
	ListIDs(dbc dbctx.Context) ([]uint, error)
	Count(dbc dbctx.Context) (int64, error)
	ListByMake(dbc dbctx.Context, carMake string) ([]*types.Car, error)
	ListWithParts(dbc dbctx.Context) ([]*types.Car, error)
}

type carRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewCarRepo(db *gorm.DB, baseLog *logger.Logger) CarRepo {
	return &carRepo{db: db, log: baseLog.With("repo", "CarRepo")}
}

func (r *carRepo) Create(dbc dbctx.Context, rows []*types.Car) (int, error) {
	return createBatch(dbc.Resolve(r.db), rows)
}

func (r *carRepo) ListIDs(dbc dbctx.Context) ([]uint, error) {
	return pluckIDs(dbc.Resolve(r.db), &types.Car{})
}

func (r *carRepo) Count(dbc dbctx.Context) (int64, error) {
	var n int64
	if err := dbc.Resolve(r.db).Model(&types.Car{}).Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}

// ListByMake matches the whole make ignoring case, so "toyota" matches "Toyota" but "Toyotas" does not.
func (r *carRepo) ListByMake(dbc dbctx.Context, carMake string) ([]*types.Car, error) {
	out := []*types.Car{}
	if err := dbc.Resolve(r.db).
		Where("LOWER(make) = LOWER(?)", carMake).
		Order("id").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *carRepo) ListWithParts(dbc dbctx.Context) ([]*types.Car, error) {
	out := []*types.Car{}
	if err := dbc.Resolve(r.db).
		Preload("PartCars", orderByPart).
		Preload("PartCars.Part").
		Order("id").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func orderByPart(tx *gorm.DB) *gorm.DB {
	return tx.Order("part_id")
}
