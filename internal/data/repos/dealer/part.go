package dealer

import (
	"gorm.io/gorm"

	types "github.com/yungbote/cardealer/internal/domain"
	"github.com/yungbote/cardealer/internal/platform/dbctx"
	"github.com/yungbote/cardealer/internal/platform/logger"
)

type PartRepo interface {
	Create(dbc dbctx.Context, rows []*types.Part) (int, error)
	ListIDs(dbc dbctx.Context) ([]uint, error)
}

type partRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewPartRepo(db *gorm.DB, baseLog *logger.Logger) PartRepo {
	return &partRepo{db: db, log: baseLog.With("repo", "PartRepo")}
}

func (r *partRepo) Create(dbc dbctx.Context, rows []*types.Part) (int, error) {
	return createBatch(dbc.Resolve(r.db), rows)
}

func (r *partRepo) ListIDs(dbc dbctx.Context) ([]uint, error) {
	return pluckIDs(dbc.Resolve(r.db), &types.Part{})
}
