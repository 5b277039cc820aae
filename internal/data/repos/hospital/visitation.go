package hospital

import (
	"gorm.io/gorm"

	types "github.com/yungbote/cardealer/internal/domain"
	"github.com/yungbote/cardealer/internal/platform/dbctx"
	"github.com/yungbote/cardealer/internal/platform/logger"
)

type VisitationRepo interface {
	Create(dbc dbctx.Context, rows []*types.Visitation) (int, error)
}

type visitationRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewVisitationRepo(db *gorm.DB, baseLog *logger.Logger) VisitationRepo {
	return &visitationRepo{db: db, log: baseLog.With("repo", "VisitationRepo")}
}

func (r *visitationRepo) Create(dbc dbctx.Context, rows []*types.Visitation) (int, error) {
	if len(rows) == 0 {
		return 0, nil
	}
	if err := dbc.Resolve(r.db).Create(&rows).Error; err != nil {
		return 0, err
	}
	return len(rows), nil
}
