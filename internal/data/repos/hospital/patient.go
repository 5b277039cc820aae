package hospital

import (
	"gorm.io/gorm"

	types "github.com/yungbote/cardealer/internal/domain"
	"github.com/yungbote/cardealer/internal/platform/dbctx"
	"github.com/yungbote/cardealer/internal/platform/logger"
)

type PatientRepo interface {
	Create(dbc dbctx.Context, rows []*types.Patient) (int, error)
	ListIDs(dbc dbctx.Context) ([]uint, error)
}

type patientRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewPatientRepo(db *gorm.DB, baseLog *logger.Logger) PatientRepo {
	return &patientRepo{db: db, log: baseLog.With("repo", "PatientRepo")}
}

func (r *patientRepo) Create(dbc dbctx.Context, rows []*types.Patient) (int, error) {
	if len(rows) == 0 {
		return 0, nil
	}
	if err := dbc.Resolve(r.db).Create(&rows).Error; err != nil {
		return 0, err
	}
	return len(rows), nil
}

func (r *patientRepo) ListIDs(dbc dbctx.Context) ([]uint, error) {
	ids := []uint{}
	if err := dbc.Resolve(r.db).
		Model(&types.Patient{}).
		Order("patient_id").
		Pluck("patient_id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}
