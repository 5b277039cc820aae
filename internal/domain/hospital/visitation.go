package hospital

import "time"

// VisitationCommentsMaxLen bounds Comments, counted in characters.
const VisitationCommentsMaxLen = 250

type Visitation struct {
	VisitationID uint      `gorm:"primaryKey;autoIncrement;column:visitation_id" json:"visitation_id"`
	Date         time.Time `gorm:"not null;column:date" json:"date"`
	Comments     string    `gorm:"size:250;not null;column:comments" json:"comments" validate:"required,max=250"`
	PatientID    uint      `gorm:"not null;index;column:patient_id" json:"patient_id" validate:"required"`
	Patient      *Patient  `json:"patient,omitempty" validate:"-"`
}

func (Visitation) TableName() string { return "visitations" }
