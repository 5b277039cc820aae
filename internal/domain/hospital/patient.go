package hospital

type Patient struct {
	PatientID    uint          `gorm:"primaryKey;autoIncrement;column:patient_id" json:"patient_id"`
	FirstName    string        `gorm:"size:50;not null;column:first_name" json:"first_name" validate:"required,max=50"`
	LastName     string        `gorm:"size:50;not null;column:last_name" json:"last_name" validate:"required,max=50"`
	Address      string        `gorm:"size:250;column:address" json:"address" validate:"max=250"`
	Email        string        `gorm:"size:80;column:email" json:"email" validate:"omitempty,email,max=80"`
	HasInsurance bool          `gorm:"not null;column:has_insurance" json:"has_insurance"`
	Visitations  []*Visitation `gorm:"foreignKey:PatientID;references:PatientID" json:"visitations,omitempty" validate:"-"`
}

func (Patient) TableName() string { return "patients" }
