package dealer

import "time"

type Customer struct {
	ID            uint      `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	Name          string    `gorm:"not null;column:name" json:"name" validate:"required"`
	BirthDate     time.Time `gorm:"not null;column:birth_date" json:"birth_date"`
	IsYoungDriver bool      `gorm:"not null;column:is_young_driver" json:"is_young_driver"`
	Sales         []*Sale   `gorm:"foreignKey:CustomerID" json:"sales,omitempty" validate:"-"`
}

func (Customer) TableName() string { return "customers" }
