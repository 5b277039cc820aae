package dealer

type Part struct {
	ID         uint      `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	Name       string    `gorm:"not null;column:name" json:"name"`
	Price      float64   `gorm:"not null;column:price" json:"price" validate:"gte=0"`
	Quantity   int       `gorm:"not null;column:quantity" json:"quantity" validate:"gte=0"`
	SupplierID uint      `gorm:"not null;index;column:supplier_id" json:"supplier_id" validate:"required"`
	Supplier   *Supplier `gorm:"foreignKey:SupplierID" json:"supplier,omitempty" validate:"-"`
}

func (Part) TableName() string { return "parts" }
