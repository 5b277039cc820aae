package dealer

type Supplier struct {
	ID         uint    `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	Name       string  `gorm:"not null;column:name" json:"name"`
	IsImporter bool    `gorm:"not null;column:is_importer" json:"is_importer"`
	Parts      []*Part `gorm:"foreignKey:SupplierID" json:"parts,omitempty" validate:"-"`
}

func (Supplier) TableName() string { return "suppliers" }
