package dealer

type Car struct {
	ID                uint       `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	Make              string     `gorm:"not null;index;column:make" json:"make"`
	Model             string     `gorm:"not null;column:model" json:"model"`
	TravelledDistance int64      `gorm:"not null;column:travelled_distance" json:"travelled_distance" validate:"gte=0"`
	PartCars          []*PartCar `gorm:"foreignKey:CarID" json:"part_cars,omitempty" validate:"-"`
}

func (Car) TableName() string { return "cars" }

// PartsPrice sums the prices of the loaded parts. Unloaded parts count as zero.
func (c *Car) PartsPrice() float64 {
	if c == nil {
		return 0
	}
	total := 0.0
	for _, pc := range c.PartCars {
		if pc == nil || pc.Part == nil {
			continue
		}
		total += pc.Part.Price
	}
	return total
}

// PartCar joins a car to one of its parts. (CarID, PartID) is the identity.
type PartCar struct {
	CarID  uint  `gorm:"primaryKey;autoIncrement:false;column:car_id" json:"car_id"`
	PartID uint  `gorm:"primaryKey;autoIncrement:false;index;column:part_id" json:"part_id"`
	Car    *Car  `gorm:"foreignKey:CarID" json:"-" validate:"-"`
	Part   *Part `gorm:"foreignKey:PartID" json:"part,omitempty" validate:"-"`
}

func (PartCar) TableName() string { return "part_cars" }
