package dealer

// Sale records one car sold to one customer. Discount is a percentage.
type Sale struct {
	ID         uint      `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	Discount   float64   `gorm:"not null;column:discount" json:"discount" validate:"gte=0,lte=100"`
	CarID      uint      `gorm:"not null;index;column:car_id" json:"car_id" validate:"required"`
	Car        *Car      `gorm:"foreignKey:CarID" json:"car,omitempty" validate:"-"`
	CustomerID uint      `gorm:"not null;index;column:customer_id" json:"customer_id" validate:"required"`
	Customer   *Customer `gorm:"foreignKey:CustomerID" json:"customer,omitempty" validate:"-"`
}

func (Sale) TableName() string { return "sales" }

// Price is the summed part price of the sold car.
func (s *Sale) Price() float64 {
	if s == nil {
		return 0
	}
	return s.Car.PartsPrice()
}

// PriceWithDiscount applies Discount to Price at full precision.
func (s *Sale) PriceWithDiscount() float64 {
	price := s.Price()
	if s == nil {
		return price
	}
	return price - price*(s.Discount/100)
}
