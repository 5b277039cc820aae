package testutil

import (
	"testing"
	"time"

	types "github.com/yungbote/cardealer/internal/domain"
	"gorm.io/gorm"
)

func SeedSupplier(tb testing.TB, tx *gorm.DB, name string, isImporter bool) *types.Supplier {
	tb.Helper()
	s := &types.Supplier{Name: name, IsImporter: isImporter}
	if err := tx.Create(s).Error; err != nil {
		tb.Fatalf("seed supplier: %v", err)
	}
	return s
}

func SeedPart(tb testing.TB, tx *gorm.DB, supplierID uint, name string, price float64) *types.Part {
	tb.Helper()
	p := &types.Part{Name: name, Price: price, Quantity: 1, SupplierID: supplierID}
	if err := tx.Create(p).Error; err != nil {
		tb.Fatalf("seed part: %v", err)
	}
	return p
}

func SeedCar(tb testing.TB, tx *gorm.DB, carMake, model string, distance int64, partIDs ...uint) *types.Car {
	tb.Helper()
	c := &types.Car{Make: carMake, Model: model, TravelledDistance: distance}
	for _, pid := range partIDs {
		c.PartCars = append(c.PartCars, &types.PartCar{PartID: pid})
	}
	if err := tx.Create(c).Error; err != nil {
		tb.Fatalf("seed car: %v", err)
	}
	return c
}

func SeedCustomer(tb testing.TB, tx *gorm.DB, name string, birthDate time.Time, young bool) *types.Customer {
	tb.Helper()
	c := &types.Customer{Name: name, BirthDate: birthDate, IsYoungDriver: young}
	if err := tx.Create(c).Error; err != nil {
		tb.Fatalf("seed customer: %v", err)
	}
	return c
}

func SeedSale(tb testing.TB, tx *gorm.DB, carID, customerID uint, discount float64) *types.Sale {
	tb.Helper()
	s := &types.Sale{CarID: carID, CustomerID: customerID, Discount: discount}
	if err := tx.Create(s).Error; err != nil {
		tb.Fatalf("seed sale: %v", err)
	}
	return s
}

func SeedPatient(tb testing.TB, tx *gorm.DB, first, last string) *types.Patient {
	tb.Helper()
	p := &types.Patient{FirstName: first, LastName: last, Address: "Main St 1", Email: "p@example.com"}
	if err := tx.Create(p).Error; err != nil {
		tb.Fatalf("seed patient: %v", err)
	}
	return p
}

func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
