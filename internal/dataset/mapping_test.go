package dataset

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	got, err := ParseDate("1993-11-20T00:00:00")
	require.NoError(t, err)
	assert.Equal(t, time.Date(1993, 11, 20, 0, 0, 0, 0, time.UTC), got)

	got, err = ParseDate("2001-02-03")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2001, 2, 3, 0, 0, 0, 0, time.UTC), got)

	got, err = ParseDate("  ")
	require.NoError(t, err)
	assert.True(t, got.IsZero())

	_, err = ParseDate("20th of November")
	assert.Error(t, err)
}

func TestMapCarDeduplicatesParts(t *testing.T) {
	car := MapCar(CarImport{Make: " Opel ", Model: "Omega", TravelledDistance: 176664996, PartsID: []uint{38, 102, 38, 23, 102}})

	assert.Equal(t, "Opel", car.Make)
	assert.Equal(t, int64(176664996), car.TravelledDistance)
	require.Len(t, car.PartCars, 3)
	assert.Equal(t, uint(38), car.PartCars[0].PartID)
	assert.Equal(t, uint(102), car.PartCars[1].PartID)
	assert.Equal(t, uint(23), car.PartCars[2].PartID)
}

func TestMapCarWithoutParts(t *testing.T) {
	car := MapCar(CarImport{Make: "BMW", Model: "X5"})
	assert.Empty(t, car.PartCars)
}

func TestMapCustomer(t *testing.T) {
	c, err := MapCustomer(CustomerImport{Name: "Emmitt Benally", BirthDate: "1993-11-20T00:00:00", IsYoungDriver: true})
	require.NoError(t, err)
	assert.Equal(t, "Emmitt Benally", c.Name)
	assert.Equal(t, 1993, c.BirthDate.Year())
	assert.True(t, c.IsYoungDriver)

	_, err = MapCustomer(CustomerImport{Name: "X", BirthDate: "not a date"})
	assert.Error(t, err)
}

func TestMapSupplierPartSale(t *testing.T) {
	s := MapSupplier(SupplierImport{Name: "3M Company", IsImporter: true})
	assert.Equal(t, "3M Company", s.Name)
	assert.True(t, s.IsImporter)

	p := MapPart(PartImport{Name: "Bonnet/hood", Price: 1001.34, Quantity: 10, SupplierID: 17})
	assert.Equal(t, 1001.34, p.Price)
	assert.Equal(t, 10, p.Quantity)
	assert.Equal(t, uint(17), p.SupplierID)

	sale := MapSale(SaleImport{CarID: 105, CustomerID: 30, Discount: 30})
	assert.Equal(t, uint(105), sale.CarID)
	assert.Equal(t, uint(30), sale.CustomerID)
	assert.Equal(t, 30.0, sale.Discount)
}

func TestMapPatientAndVisitation(t *testing.T) {
	p := MapPatient(PatientImport{FirstName: " Ada ", LastName: "Lovelace", Email: "ada@example.com", HasInsurance: true})
	assert.Equal(t, "Ada", p.FirstName)
	assert.True(t, p.HasInsurance)

	v, err := MapVisitation(VisitationImport{Date: "2020-01-05T10:30:00", Comments: "checkup", PatientID: 4})
	require.NoError(t, err)
	assert.Equal(t, 10, v.Date.Hour())
	assert.Equal(t, uint(4), v.PatientID)
}
