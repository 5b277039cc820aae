package dataset

import (
	"fmt"
	"strings"
	"time"

	types "github.com/yungbote/cardealer/internal/domain"
)

// dateLayouts are tried in order. The dealership files use the first one.
var dateLayouts = []string{
	"2006-01-02T15:04:05",
	time.RFC3339,
	"2006-01-02",
	"02/01/2006",
}

// ParseDate reads a dataset date as UTC. An empty string yields the zero time so
// that validation, not parsing, reports the missing value.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}

func MapSupplier(in SupplierImport) *types.Supplier {
	return &types.Supplier{
		Name:       strings.TrimSpace(in.Name),
		IsImporter: in.IsImporter,
	}
}

func MapPart(in PartImport) *types.Part {
	return &types.Part{
		Name:       strings.TrimSpace(in.Name),
		Price:      in.Price,
		Quantity:   in.Quantity,
		SupplierID: in.SupplierID,
	}
}

// MapCar builds the car and one PartCar per distinct part id, keeping first-seen order.
func MapCar(in CarImport) *types.Car {
	car := &types.Car{
		Make:              strings.TrimSpace(in.Make),
		Model:             strings.TrimSpace(in.Model),
		TravelledDistance: in.TravelledDistance,
	}
	seen := make(map[uint]struct{}, len(in.PartsID))
	for _, pid := range in.PartsID {
		if _, dup := seen[pid]; dup {
			continue
		}
		seen[pid] = struct{}{}
		car.PartCars = append(car.PartCars, &types.PartCar{PartID: pid})
	}
	return car
}

func MapCustomer(in CustomerImport) (*types.Customer, error) {
	birth, err := ParseDate(in.BirthDate)
	if err != nil {
		return nil, err
	}
	return &types.Customer{
		Name:          strings.TrimSpace(in.Name),
		BirthDate:     birth,
		IsYoungDriver: in.IsYoungDriver,
	}, nil
}

func MapSale(in SaleImport) *types.Sale {
	return &types.Sale{
		CarID:      in.CarID,
		CustomerID: in.CustomerID,
		Discount:   in.Discount,
	}
}

func MapPatient(in PatientImport) *types.Patient {
	return &types.Patient{
		FirstName:    strings.TrimSpace(in.FirstName),
		LastName:     strings.TrimSpace(in.LastName),
		Address:      strings.TrimSpace(in.Address),
		Email:        strings.TrimSpace(in.Email),
		HasInsurance: in.HasInsurance,
	}
}

func MapVisitation(in VisitationImport) (*types.Visitation, error) {
	date, err := ParseDate(in.Date)
	if err != nil {
		return nil, err
	}
	return &types.Visitation{
		Date:      date,
		Comments:  in.Comments,
		PatientID: in.PatientID,
	}, nil
}
