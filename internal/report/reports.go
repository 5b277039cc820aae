package report

import (
	"sort"
	"strconv"
	"time"

	types "github.com/yungbote/cardealer/internal/domain"
	"github.com/yungbote/cardealer/internal/platform/dbctx"
)

type Name string

const (
	OrderedCustomers   Name = "ordered-customers"
	ToyotaCars         Name = "toyota-cars"
	LocalSuppliers     Name = "local-suppliers"
	CarsWithParts      Name = "cars-with-parts"
	CustomerTotalSales Name = "customer-total-sales"
	SalesDiscounted    Name = "sales-discounted"
)

// DefaultReport is exported when no report is named.
const DefaultReport = SalesDiscounted

const (
	toyotaMake     = "Toyota"
	discountedRows = 10
	dayMonthYear   = "02/01/2006"
)

// Report couples a query-and-project step with the format its rows are written in.
type Report struct {
	Name   Name
	Format Format
	Build  func(dbc dbctx.Context, s Store) (any, error)
}

func builtin() []Report {
	pascal := Format{OmitNulls: true, Naming: AsDeclared, Indent: true}
	dated := pascal
	dated.DateLayout = dayMonthYear
	camel := Format{OmitNulls: true, Naming: CamelCase, Indent: true}
	return []Report{
		{Name: OrderedCustomers, Format: dated, Build: buildOrderedCustomers},
		{Name: ToyotaCars, Format: pascal, Build: buildToyotaCars},
		{Name: LocalSuppliers, Format: pascal, Build: buildLocalSuppliers},
		{Name: CarsWithParts, Format: pascal, Build: buildCarsWithParts},
		{Name: CustomerTotalSales, Format: camel, Build: buildCustomerTotalSales},
		{Name: SalesDiscounted, Format: pascal, Build: buildSalesDiscounted},
	}
}

type CustomerRow struct {
	ID            uint `json:"Id"`
	Name          string
	BirthDate     time.Time
	IsYoungDriver bool
}

func buildOrderedCustomers(dbc dbctx.Context, s Store) (any, error) {
	customers, err := s.Customers(dbc)
	if err != nil {
		return nil, err
	}
	rows := make([]CustomerRow, 0, len(customers))
	for _, c := range customers {
		rows = append(rows, CustomerRow{ID: c.ID, Name: c.Name, BirthDate: c.BirthDate, IsYoungDriver: c.IsYoungDriver})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if !a.BirthDate.Equal(b.BirthDate) {
			return a.BirthDate.Before(b.BirthDate)
		}
		return !a.IsYoungDriver && b.IsYoungDriver
	})
	return rows, nil
}

type CarRow struct {
	ID                uint `json:"Id"`
	Make              string
	Model             string
	TravelledDistance int64
}

func buildToyotaCars(dbc dbctx.Context, s Store) (any, error) {
	cars, err := s.CarsByMake(dbc, toyotaMake)
	if err != nil {
		return nil, err
	}
	rows := make([]CarRow, 0, len(cars))
	for _, c := range cars {
		rows = append(rows, CarRow{ID: c.ID, Make: c.Make, Model: c.Model, TravelledDistance: c.TravelledDistance})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if a.Model != b.Model {
			return a.Model < b.Model
		}
		return a.TravelledDistance > b.TravelledDistance
	})
	return rows, nil
}

type SupplierRow struct {
	ID         uint `json:"Id"`
	Name       string
	PartsCount int
}

func buildLocalSuppliers(dbc dbctx.Context, s Store) (any, error) {
	suppliers, err := s.LocalSuppliers(dbc)
	if err != nil {
		return nil, err
	}
	rows := make([]SupplierRow, 0, len(suppliers))
	for _, sup := range suppliers {
		rows = append(rows, SupplierRow{ID: sup.ID, Name: sup.Name, PartsCount: len(sup.Parts)})
	}
	return rows, nil
}

type CarSummary struct {
	Make              string
	Model             string
	TravelledDistance int64
}

type PartRow struct {
	Name  string
	Price string
}

type CarWithPartsRow struct {
	Car   CarSummary `json:"car"`
	Parts []PartRow  `json:"parts"`
}

func buildCarsWithParts(dbc dbctx.Context, s Store) (any, error) {
	cars, err := s.CarsWithParts(dbc)
	if err != nil {
		return nil, err
	}
	rows := make([]CarWithPartsRow, 0, len(cars))
	for _, c := range cars {
		parts := make([]PartRow, 0, len(c.PartCars))
		for _, pc := range c.PartCars {
			if pc.Part == nil {
				continue
			}
			parts = append(parts, PartRow{Name: pc.Part.Name, Price: money(pc.Part.Price)})
		}
		rows = append(rows, CarWithPartsRow{Car: summarize(c), Parts: parts})
	}
	return rows, nil
}

type CustomerSalesRow struct {
	FullName   string
	BoughtCars int
	SpentMoney string

	spent float64
}

func buildCustomerTotalSales(dbc dbctx.Context, s Store) (any, error) {
	customers, err := s.CustomersWithPurchases(dbc)
	if err != nil {
		return nil, err
	}
	rows := make([]CustomerSalesRow, 0, len(customers))
	for _, c := range customers {
		if len(c.Sales) == 0 {
			continue
		}
		spent := 0.0
		for _, sale := range c.Sales {
			spent += sale.Price()
		}
		rows = append(rows, CustomerSalesRow{FullName: c.Name, BoughtCars: len(c.Sales), spent: spent})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if a.spent != b.spent {
			return a.spent > b.spent
		}
		return a.BoughtCars < b.BoughtCars
	})
	for i := range rows {
		rows[i].SpentMoney = money(rows[i].spent)
	}
	return rows, nil
}

type SaleRow struct {
	Car               CarSummary `json:"car"`
	CustomerName      string     `json:"customerName"`
	Discount          string
	Price             string `json:"price"`
	PriceWithDiscount string `json:"priceWithDiscount"`
}

// buildSalesDiscounted takes the first rows by id and applies no ordering of its own.
func buildSalesDiscounted(dbc dbctx.Context, s Store) (any, error) {
	sales, err := s.SalesWithCarAndCustomer(dbc, discountedRows)
	if err != nil {
		return nil, err
	}
	rows := make([]SaleRow, 0, len(sales))
	for _, sale := range sales {
		row := SaleRow{
			Car:               summarize(sale.Car),
			Discount:          money(sale.Discount),
			Price:             money(sale.Price()),
			PriceWithDiscount: money(sale.PriceWithDiscount()),
		}
		if sale.Customer != nil {
			row.CustomerName = sale.Customer.Name
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func summarize(c *types.Car) CarSummary {
	if c == nil {
		return CarSummary{}
	}
	return CarSummary{Make: c.Make, Model: c.Model, TravelledDistance: c.TravelledDistance}
}

// money renders a currency amount with exactly two decimals.
func money(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
