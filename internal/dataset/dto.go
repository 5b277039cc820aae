package dataset

// Import DTOs mirror the dataset files field for field. They never reach the store directly;
// the Map* functions turn them into entities.

type SupplierImport struct {
	Name       string `json:"name"`
	IsImporter bool   `json:"isImporter"`
}

type PartImport struct {
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	Quantity   int     `json:"quantity"`
	SupplierID uint    `json:"supplierId"`
}

type CarImport struct {
	Make              string `json:"make"`
	Model             string `json:"model"`
	TravelledDistance int64  `json:"travelledDistance"`
	PartsID           []uint `json:"partsId"`
}

type CustomerImport struct {
	Name          string `json:"name"`
	BirthDate     string `json:"birthDate"`
	IsYoungDriver bool   `json:"isYoungDriver"`
}

type SaleImport struct {
	CarID      uint    `json:"carId"`
	CustomerID uint    `json:"customerId"`
	Discount   float64 `json:"discount"`
}

type PatientImport struct {
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Address      string `json:"address"`
	Email        string `json:"email"`
	HasInsurance bool   `json:"hasInsurance"`
}

type VisitationImport struct {
	Date      string `json:"date"`
	Comments  string `json:"comments"`
	PatientID uint   `json:"patientId"`
}
