package dataset

import (
	"fmt"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
	"gorm.io/gorm"

	"github.com/yungbote/cardealer/internal/data/repos"
	types "github.com/yungbote/cardealer/internal/domain"
	apperr "github.com/yungbote/cardealer/internal/pkg/errors"
	"github.com/yungbote/cardealer/internal/platform/dbctx"
	"github.com/yungbote/cardealer/internal/platform/logger"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Repos struct {
	Supplier   repos.SupplierRepo
	Part       repos.PartRepo
	Car        repos.CarRepo
	Customer   repos.CustomerRepo
	Sale       repos.SaleRepo
	Patient    repos.PatientRepo
	Visitation repos.VisitationRepo
}

// Result summarizes one import. Read = Invalid + Dropped + Imported when the batch commits.
type Result struct {
	Collection Collection
	Read       int
	Invalid    int
	Dropped    int
	Imported   int
	// Total is the table size after the batch; only car imports report it.
	Total int64
}

func (r Result) Message() string {
	return fmt.Sprintf("Successfully imported %d.", r.Imported)
}

type Importer struct {
	db    *gorm.DB
	log   *logger.Logger
	repos Repos
}

func NewImporter(db *gorm.DB, baseLog *logger.Logger, r Repos) *Importer {
	return &Importer{db: db, log: baseLog.With("service", "Importer"), repos: r}
}

// Import loads raw into collection and returns the number of rows persisted.
func (im *Importer) Import(dbc dbctx.Context, collection Collection, raw []byte) (int, error) {
	res, err := im.ImportCollection(dbc, collection, raw)
	if err != nil {
		return 0, err
	}
	return res.Imported, nil
}

func (im *Importer) ImportCollection(dbc dbctx.Context, collection Collection, raw []byte) (Result, error) {
	var (
		res Result
		err error
	)
	switch collection {
	case Suppliers:
		res, err = im.ImportSuppliers(dbc, raw)
	case Parts:
		res, err = im.ImportParts(dbc, raw)
	case Cars:
		res, err = im.ImportCars(dbc, raw)
	case Customers:
		res, err = im.ImportCustomers(dbc, raw)
	case Sales:
		res, err = im.ImportSales(dbc, raw)
	case Patients:
		res, err = im.ImportPatients(dbc, raw)
	case Visitations:
		res, err = im.ImportVisitations(dbc, raw)
	default:
		return Result{Collection: collection}, fmt.Errorf("%w: %q", apperr.ErrNoMatchingCollection, collection)
	}
	if err != nil {
		return settle(res, err)
	}
	im.log.Info("Imported collection",
		"run_id", uuid.NewString(),
		"collection", res.Collection,
		"read", res.Read,
		"invalid", res.Invalid,
		"dropped", res.Dropped,
		"imported", res.Imported,
		"total", res.Total,
	)
	return res, nil
}

func (im *Importer) ImportSuppliers(dbc dbctx.Context, raw []byte) (Result, error) {
	res := Result{Collection: Suppliers}
	dtos, err := decode[SupplierImport](Suppliers, raw)
	if err != nil {
		return settle(res, err)
	}
	res.Read = len(dtos)
	rows := make([]*types.Supplier, 0, len(dtos))
	for _, dto := range dtos {
		rows = append(rows, MapSupplier(dto))
	}
	rows = keepValid(im, &res, rows)

	err = im.inTx(dbc, len(rows), func(tx dbctx.Context) error {
		n, err := im.repos.Supplier.Create(tx, rows)
		res.Imported = n
		return err
	})
	return settle(res, err)
}

// ImportParts drops parts whose supplier is not persisted.
func (im *Importer) ImportParts(dbc dbctx.Context, raw []byte) (Result, error) {
	res := Result{Collection: Parts}
	dtos, err := decode[PartImport](Parts, raw)
	if err != nil {
		return settle(res, err)
	}
	res.Read = len(dtos)
	rows := make([]*types.Part, 0, len(dtos))
	for _, dto := range dtos {
		rows = append(rows, MapPart(dto))
	}
	rows = keepValid(im, &res, rows)

	err = im.inTx(dbc, len(rows), func(tx dbctx.Context) error {
		supplierIDs, err := im.repos.Supplier.ListIDs(tx)
		if err != nil {
			return err
		}
		known := idSet(supplierIDs)
		kept := rows[:0]
		for _, p := range rows {
			if _, ok := known[p.SupplierID]; !ok {
				res.Dropped++
				continue
			}
			kept = append(kept, p)
		}
		n, err := im.repos.Part.Create(tx, kept)
		res.Imported = n
		return err
	})
	return settle(res, err)
}

// ImportCars keeps every valid car but links only parts that are persisted.
func (im *Importer) ImportCars(dbc dbctx.Context, raw []byte) (Result, error) {
	res := Result{Collection: Cars}
	dtos, err := decode[CarImport](Cars, raw)
	if err != nil {
		return settle(res, err)
	}
	res.Read = len(dtos)
	rows := make([]*types.Car, 0, len(dtos))
	for _, dto := range dtos {
		rows = append(rows, MapCar(dto))
	}
	rows = keepValid(im, &res, rows)

	err = im.inTx(dbc, len(rows), func(tx dbctx.Context) error {
		partIDs, err := im.repos.Part.ListIDs(tx)
		if err != nil {
			return err
		}
		known := idSet(partIDs)
		droppedLinks := 0
		for _, car := range rows {
			links := car.PartCars[:0]
			for _, pc := range car.PartCars {
				if _, ok := known[pc.PartID]; !ok {
					droppedLinks++
					continue
				}
				links = append(links, pc)
			}
			car.PartCars = links
		}
		if droppedLinks > 0 {
			im.log.Debug("Dropped links to unknown parts", "links", droppedLinks)
		}
		n, err := im.repos.Car.Create(tx, rows)
		if err != nil {
			return err
		}
		res.Imported = n
		res.Total, err = im.repos.Car.Count(tx)
		return err
	})
	return settle(res, err)
}

func (im *Importer) ImportCustomers(dbc dbctx.Context, raw []byte) (Result, error) {
	res := Result{Collection: Customers}
	dtos, err := decode[CustomerImport](Customers, raw)
	if err != nil {
		return settle(res, err)
	}
	res.Read = len(dtos)
	rows := make([]*types.Customer, 0, len(dtos))
	for i, dto := range dtos {
		c, err := MapCustomer(dto)
		if err != nil {
			res.Invalid++
			im.log.Warn("Skipping invalid row", "collection", Customers, "index", i, "error", err)
			continue
		}
		rows = append(rows, c)
	}
	rows = keepValid(im, &res, rows)

	err = im.inTx(dbc, len(rows), func(tx dbctx.Context) error {
		n, err := im.repos.Customer.Create(tx, rows)
		res.Imported = n
		return err
	})
	return settle(res, err)
}

// ImportSales drops sales that reference a car or customer that is not persisted.
func (im *Importer) ImportSales(dbc dbctx.Context, raw []byte) (Result, error) {
	res := Result{Collection: Sales}
	dtos, err := decode[SaleImport](Sales, raw)
	if err != nil {
		return settle(res, err)
	}
	res.Read = len(dtos)
	rows := make([]*types.Sale, 0, len(dtos))
	for _, dto := range dtos {
		rows = append(rows, MapSale(dto))
	}
	rows = keepValid(im, &res, rows)

	err = im.inTx(dbc, len(rows), func(tx dbctx.Context) error {
		carIDs, err := im.repos.Car.ListIDs(tx)
		if err != nil {
			return err
		}
		customerIDs, err := im.repos.Customer.ListIDs(tx)
		if err != nil {
			return err
		}
		cars, customers := idSet(carIDs), idSet(customerIDs)
		kept := rows[:0]
		for _, s := range rows {
			_, carOK := cars[s.CarID]
			_, customerOK := customers[s.CustomerID]
			if !carOK || !customerOK {
				res.Dropped++
				continue
			}
			kept = append(kept, s)
		}
		n, err := im.repos.Sale.Create(tx, kept)
		res.Imported = n
		return err
	})
	return settle(res, err)
}

func (im *Importer) ImportPatients(dbc dbctx.Context, raw []byte) (Result, error) {
	res := Result{Collection: Patients}
	dtos, err := decode[PatientImport](Patients, raw)
	if err != nil {
		return settle(res, err)
	}
	res.Read = len(dtos)
	rows := make([]*types.Patient, 0, len(dtos))
	for _, dto := range dtos {
		rows = append(rows, MapPatient(dto))
	}
	rows = keepValid(im, &res, rows)

	err = im.inTx(dbc, len(rows), func(tx dbctx.Context) error {
		n, err := im.repos.Patient.Create(tx, rows)
		res.Imported = n
		return err
	})
	return settle(res, err)
}

// ImportVisitations drops visitations of patients that are not persisted.
func (im *Importer) ImportVisitations(dbc dbctx.Context, raw []byte) (Result, error) {
	res := Result{Collection: Visitations}
	dtos, err := decode[VisitationImport](Visitations, raw)
	if err != nil {
		return settle(res, err)
	}
	res.Read = len(dtos)
	rows := make([]*types.Visitation, 0, len(dtos))
	for i, dto := range dtos {
		v, err := MapVisitation(dto)
		if err != nil {
			res.Invalid++
			im.log.Warn("Skipping invalid row", "collection", Visitations, "index", i, "error", err)
			continue
		}
		rows = append(rows, v)
	}
	rows = keepValid(im, &res, rows)

	err = im.inTx(dbc, len(rows), func(tx dbctx.Context) error {
		patientIDs, err := im.repos.Patient.ListIDs(tx)
		if err != nil {
			return err
		}
		known := idSet(patientIDs)
		kept := rows[:0]
		for _, v := range rows {
			if _, ok := known[v.PatientID]; !ok {
				res.Dropped++
				continue
			}
			kept = append(kept, v)
		}
		n, err := im.repos.Visitation.Create(tx, kept)
		res.Imported = n
		return err
	})
	return settle(res, err)
}

// inTx runs fn in one transaction. Store errors come back exactly as the store returned them.
// An empty batch never touches the store.
func (im *Importer) inTx(dbc dbctx.Context, rows int, fn func(tx dbctx.Context) error) error {
	if rows == 0 {
		return nil
	}
	return dbc.Resolve(im.db).Transaction(func(tx *gorm.DB) error {
		return fn(dbc.WithTx(tx))
	})
}

func decode[T any](c Collection, raw []byte) ([]T, error) {
	var out []T
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", apperr.ErrMalformedJSON, c, err)
	}
	return out, nil
}

func keepValid[T any](im *Importer, res *Result, rows []*T) []*T {
	kept := rows[:0]
	for i, row := range rows {
		if err := Validate(row); err != nil {
			res.Invalid++
			im.log.Warn("Skipping invalid row", "collection", res.Collection, "index", i, "error", err)
			continue
		}
		kept = append(kept, row)
	}
	return kept
}

func idSet(ids []uint) map[uint]struct{} {
	out := make(map[uint]struct{}, len(ids))
	for _, id := range ids {
		out[id] = struct{}{}
	}
	return out
}

// settle zeroes the count when the batch did not commit.
func settle(res Result, err error) (Result, error) {
	if err != nil {
		res.Imported = 0
		res.Total = 0
	}
	return res, err
}
