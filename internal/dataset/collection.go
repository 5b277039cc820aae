package dataset

import "strings"

// Collection names a target table for an import. The value doubles as the dataset file stem.
type Collection string

const (
	Suppliers   Collection = "suppliers"
	Parts       Collection = "parts"
	Cars        Collection = "cars"
	Customers   Collection = "customers"
	Sales       Collection = "sales"
	Patients    Collection = "patients"
	Visitations Collection = "visitations"
)

// DealerOrder lists the dealership collections so that every foreign key
// points at a collection imported earlier.
var DealerOrder = []Collection{Suppliers, Parts, Cars, Customers, Sales}

// HospitalOrder is the same for the hospital pair.
var HospitalOrder = []Collection{Patients, Visitations}

func ParseCollection(name string) (Collection, bool) {
	c := Collection(strings.ToLower(strings.TrimSpace(name)))
	switch c {
	case Suppliers, Parts, Cars, Customers, Sales, Patients, Visitations:
		return c, true
	}
	return "", false
}

func (c Collection) FileName() string { return string(c) + ".json" }
