package report

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yungbote/cardealer/internal/data/repos/testutil"
	types "github.com/yungbote/cardealer/internal/domain"
	"github.com/yungbote/cardealer/internal/platform/dbctx"
)

type fakeStore struct {
	err       error
	sales     []*types.Sale
	lastLimit int
}

func (f *fakeStore) Customers(dbctx.Context) ([]*types.Customer, error) { return nil, f.err }
func (f *fakeStore) CustomersWithPurchases(dbctx.Context) ([]*types.Customer, error) {
	return nil, f.err
}
func (f *fakeStore) CarsByMake(dbctx.Context, string) ([]*types.Car, error) { return nil, f.err }
func (f *fakeStore) CarsWithParts(dbctx.Context) ([]*types.Car, error)      { return nil, f.err }
func (f *fakeStore) LocalSuppliers(dbctx.Context) ([]*types.Supplier, error) {
	return nil, f.err
}
func (f *fakeStore) SalesWithCarAndCustomer(_ dbctx.Context, limit int) ([]*types.Sale, error) {
	f.lastLimit = limit
	return f.sales, f.err
}

func TestExportPropagatesStoreErrors(t *testing.T) {
	boom := errors.New("connection reset")
	e := NewExporter(&fakeStore{err: boom}, testutil.Logger(t))
	for _, name := range e.Names() {
		_, err := e.Export(testutil.Ctx(), name)
		require.Error(t, err, name)
		assert.True(t, errors.Is(err, boom), name)
	}
}

func TestSalesDiscountedKeepsStoreOrder(t *testing.T) {
	part := &types.Part{Name: "Engine", Price: 200}
	car := &types.Car{Make: "Opel", Model: "Astra", PartCars: []*types.PartCar{{Part: part}}}
	store := &fakeStore{sales: []*types.Sale{
		{ID: 7, Discount: 50, Car: car, Customer: &types.Customer{Name: "Zed"}},
		{ID: 2, Discount: 0, Car: car, Customer: &types.Customer{Name: "Amy"}},
		{ID: 9, Discount: 100, Car: nil},
	}}
	out, err := NewExporter(store, testutil.Logger(t)).Export(testutil.Ctx(), SalesDiscounted)
	require.NoError(t, err)
	assert.Equal(t, discountedRows, store.lastLimit)
	assert.JSONEq(t, `[
		{"car":{"Make":"Opel","Model":"Astra","TravelledDistance":0},"customerName":"Zed","Discount":"50.00","price":"200.00","priceWithDiscount":"100.00"},
		{"car":{"Make":"Opel","Model":"Astra","TravelledDistance":0},"customerName":"Amy","Discount":"0.00","price":"200.00","priceWithDiscount":"200.00"},
		{"car":{"Make":"","Model":"","TravelledDistance":0},"customerName":"","Discount":"100.00","price":"0.00","priceWithDiscount":"0.00"}
	]`, string(out))
}
