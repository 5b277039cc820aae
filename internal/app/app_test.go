package app

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yungbote/cardealer/internal/data/db"
	"github.com/yungbote/cardealer/internal/data/repos/testutil"
	"github.com/yungbote/cardealer/internal/dataset"
	types "github.com/yungbote/cardealer/internal/domain"
	apperr "github.com/yungbote/cardealer/internal/pkg/errors"
	"github.com/yungbote/cardealer/internal/report"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, k := range []string{"DB_DRIVER", "SQLITE_PATH", "DATASETS_DIR", "IMPORT_ON_START", "IMPORT_COLLECTIONS", "REPORT", "DB_MAX_OPEN_CONNS"} {
		t.Setenv(k, "")
	}
	cfg := LoadConfig(nil)
	assert.Equal(t, db.DriverSQLite, cfg.DB.Driver)
	assert.Equal(t, "cardealer.db", cfg.DB.SQLitePath)
	assert.Equal(t, "datasets", cfg.DatasetsDir)
	assert.False(t, cfg.ImportOnStart)
	assert.Equal(t, dataset.DealerOrder, cfg.Collections)
	assert.Equal(t, string(report.SalesDiscounted), cfg.Report)
	assert.Equal(t, 0, cfg.DB.MaxOpenConns)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("POSTGRES_HOST", "db.internal")
	t.Setenv("IMPORT_ON_START", "true")
	t.Setenv("IMPORT_COLLECTIONS", "Patients, visitations, bogus")
	t.Setenv("REPORT", "toyota-cars")
	cfg := LoadConfig(nil)
	assert.Equal(t, db.DriverPostgres, cfg.DB.Driver)
	assert.Equal(t, "db.internal", cfg.DB.PostgresHost)
	assert.True(t, cfg.ImportOnStart)
	assert.Equal(t, []dataset.Collection{dataset.Patients, dataset.Visitations}, cfg.Collections)
	assert.Equal(t, "toyota-cars", cfg.Report)
}

func TestLoadConfigCollectionGroups(t *testing.T) {
	t.Setenv("IMPORT_COLLECTIONS", "hospital")
	assert.Equal(t, dataset.HospitalOrder, LoadConfig(nil).Collections)

	t.Setenv("IMPORT_COLLECTIONS", "Dealer,hospital")
	want := append(append([]dataset.Collection(nil), dataset.DealerOrder...), dataset.HospitalOrder...)
	assert.Equal(t, want, LoadConfig(nil).Collections)
}

func TestLoadConfigMaxOpenConns(t *testing.T) {
	t.Setenv("DB_MAX_OPEN_CONNS", "4")
	assert.Equal(t, 4, LoadConfig(nil).DB.MaxOpenConns)
	t.Setenv("DB_MAX_OPEN_CONNS", "many")
	assert.Equal(t, 0, LoadConfig(nil).DB.MaxOpenConns)
}

func newTestApp(t *testing.T, cfg Config) *App {
	t.Helper()
	cfg.DB = db.Config{Driver: db.DriverSQLite, SQLitePath: filepath.Join(t.TempDir(), "cardealer.db")}
	a, err := NewWithConfig(testutil.Logger(t), cfg)
	require.NoError(t, err)
	t.Cleanup(a.Close)
	return a
}

func TestRunImportsAndPrintsReport(t *testing.T) {
	dir := t.TempDir()
	write := func(name, body string) {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
	}
	write("suppliers.json", `[{"name":"Local","isImporter":false}]`)
	write("parts.json", `[{"name":"Bolt","price":2.5,"quantity":3,"supplierId":1}]`)
	write("cars.json", `[{"make":"Opel","model":"Astra","travelledDistance":10,"partsId":[1]}]`)
	write("customers.json", `[{"name":"Ann","birthDate":"1980-01-01T00:00:00","isYoungDriver":false}]`)
	write("sales.json", `[{"carId":1,"customerId":1,"discount":20}]`)

	a := newTestApp(t, Config{
		DatasetsDir:   dir,
		ImportOnStart: true,
		Collections:   dataset.DealerOrder,
		Report:        "Customer-Total-Sales",
	})
	var out bytes.Buffer
	require.NoError(t, a.Run(testutil.Ctx(), &out))
	assert.JSONEq(t, `[{"fullName":"Ann","boughtCars":1,"spentMoney":"2.50"}]`, out.String())
}

func TestRunImportsHospitalCollections(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "patients.json"), []byte(`[
		{"firstName":"Ada","lastName":"Lovelace","address":"12 St James's Square","email":"ada@example.com","hasInsurance":true},
		{"firstName":"","lastName":"Nameless"}
	]`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "visitations.json"), []byte(`[
		{"date":"2020-01-05T10:30:00","comments":"checkup","patientId":1},
		{"date":"2020-01-06T10:30:00","comments":"`+strings.Repeat("x", 251)+`","patientId":1},
		{"date":"2020-01-07T10:30:00","comments":"ghost","patientId":42}
	]`), 0o644))

	a := newTestApp(t, Config{
		DatasetsDir:   dir,
		ImportOnStart: true,
		Collections:   []dataset.Collection{dataset.Patients, dataset.Visitations},
		Report:        string(report.DefaultReport),
	})
	var out bytes.Buffer
	require.NoError(t, a.Run(testutil.Ctx(), &out))
	assert.Equal(t, "[]\n", out.String())

	var patients []types.Patient
	require.NoError(t, a.DB.Preload("Visitations").Find(&patients).Error)
	require.Len(t, patients, 1)
	assert.Equal(t, "Ada", patients[0].FirstName)
	require.Len(t, patients[0].Visitations, 1)
	assert.Equal(t, "checkup", patients[0].Visitations[0].Comments)
}

func TestRunUnknownReport(t *testing.T) {
	a := newTestApp(t, Config{Report: "nope"})
	err := a.Run(testutil.Ctx(), &bytes.Buffer{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperr.ErrUnknownReport))
}

func TestRunEmptyStorePrintsEmptyArray(t *testing.T) {
	a := newTestApp(t, Config{Report: string(report.DefaultReport)})
	var out bytes.Buffer
	require.NoError(t, a.Run(testutil.Ctx(), &out))
	assert.Equal(t, "[]\n", out.String())
}
