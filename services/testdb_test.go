package services_test

import (
	"testing"
	"time"

	"frontdesk-backend/models"
	"frontdesk-backend/services"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.Admin{},
		&models.PropertySetting{},
		&models.RoomType{},
		&models.Room{},
		&models.Reservation{},
		&models.Folio{},
		&models.LedgerEntry{},
	))

	// property profile driving the VAT rate and the per-guest fee
	require.NoError(t, db.Create(&models.PropertySetting{
		Name:               "Test Hotel",
		Country:            "CH",
		ServiceFeePerGuest: decimal.RequireFromString("3.50"),
	}).Error)

	return db
}

func newServices(t *testing.T) (*gorm.DB, *services.ReservationService, *services.LedgerService, *services.InvoiceService) {
	t.Helper()
	db := newTestDB(t)
	gen := services.NewChargeGenerator(db)
	resSvc := services.NewReservationService(db, gen)
	ledgerSvc := services.NewLedgerService(db, gen)
	invoiceSvc := services.NewInvoiceService(db, ledgerSvc)
	return db, resSvc, ledgerSvc, invoiceSvc
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// newTestReservation books the reference stay used across the ledger
// tests: 4 nights, rate 145, 2 guests.
func newTestReservation(t *testing.T, svc *services.ReservationService) *models.Reservation {
	t.Helper()
	res := &models.Reservation{
		Arrival:      date(2025, time.December, 20),
		Departure:    date(2025, time.December, 24),
		Rate:         decimal.RequireFromString("145"),
		Pax:          2,
		GuestName:    "Ada Lovelace",
		GuestEmail:   "ada@example.com",
		GuestAddress: "12 Analytical Way",
		GuestCity:    "Geneva",
		GuestCountry: "CH",
	}
	require.NoError(t, svc.Create(res))
	return res
}

func folioByNumber(t *testing.T, view *services.LedgerView, number int) *services.FolioView {
	t.Helper()
	for i := range view.Folios {
		if view.Folios[i].Number == number {
			return &view.Folios[i]
		}
	}
	t.Fatalf("folio %d not present in ledger view", number)
	return nil
}
