package services_test

import (
	"testing"
	"time"

	"frontdesk-backend/models"
	"frontdesk-backend/services"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccommodationCharges_OnePerNight(t *testing.T) {
	_, resSvc, ledgerSvc, _ := newServices(t)
	res := newTestReservation(t, resSvc)

	view, err := ledgerSvc.ReadModel(res.ID)
	require.NoError(t, err)

	main := folioByNumber(t, view, models.DefaultFolioNumber)

	var nightly []services.EntryView
	for _, ch := range main.Charges {
		if ch.Computed {
			nightly = append(nightly, ch)
		}
	}

	require.Len(t, nightly, 4)
	for _, ch := range nightly {
		assert.True(t, ch.Amount.Equal(decimal.RequireFromString("145")),
			"each nightly charge must equal the reservation rate, got %s", ch.Amount)
		assert.Equal(t, models.DefaultFolioNumber, ch.EffectiveFolio)
	}
}

func TestAccommodationCharges_TrackDateEdits(t *testing.T) {
	_, resSvc, ledgerSvc, _ := newServices(t)
	res := newTestReservation(t, resSvc)

	// extend the stay by two nights: computed charges must follow
	// without any explicit regeneration step
	_, err := resSvc.UpdateStay(res.ID, &models.Reservation{
		Arrival:   date(2025, time.December, 20),
		Departure: date(2025, time.December, 26),
		Rate:      decimal.RequireFromString("145"),
		Pax:       2,
	})
	require.NoError(t, err)

	view, err := ledgerSvc.ReadModel(res.ID)
	require.NoError(t, err)

	computed := 0
	for _, ch := range folioByNumber(t, view, 1).Charges {
		if ch.Computed {
			computed++
		}
	}
	assert.Equal(t, 6, computed)
}

func TestServiceFees_SeededOnCreate(t *testing.T) {
	db, resSvc, _, _ := newServices(t)
	res := newTestReservation(t, resSvc)

	var fees []models.LedgerEntry
	require.NoError(t, db.Where("reservation_id = ? AND auto_applied = ?", res.ID, true).Find(&fees).Error)

	require.Len(t, fees, 4)
	total := decimal.Zero
	for _, f := range fees {
		assert.True(t, f.Amount.Equal(decimal.RequireFromString("7.00")),
			"fee per night = 2 guests x 3.50, got %s", f.Amount)
		assert.Equal(t, models.DefaultFolioNumber, f.FolioNumber)
		total = total.Add(f.Amount)
	}
	assert.True(t, total.Equal(decimal.RequireFromString("28.00")))
}

func TestServiceFees_Idempotent(t *testing.T) {
	db, resSvc, _, _ := newServices(t)
	res := newTestReservation(t, resSvc)

	gen := services.NewChargeGenerator(db)
	require.NoError(t, gen.EnsureServiceFees(res))
	require.NoError(t, gen.EnsureServiceFees(res))

	var count int64
	require.NoError(t, db.Model(&models.LedgerEntry{}).
		Where("reservation_id = ? AND auto_applied = ?", res.ID, true).
		Count(&count).Error)
	assert.EqualValues(t, 4, count, "repeated generation must never duplicate service fees")
}

func TestServiceFees_ReconcileOnStayChange(t *testing.T) {
	db, resSvc, _, _ := newServices(t)
	res := newTestReservation(t, resSvc)

	// 6 nights, 3 guests now
	_, err := resSvc.UpdateStay(res.ID, &models.Reservation{
		Arrival:   date(2025, time.December, 20),
		Departure: date(2025, time.December, 26),
		Rate:      decimal.RequireFromString("145"),
		Pax:       3,
	})
	require.NoError(t, err)

	var fees []models.LedgerEntry
	require.NoError(t, db.Where("reservation_id = ? AND auto_applied = ?", res.ID, true).
		Order("date ASC").Find(&fees).Error)

	require.Len(t, fees, 6)
	for _, f := range fees {
		assert.True(t, f.Amount.Equal(decimal.RequireFromString("10.50")))
	}
}

func TestServiceFees_ManualChargesUntouched(t *testing.T) {
	db, resSvc, ledgerSvc, _ := newServices(t)
	res := newTestReservation(t, resSvc)

	manual, err := ledgerSvc.AddCharge(res.ID, 1, "Minibar", decimal.RequireFromString("12.00"), date(2025, time.December, 21))
	require.NoError(t, err)

	gen := services.NewChargeGenerator(db)
	require.NoError(t, gen.EnsureServiceFees(res))

	var still models.LedgerEntry
	require.NoError(t, db.First(&still, "entry_id = ?", manual.EntryID).Error)
	assert.True(t, still.Amount.Equal(decimal.RequireFromString("12.00")))
}
