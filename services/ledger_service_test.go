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

func TestAddCharge_Validation(t *testing.T) {
	_, resSvc, ledgerSvc, _ := newServices(t)
	res := newTestReservation(t, resSvc)

	_, err := ledgerSvc.AddCharge(res.ID, 1, "Minibar", decimal.Zero, time.Time{})
	assert.ErrorIs(t, err, services.ErrInvalidAmount)

	_, err = ledgerSvc.AddCharge(res.ID, 1, "Minibar", decimal.RequireFromString("-5"), time.Time{})
	assert.ErrorIs(t, err, services.ErrInvalidAmount)

	_, err = ledgerSvc.AddCharge(res.ID, 1, "   ", decimal.RequireFromString("5"), time.Time{})
	assert.ErrorIs(t, err, services.ErrEmptyDescription)

	// folio 7 was never created
	_, err = ledgerSvc.AddCharge(res.ID, 7, "Minibar", decimal.RequireFromString("5"), time.Time{})
	assert.ErrorIs(t, err, services.ErrFolioNotFound)

	_, err = ledgerSvc.AddPayment(res.ID, 1, decimal.Zero, time.Time{})
	assert.ErrorIs(t, err, services.ErrInvalidAmount)
}

func TestBalanceIdentity_AcrossFolioPartitions(t *testing.T) {
	_, resSvc, ledgerSvc, _ := newServices(t)
	res := newTestReservation(t, resSvc)

	_, err := ledgerSvc.AddFolio(res.ID, "Company")
	require.NoError(t, err)

	_, err = ledgerSvc.AddCharge(res.ID, 1, "Minibar", decimal.RequireFromString("18.40"), date(2025, time.December, 21))
	require.NoError(t, err)
	_, err = ledgerSvc.AddCharge(res.ID, 2, "Conference room", decimal.RequireFromString("250.00"), date(2025, time.December, 22))
	require.NoError(t, err)
	_, err = ledgerSvc.AddPayment(res.ID, 1, decimal.RequireFromString("100.00"), date(2025, time.December, 22))
	require.NoError(t, err)
	_, err = ledgerSvc.AddPayment(res.ID, 2, decimal.RequireFromString("250.00"), date(2025, time.December, 23))
	require.NoError(t, err)

	view, err := ledgerSvc.ReadModel(res.ID)
	require.NoError(t, err)

	sum := decimal.Zero
	for _, fv := range view.Folios {
		assert.True(t, fv.Balance.Equal(fv.TotalCharges.Sub(fv.TotalPayments)))
		sum = sum.Add(fv.Balance)
	}
	assert.True(t, view.Balance.Equal(sum),
		"reservation balance %s must equal the sum of folio balances %s", view.Balance, sum)

	// 580 accommodation + 28 fees + 18.40 + 250 - 350 paid
	assert.True(t, view.Balance.Equal(decimal.RequireFromString("526.40")))
}

func TestMoveCharge_NonDestructive(t *testing.T) {
	db, resSvc, ledgerSvc, _ := newServices(t)
	res := newTestReservation(t, resSvc)

	_, err := ledgerSvc.AddFolio(res.ID, "Company")
	require.NoError(t, err)
	charge, err := ledgerSvc.AddCharge(res.ID, 1, "Dinner", decimal.RequireFromString("42.00"), date(2025, time.December, 21))
	require.NoError(t, err)

	before, err := ledgerSvc.ReadModel(res.ID)
	require.NoError(t, err)

	require.NoError(t, ledgerSvc.MoveCharge(res.ID, charge.EntryID, 2))

	after, err := ledgerSvc.ReadModel(res.ID)
	require.NoError(t, err)

	// effective folio changed, both folio balances shifted by 42
	f1Before := folioByNumber(t, before, 1)
	f2Before := folioByNumber(t, before, 2)
	f1After := folioByNumber(t, after, 1)
	f2After := folioByNumber(t, after, 2)

	delta := decimal.RequireFromString("42.00")
	assert.True(t, f1After.Balance.Equal(f1Before.Balance.Sub(delta)))
	assert.True(t, f2After.Balance.Equal(f2Before.Balance.Add(delta)))

	// total reservation balance unchanged
	assert.True(t, after.Balance.Equal(before.Balance))

	// the stored entry keeps its originating folio
	var stored models.LedgerEntry
	require.NoError(t, db.First(&stored, "entry_id = ?", charge.EntryID).Error)
	assert.Equal(t, 1, stored.FolioNumber)

	// and the view reports both folios
	for _, ch := range f2After.Charges {
		if ch.ID == charge.EntryID {
			assert.Equal(t, 1, ch.Folio)
			assert.Equal(t, 2, ch.EffectiveFolio)
		}
	}
}

func TestMoveCharge_RejectsUnknownTargets(t *testing.T) {
	_, resSvc, ledgerSvc, _ := newServices(t)
	res := newTestReservation(t, resSvc)

	charge, err := ledgerSvc.AddCharge(res.ID, 1, "Dinner", decimal.RequireFromString("42.00"), time.Time{})
	require.NoError(t, err)

	// no folio 5: no orphaned assignment may be created
	err = ledgerSvc.MoveCharge(res.ID, charge.EntryID, 5)
	assert.ErrorIs(t, err, services.ErrFolioNotFound)

	// computed accommodation lines are not addressable
	err = ledgerSvc.MoveCharge(res.ID, "night-1-1", 1)
	assert.ErrorIs(t, err, services.ErrEntryNotFound)
}

func TestBulkMove_AllOrNothing(t *testing.T) {
	_, resSvc, ledgerSvc, _ := newServices(t)
	res := newTestReservation(t, resSvc)

	_, err := ledgerSvc.AddFolio(res.ID, "Company")
	require.NoError(t, err)
	a, err := ledgerSvc.AddCharge(res.ID, 1, "Dinner", decimal.RequireFromString("42.00"), time.Time{})
	require.NoError(t, err)
	b, err := ledgerSvc.AddCharge(res.ID, 1, "Laundry", decimal.RequireFromString("15.00"), time.Time{})
	require.NoError(t, err)

	// one bad id poisons the whole set
	err = ledgerSvc.BulkMove(res.ID, []string{a.EntryID, "does-not-exist"}, 2)
	assert.ErrorIs(t, err, services.ErrEntryNotFound)

	view, err := ledgerSvc.ReadModel(res.ID)
	require.NoError(t, err)
	f2 := folioByNumber(t, view, 2)
	assert.Empty(t, f2.Charges, "failed bulk move must not move any entry")

	// valid set moves together
	require.NoError(t, ledgerSvc.BulkMove(res.ID, []string{a.EntryID, b.EntryID}, 2))
	view, err = ledgerSvc.ReadModel(res.ID)
	require.NoError(t, err)
	assert.Len(t, folioByNumber(t, view, 2).Charges, 2)
}

func TestEntriesWithoutFolio_DefaultToFolioOne(t *testing.T) {
	db, resSvc, ledgerSvc, _ := newServices(t)
	res := newTestReservation(t, resSvc)

	// simulate a legacy entry persisted without a folio
	require.NoError(t, db.Create(&models.LedgerEntry{
		EntryID:       "legacy-entry",
		ReservationID: res.ID,
		Date:          date(2025, time.December, 21),
		Description:   "Phone call",
		Amount:        decimal.RequireFromString("3.00"),
		Type:          models.EntryTypeCharge,
		FolioNumber:   0,
	}).Error)

	view, err := ledgerSvc.ReadModel(res.ID)
	require.NoError(t, err)

	found := false
	for _, ch := range folioByNumber(t, view, 1).Charges {
		if ch.ID == "legacy-entry" {
			found = true
			assert.Equal(t, 1, ch.EffectiveFolio)
		}
	}
	assert.True(t, found, "folio-less entries belong to folio 1, never orphaned")
}

func TestAddFolio_NumbersStartAtTwo(t *testing.T) {
	_, resSvc, ledgerSvc, _ := newServices(t)
	res := newTestReservation(t, resSvc)

	f, err := ledgerSvc.AddFolio(res.ID, "Company")
	require.NoError(t, err)
	assert.Equal(t, 2, f.Number, "folio 1 exists implicitly; the first added folio is 2")

	g, err := ledgerSvc.AddFolio(res.ID, "")
	require.NoError(t, err)
	assert.Equal(t, 3, g.Number)
	assert.Equal(t, "Folio 3", g.Name)
}
