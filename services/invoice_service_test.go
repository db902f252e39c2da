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

// Reference scenario: 4 nights at 145 with 2 guests and a 3.50 fee per
// guest per night gives 580.00 accommodation + 28.00 fees = 608.00
// gross, which at the Swiss 3.8%% accommodation rate decomposes into
// 585.74 net and 22.26 tax.
func TestInvoiceSnapshot_ReferenceScenario(t *testing.T) {
	_, resSvc, _, invoiceSvc := newServices(t)
	res := newTestReservation(t, resSvc)

	snap, err := invoiceSvc.BuildSnapshot(res.ID, 1, "en")
	require.NoError(t, err)

	assert.True(t, snap.Total.Equal(decimal.RequireFromString("608.00")), "gross total, got %s", snap.Total)
	assert.True(t, snap.Subtotal.Equal(decimal.RequireFromString("585.74")), "net subtotal, got %s", snap.Subtotal)
	assert.True(t, snap.Tax.Equal(decimal.RequireFromString("22.26")), "tax, got %s", snap.Tax)
	assert.True(t, snap.TaxRate.Equal(decimal.RequireFromString("0.038")))
	assert.True(t, snap.Subtotal.Add(snap.Tax).Equal(snap.Total),
		"subtotal + tax must reproduce the gross total exactly")

	// 4 computed nights + 4 persisted fee entries
	assert.Len(t, snap.LineItems, 8)
}

func TestInvoiceSnapshot_BalanceSubtractsPayments(t *testing.T) {
	_, resSvc, ledgerSvc, invoiceSvc := newServices(t)
	res := newTestReservation(t, resSvc)

	_, err := ledgerSvc.AddPayment(res.ID, 1, decimal.RequireFromString("200.00"), date(2025, time.December, 22))
	require.NoError(t, err)

	snap, err := invoiceSvc.BuildSnapshot(res.ID, 1, "en")
	require.NoError(t, err)

	assert.True(t, snap.PaymentsTotal.Equal(decimal.RequireFromString("200.00")))
	assert.True(t, snap.Balance.Equal(decimal.RequireFromString("408.00")))
}

func TestInvoiceSnapshot_FolioScoped(t *testing.T) {
	_, resSvc, ledgerSvc, invoiceSvc := newServices(t)
	res := newTestReservation(t, resSvc)

	_, err := ledgerSvc.AddFolio(res.ID, "Company")
	require.NoError(t, err)
	_, err = ledgerSvc.AddCharge(res.ID, 2, "Conference room", decimal.RequireFromString("250.00"), date(2025, time.December, 22))
	require.NoError(t, err)

	snap, err := invoiceSvc.BuildSnapshot(res.ID, 2, "en")
	require.NoError(t, err)

	assert.True(t, snap.Total.Equal(decimal.RequireFromString("250.00")),
		"folio 2 invoice must not include folio 1 charges, got %s", snap.Total)
	assert.Len(t, snap.LineItems, 1)

	_, err = invoiceSvc.BuildSnapshot(res.ID, 9, "en")
	assert.ErrorIs(t, err, services.ErrFolioNotFound)
}

func TestInvoiceSnapshot_BillingAddressFallback(t *testing.T) {
	_, resSvc, ledgerSvc, invoiceSvc := newServices(t)
	res := newTestReservation(t, resSvc)

	_, err := ledgerSvc.AddFolio(res.ID, "Company")
	require.NoError(t, err)

	// no folio-2 record yet: falls back to the folio-1 default, which
	// Create seeded from the guest identity
	snap, err := invoiceSvc.BuildSnapshot(res.ID, 2, "en")
	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace", snap.BillingAddress.Name)
	assert.Equal(t, "guest", snap.BillingAddress.Type)

	require.NoError(t, ledgerSvc.UpdateBillingDetails(res.ID, 2, models.BillingDetails{
		Name:    "Acme GmbH",
		Address: "1 Industrial Park",
		City:    "Zurich",
		Country: "CH",
		TaxID:   "CHE-123.456.789",
		Type:    "company",
	}))

	snap, err = invoiceSvc.BuildSnapshot(res.ID, 2, "en")
	require.NoError(t, err)
	assert.Equal(t, "Acme GmbH", snap.BillingAddress.Name)
	assert.Equal(t, "company", snap.BillingAddress.Type)
}

func TestInvoiceSnapshot_LabelLanguages(t *testing.T) {
	_, resSvc, _, invoiceSvc := newServices(t)
	res := newTestReservation(t, resSvc)

	en, err := invoiceSvc.BuildSnapshot(res.ID, 1, "en")
	require.NoError(t, err)
	assert.Equal(t, "Invoice", en.Labels["invoice"])

	es, err := invoiceSvc.BuildSnapshot(res.ID, 1, "es")
	require.NoError(t, err)
	assert.Equal(t, "Factura", es.Labels["invoice"])

	// unknown language falls back to English
	xx, err := invoiceSvc.BuildSnapshot(res.ID, 1, "xx")
	require.NoError(t, err)
	assert.Equal(t, "Invoice", xx.Labels["invoice"])
}

func TestInvoiceSnapshot_LiveRecomputation(t *testing.T) {
	_, resSvc, ledgerSvc, invoiceSvc := newServices(t)
	res := newTestReservation(t, resSvc)

	first, err := invoiceSvc.BuildSnapshot(res.ID, 1, "en")
	require.NoError(t, err)

	_, err = ledgerSvc.AddCharge(res.ID, 1, "Late checkout", decimal.RequireFromString("50.00"), time.Time{})
	require.NoError(t, err)

	second, err := invoiceSvc.BuildSnapshot(res.ID, 1, "en")
	require.NoError(t, err)
	assert.True(t, second.Total.Equal(first.Total.Add(decimal.RequireFromString("50.00"))),
		"the snapshot is computed live from the ledger")
}
