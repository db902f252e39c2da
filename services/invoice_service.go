package services

import (
	"strconv"
	"time"

	"frontdesk-backend/models"
	"frontdesk-backend/utils"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// InvoiceService builds folio-scoped invoice snapshots. A snapshot is a
// pure function of the ledger at call time; it is recomputed on every
// request and has no persisted copy.
type InvoiceService struct {
	DB     *gorm.DB
	Ledger *LedgerService
}

func NewInvoiceService(db *gorm.DB, ledger *LedgerService) *InvoiceService {
	return &InvoiceService{DB: db, Ledger: ledger}
}

// InvoiceSnapshot is the read-only totals view handed to the
// presentation layer for display or printing. Stored charge amounts are
// VAT-inclusive; Subtotal and Tax are derived by decomposition.
type InvoiceSnapshot struct {
	ReservationID uint      `json:"reservation_id"`
	FolioNumber   int       `json:"folio"`
	IssuedAt      time.Time `json:"issued_at"`
	Language      string    `json:"language"`

	Labels         map[string]string     `json:"labels"`
	BillingAddress models.BillingDetails `json:"billing_address"`
	LineItems      []EntryView           `json:"line_items"`

	TaxRate       decimal.Decimal `json:"tax_rate"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	Tax           decimal.Decimal `json:"tax"`
	Total         decimal.Decimal `json:"total"`
	PaymentsTotal decimal.Decimal `json:"payments_total"`
	Balance       decimal.Decimal `json:"balance"`
}

func (s *InvoiceService) propertyCountry() string {
	var setting models.PropertySetting
	if err := s.DB.First(&setting).Error; err != nil {
		return ""
	}
	return setting.Country
}

// billingAddressFor picks the folio's own billing record, then the
// reservation's default (folio 1), then falls back to the guest
// identity so an invoice never goes out without an addressee.
func billingAddressFor(res *models.Reservation, folio int) models.BillingDetails {
	bd := res.BillingDetailsMap()
	if d, ok := bd[strconv.Itoa(folio)]; ok && d.Name != "" {
		return d
	}
	if d, ok := bd[strconv.Itoa(models.DefaultFolioNumber)]; ok && d.Name != "" {
		return d
	}
	return models.BillingDetails{
		Name:    res.GuestName,
		Address: res.GuestAddress,
		City:    res.GuestCity,
		Country: res.GuestCountry,
		Type:    "guest",
	}
}

// BuildSnapshot assembles the invoice for one folio. Gross totals come
// straight from the ledger read model; net and tax are decomposed with
// the property country's VAT rate (10% default when the country is not
// tabulated). Display amounts are rounded to 2 decimals with the tax
// kept as the exact complement of the rounded net, so subtotal + tax
// always reproduces the gross total.
func (s *InvoiceService) BuildSnapshot(resID uint, folio int, lang string) (*InvoiceSnapshot, error) {
	res, err := s.Ledger.fetchReservation(resID)
	if err != nil {
		return nil, err
	}
	if !folioExists(res, folio) {
		return nil, ErrFolioNotFound
	}

	view := s.Ledger.buildView(res)
	var fv *FolioView
	for i := range view.Folios {
		if view.Folios[i].Number == folio {
			fv = &view.Folios[i]
			break
		}
	}
	if fv == nil {
		// folio exists but holds no entries yet; an empty snapshot is
		// still a valid invoice preview
		fv = &FolioView{Number: folio}
	}

	rate := utils.GetVATRate(s.propertyCountry(), utils.ServiceTypeAccommodation)

	gross := fv.TotalCharges.Round(2)
	netRaw, _ := utils.DecomposeGross(gross, rate)
	subtotal := netRaw.Round(2)
	tax := gross.Sub(subtotal)

	items := make([]EntryView, 0, len(fv.Charges))
	items = append(items, fv.Charges...)

	payments := fv.TotalPayments.Round(2)

	return &InvoiceSnapshot{
		ReservationID:  res.ID,
		FolioNumber:    folio,
		IssuedAt:       time.Now(),
		Language:       lang,
		Labels:         utils.InvoiceLabels(lang),
		BillingAddress: billingAddressFor(res, folio),
		LineItems:      items,
		TaxRate:        rate,
		Subtotal:       subtotal,
		Tax:            tax,
		Total:          gross,
		PaymentsTotal:  payments,
		Balance:        gross.Sub(payments),
	}, nil
}
