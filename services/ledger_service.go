package services

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"frontdesk-backend/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Adjustment types accepted by Rectify.
const (
	AdjustmentAmount  = "amount"
	AdjustmentPercent = "percent"
)

// LedgerService is the source of truth for a reservation's monetary
// entries and their folio placement. All mutations validate first and
// are no-ops on invalid input; persisted entries are append-only except
// for the generator-owned service fees.
type LedgerService struct {
	DB        *gorm.DB
	Generator *ChargeGenerator
}

func NewLedgerService(db *gorm.DB, gen *ChargeGenerator) *LedgerService {
	return &LedgerService{DB: db, Generator: gen}
}

// EntryView is a ledger entry as presented to callers: the originating
// folio plus the effective folio after any assignment override.
// Computed marks accommodation lines that exist only in the read model.
type EntryView struct {
	ID             string          `json:"id"`
	Date           time.Time       `json:"date"`
	Description    string          `json:"description"`
	Amount         decimal.Decimal `json:"amount"`
	Type           string          `json:"type"`
	Folio          int             `json:"folio"`
	EffectiveFolio int             `json:"effective_folio"`
	AutoApplied    bool            `json:"auto_applied"`
	Computed       bool            `json:"computed"`
	Rectifies      string          `json:"rectifies,omitempty"`
}

// FolioView is the per-folio slice of the ledger read model.
type FolioView struct {
	Number        int             `json:"number"`
	Name          string          `json:"name"`
	Charges       []EntryView     `json:"charges"`
	Payments      []EntryView     `json:"payments"`
	TotalCharges  decimal.Decimal `json:"total_charges"`
	TotalPayments decimal.Decimal `json:"total_payments"`
	Balance       decimal.Decimal `json:"balance"`
}

// LedgerView is the full read model: every folio plus reservation-wide
// totals. The aggregate balance always equals the sum of the per-folio
// balances because both are derived from the same effective-folio pass.
type LedgerView struct {
	ReservationID uint            `json:"reservation_id"`
	Folios        []FolioView     `json:"folios"`
	TotalCharges  decimal.Decimal `json:"total_charges"`
	TotalPayments decimal.Decimal `json:"total_payments"`
	Balance       decimal.Decimal `json:"balance"`
}

func (s *LedgerService) fetchReservation(resID uint) (*models.Reservation, error) {
	var res models.Reservation
	err := s.DB.
		Preload("Room.RoomType").
		Preload("Folios").
		Preload("Entries").
		First(&res, resID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, fmt.Errorf("failed to fetch reservation: %w", err)
	}
	return &res, nil
}

// folioExists reports whether a folio number is addressable on the
// reservation. Folio 1 always exists, even without a row.
func folioExists(res *models.Reservation, number int) bool {
	if number == models.DefaultFolioNumber {
		return true
	}
	for _, f := range res.Folios {
		if f.Number == number {
			return true
		}
	}
	return false
}

// effectiveFolio resolves an entry's folio after overrides. Entries
// with no folio at all land on folio 1, never orphaned.
func effectiveFolio(assignments map[string]int, e *models.LedgerEntry) int {
	if target, ok := assignments[e.EntryID]; ok {
		return target
	}
	if e.FolioNumber > 0 {
		return e.FolioNumber
	}
	return models.DefaultFolioNumber
}

// ReadModel assembles the full ledger view for a reservation: computed
// accommodation charges plus all persisted entries, grouped by
// effective folio.
func (s *LedgerService) ReadModel(resID uint) (*LedgerView, error) {
	res, err := s.fetchReservation(resID)
	if err != nil {
		return nil, err
	}
	return s.buildView(res), nil
}

func (s *LedgerService) buildView(res *models.Reservation) *LedgerView {
	assignments := res.AssignmentMap()

	views := map[int]*FolioView{
		models.DefaultFolioNumber: {Number: models.DefaultFolioNumber, Name: "Main folio"},
	}
	for _, f := range res.Folios {
		views[f.Number] = &FolioView{Number: f.Number, Name: f.Name}
	}
	folioFor := func(number int) *FolioView {
		if v, ok := views[number]; ok {
			return v
		}
		// defensive: an override pointing at a folio that lost its row
		// still gets a bucket rather than dropping money on the floor
		v := &FolioView{Number: number, Name: fmt.Sprintf("Folio %d", number)}
		views[number] = v
		return v
	}

	addEntry := func(v EntryView) {
		fv := folioFor(v.EffectiveFolio)
		if v.Type == models.EntryTypePayment {
			fv.Payments = append(fv.Payments, v)
			fv.TotalPayments = fv.TotalPayments.Add(v.Amount)
		} else {
			fv.Charges = append(fv.Charges, v)
			fv.TotalCharges = fv.TotalCharges.Add(v.Amount)
		}
	}

	// computed accommodation lines first, then persisted entries
	for _, e := range s.Generator.AccommodationCharges(res) {
		addEntry(EntryView{
			ID:             e.EntryID,
			Date:           e.Date,
			Description:    e.Description,
			Amount:         e.Amount,
			Type:           e.Type,
			Folio:          e.FolioNumber,
			EffectiveFolio: e.FolioNumber,
			AutoApplied:    true,
			Computed:       true,
		})
	}
	for i := range res.Entries {
		e := &res.Entries[i]
		addEntry(EntryView{
			ID:             e.EntryID,
			Date:           e.Date,
			Description:    e.Description,
			Amount:         e.Amount,
			Type:           e.Type,
			Folio:          e.FolioNumber,
			EffectiveFolio: effectiveFolio(assignments, e),
			AutoApplied:    e.AutoApplied,
			Rectifies:      e.RectifiesEntryID,
		})
	}

	out := &LedgerView{ReservationID: res.ID}
	numbers := make([]int, 0, len(views))
	for n := range views {
		numbers = append(numbers, n)
	}
	sort.Ints(numbers)
	for _, n := range numbers {
		fv := views[n]
		fv.Balance = fv.TotalCharges.Sub(fv.TotalPayments)
		out.TotalCharges = out.TotalCharges.Add(fv.TotalCharges)
		out.TotalPayments = out.TotalPayments.Add(fv.TotalPayments)
		out.Folios = append(out.Folios, *fv)
	}
	out.Balance = out.TotalCharges.Sub(out.TotalPayments)
	return out
}

// FolioBalance returns the balance of a single folio.
func (s *LedgerService) FolioBalance(resID uint, folio int) (decimal.Decimal, error) {
	view, err := s.ReadModel(resID)
	if err != nil {
		return decimal.Zero, err
	}
	for _, fv := range view.Folios {
		if fv.Number == folio {
			return fv.Balance, nil
		}
	}
	return decimal.Zero, ErrFolioNotFound
}

// AddCharge appends a charge entry to a folio. The amount must be a
// positive number and the description non-empty, otherwise nothing is
// written.
func (s *LedgerService) AddCharge(resID uint, folio int, description string, amount decimal.Decimal, date time.Time) (*models.LedgerEntry, error) {
	if !amount.IsPositive() {
		return nil, ErrInvalidAmount
	}
	description = strings.TrimSpace(description)
	if description == "" {
		return nil, ErrEmptyDescription
	}

	res, err := s.fetchReservation(resID)
	if err != nil {
		return nil, err
	}
	if !folioExists(res, folio) {
		return nil, ErrFolioNotFound
	}
	if date.IsZero() {
		date = time.Now()
	}

	entry := models.LedgerEntry{
		EntryID:       uuid.NewString(),
		ReservationID: res.ID,
		Date:          date,
		Description:   description,
		Amount:        amount,
		Type:          models.EntryTypeCharge,
		FolioNumber:   folio,
	}
	if err := s.DB.Create(&entry).Error; err != nil {
		return nil, fmt.Errorf("failed to record charge: %w", err)
	}
	return &entry, nil
}

// AddPayment appends a payment entry. Payments are stored positive and
// subtracted from charges when balances are computed.
func (s *LedgerService) AddPayment(resID uint, folio int, amount decimal.Decimal, date time.Time) (*models.LedgerEntry, error) {
	if !amount.IsPositive() {
		return nil, ErrInvalidAmount
	}

	res, err := s.fetchReservation(resID)
	if err != nil {
		return nil, err
	}
	if !folioExists(res, folio) {
		return nil, ErrFolioNotFound
	}
	if date.IsZero() {
		date = time.Now()
	}

	entry := models.LedgerEntry{
		EntryID:       uuid.NewString(),
		ReservationID: res.ID,
		Date:          date,
		Description:   "Payment received",
		Amount:        amount,
		Type:          models.EntryTypePayment,
		FolioNumber:   folio,
	}
	if err := s.DB.Create(&entry).Error; err != nil {
		return nil, fmt.Errorf("failed to record payment: %w", err)
	}
	return &entry, nil
}

// AddFolio creates the next folio for a reservation. Folio 1 is never
// created explicitly; the first added folio is number 2.
func (s *LedgerService) AddFolio(resID uint, name string) (*models.Folio, error) {
	res, err := s.fetchReservation(resID)
	if err != nil {
		return nil, err
	}

	next := models.DefaultFolioNumber
	for _, f := range res.Folios {
		if f.Number > next {
			next = f.Number
		}
	}
	next++

	name = strings.TrimSpace(name)
	if name == "" {
		name = fmt.Sprintf("Folio %d", next)
	}

	folio := models.Folio{
		ReservationID: res.ID,
		Number:        next,
		Name:          name,
	}
	if err := s.DB.Create(&folio).Error; err != nil {
		return nil, fmt.Errorf("failed to create folio: %w", err)
	}
	return &folio, nil
}

// findPersistedEntry returns the entry with the given id, if it belongs
// to the reservation. Computed accommodation lines are not addressable.
func findPersistedEntry(res *models.Reservation, entryID string) (*models.LedgerEntry, bool) {
	for i := range res.Entries {
		if res.Entries[i].EntryID == entryID {
			return &res.Entries[i], true
		}
	}
	return nil, false
}

// MoveCharge reassigns an entry to another folio by writing the
// assignment override. The entry's originating folio is never mutated,
// so moves are fully reversible and audit-safe.
func (s *LedgerService) MoveCharge(resID uint, entryID string, targetFolio int) error {
	return s.BulkMove(resID, []string{entryID}, targetFolio)
}

// BulkMove applies the same folio override to a set of entries. The
// whole set is validated before the single column write, so from the
// caller's perspective all entries move or none do.
func (s *LedgerService) BulkMove(resID uint, entryIDs []string, targetFolio int) error {
	if len(entryIDs) == 0 {
		return ErrEntryNotFound
	}

	res, err := s.fetchReservation(resID)
	if err != nil {
		return err
	}
	if !folioExists(res, targetFolio) {
		return ErrFolioNotFound
	}
	for _, id := range entryIDs {
		if _, ok := findPersistedEntry(res, id); !ok {
			return ErrEntryNotFound
		}
	}

	assignments := res.AssignmentMap()
	for _, id := range entryIDs {
		assignments[id] = targetFolio
	}
	if err := res.SetAssignmentMap(assignments); err != nil {
		return err
	}

	if err := s.DB.Model(&models.Reservation{}).
		Where("id = ?", res.ID).
		Update("folio_assignments", res.FolioAssignments).Error; err != nil {
		return fmt.Errorf("failed to save folio assignments: %w", err)
	}
	return nil
}

// Rectify corrects an erroneous charge without deleting history: it
// appends a new negative charge referencing the original, on the
// original's originating folio. adjustmentType is "amount" (refund =
// value) or "percent" (refund = original x value / 100). The original
// entry is never edited or removed.
func (s *LedgerService) Rectify(resID uint, entryID, reason, adjustmentType string, value decimal.Decimal) (*models.LedgerEntry, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, ErrEmptyReason
	}
	if !value.IsPositive() {
		return nil, ErrInvalidAmount
	}
	if adjustmentType != AdjustmentAmount && adjustmentType != AdjustmentPercent {
		return nil, ErrInvalidAdjustment
	}

	res, err := s.fetchReservation(resID)
	if err != nil {
		return nil, err
	}
	original, ok := findPersistedEntry(res, entryID)
	if !ok {
		return nil, ErrEntryNotFound
	}
	// only positive charges can be rectified: not payments, and not a
	// rectification adjustment itself
	if !original.IsCharge() || !original.Amount.IsPositive() {
		return nil, ErrNotRectifiable
	}

	refund := value
	if adjustmentType == AdjustmentPercent {
		refund = original.Amount.Mul(value).Div(decimal.NewFromInt(100))
	}

	entry := models.LedgerEntry{
		EntryID:          uuid.NewString(),
		ReservationID:    res.ID,
		Date:             time.Now(),
		Description:      fmt.Sprintf("Rectification: %s (%s)", original.Description, reason),
		Amount:           refund.Abs().Neg(),
		Type:             models.EntryTypeCharge,
		FolioNumber:      original.FolioNumber,
		RectifiesEntryID: original.EntryID,
	}
	if err := s.DB.Create(&entry).Error; err != nil {
		return nil, fmt.Errorf("failed to record rectification: %w", err)
	}
	return &entry, nil
}

// UpdateBillingDetails sets the billing address for a folio. The record
// under folio 1 doubles as the reservation's default billing details.
func (s *LedgerService) UpdateBillingDetails(resID uint, folio int, details models.BillingDetails) error {
	switch details.Type {
	case "", "guest", "company", "agency":
	default:
		return ErrInvalidBillingType
	}

	res, err := s.fetchReservation(resID)
	if err != nil {
		return err
	}
	if !folioExists(res, folio) {
		return ErrFolioNotFound
	}

	if details.Type == "" {
		details.Type = "guest"
	}

	bd := res.BillingDetailsMap()
	bd[strconv.Itoa(folio)] = details
	if err := res.SetBillingDetailsMap(bd); err != nil {
		return err
	}
	if err := s.DB.Model(&models.Reservation{}).
		Where("id = ?", res.ID).
		Update("folio_billing_details", res.FolioBillingDetails).Error; err != nil {
		return fmt.Errorf("failed to save billing details: %w", err)
	}
	return nil
}

// BillingDetailsFor returns the billing address that would appear on an
// invoice for the folio, applying the folio-specific record, then the
// folio 1 default, then the guest identity.
func (s *LedgerService) BillingDetailsFor(resID uint, folio int) (models.BillingDetails, error) {
	res, err := s.fetchReservation(resID)
	if err != nil {
		return models.BillingDetails{}, err
	}
	if !folioExists(res, folio) {
		return models.BillingDetails{}, ErrFolioNotFound
	}
	return billingAddressFor(res, folio), nil
}
