package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	EntryTypeCharge  = "charge"
	EntryTypePayment = "payment"
)

// LedgerEntry is an immutable charge or payment on a reservation.
// Charges are stored positive except rectification adjustments, which
// are negative; payments are stored positive and subtracted when the
// balance is computed. Entries are never edited or deleted once written
// (a wrong charge gets a rectification entry instead), with the single
// exception of auto-applied service fees, which the charge generator
// owns and reconciles.
type LedgerEntry struct {
	// EntryID is a uuid so folio assignment overrides can reference
	// entries independently of database row ids.
	EntryID string `gorm:"column:entry_id;primaryKey;size:64" json:"id"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"-"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	ReservationID uint `gorm:"column:reservation_id;index" json:"reservation_id"`

	// Date is the business date the entry applies to, not the moment it
	// was recorded.
	Date        time.Time       `gorm:"column:date" json:"date"`
	Description string          `gorm:"column:description;size:512" json:"description"`
	Amount      decimal.Decimal `gorm:"column:amount;type:decimal(12,2)" json:"amount"`
	Type        string          `gorm:"column:type;size:16" json:"type"`

	// FolioNumber is the entry's originating folio. The effective folio
	// may differ when Reservation.FolioAssignments overrides it.
	FolioNumber int `gorm:"column:folio_number;default:1" json:"folio_number"`

	// AutoApplied marks entries written by the charge generator so it
	// can find and reconcile its own output.
	AutoApplied bool `gorm:"column:auto_applied;default:false" json:"auto_applied"`

	// RectifiesEntryID links a rectification adjustment back to the
	// charge it corrects.
	RectifiesEntryID string `gorm:"column:rectifies_entry_id;size:64;index" json:"rectifies_entry_id,omitempty"`
}

func (e *LedgerEntry) IsCharge() bool  { return e.Type == EntryTypeCharge }
func (e *LedgerEntry) IsPayment() bool { return e.Type == EntryTypePayment }
