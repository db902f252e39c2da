package models

import (
	"time"

	"gorm.io/gorm"
)

// DefaultFolioNumber is the implicit first folio of every reservation.
// It exists even when no Folio row was ever created, so ledger readers
// must synthesize it.
const DefaultFolioNumber = 1

// Folio is a sub-ledger within a reservation, used to split charges
// (personal vs. company billing and the like). Numbers start at 1 and
// are scoped to the owning reservation.
type Folio struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	ReservationID uint   `gorm:"column:reservation_id;index;uniqueIndex:idx_folio_res_number" json:"reservation_id"`
	Number        int    `gorm:"column:number;uniqueIndex:idx_folio_res_number" json:"number"`
	Name          string `gorm:"column:name;size:255" json:"name"`
}

// BillingDetails is the billing-address record attached to a folio,
// stored as JSON on the reservation.
type BillingDetails struct {
	Name       string `json:"name"`
	Address    string `json:"address"`
	City       string `json:"city"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
	TaxID      string `json:"tax_id"`
	// Type is one of "company", "agency", "guest".
	Type string `json:"type"`
}
