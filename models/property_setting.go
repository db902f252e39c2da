package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PropertySetting is the single-row property profile. Country drives the
// VAT rate applied on invoices; ServiceFeePerGuest is the per-guest
// per-night fee seeded onto every reservation's ledger.
type PropertySetting struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Name    string `gorm:"size:255" json:"name"`
	Address string `gorm:"type:text" json:"address"`
	Phone   string `gorm:"size:50" json:"phone"`
	Email   string `gorm:"size:150" json:"email"`
	Website string `gorm:"size:255" json:"website"`

	Country            string          `gorm:"size:8" json:"country"`
	ServiceFeePerGuest decimal.Decimal `gorm:"type:decimal(12,2)" json:"service_fee_per_guest"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
