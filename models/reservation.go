package models

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Reservation statuses. Transitions between them are owned by
// services.ReservationService; nothing else should write Status directly.
const (
	StatusConfirmed  = "confirmed"
	StatusCheckedIn  = "checked_in"
	StatusCheckedOut = "checked_out"
	StatusCancelled  = "cancelled"
)

type Reservation struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	ReferenceCode string `gorm:"column:reference_code;size:64;uniqueIndex" json:"reference_code"`
	Status        string `gorm:"column:status;size:32;default:confirmed" json:"status"`

	Arrival   time.Time `gorm:"column:arrival" json:"arrival"`
	Departure time.Time `gorm:"column:departure" json:"departure"`

	// RoomID is nullable: a confirmed reservation may not have a unit
	// assigned yet.
	RoomID *uint `gorm:"column:room_id;index" json:"room_id,omitempty"`

	Rate decimal.Decimal `gorm:"column:rate;type:decimal(12,2)" json:"rate"`
	Pax  int             `gorm:"column:pax;default:1" json:"pax"`

	GuestName    string `gorm:"column:guest_name;size:255" json:"guest_name"`
	GuestEmail   string `gorm:"column:guest_email;size:150" json:"guest_email"`
	GuestAddress string `gorm:"column:guest_address;type:text" json:"guest_address,omitempty"`
	GuestCity    string `gorm:"column:guest_city;size:128" json:"guest_city,omitempty"`
	GuestCountry string `gorm:"column:guest_country;size:64" json:"guest_country,omitempty"`

	// FolioBillingDetails maps folio number (as a JSON string key) to the
	// billing address used on that folio's invoice. The entry under "1"
	// is the reservation's default billing record.
	FolioBillingDetails datatypes.JSON `gorm:"column:folio_billing_details" json:"folio_billing_details,omitempty"`

	// FolioAssignments maps ledger entry id to the folio the entry was
	// moved to. It overrides LedgerEntry.FolioNumber without ever
	// touching the entry itself.
	FolioAssignments datatypes.JSON `gorm:"column:folio_assignments" json:"folio_assignments,omitempty"`

	Room    *Room         `gorm:"foreignKey:RoomID;references:ID" json:"room,omitempty"`
	Folios  []Folio       `gorm:"foreignKey:ReservationID" json:"folios,omitempty"`
	Entries []LedgerEntry `gorm:"foreignKey:ReservationID" json:"entries,omitempty"`
}

// Nights returns the number of nights of the stay, rounding any partial
// day up. A same-day or inverted range yields 0.
func (r *Reservation) Nights() int {
	d := r.Departure.Sub(r.Arrival)
	if d <= 0 {
		return 0
	}
	nights := int(d / (24 * time.Hour))
	if d%(24*time.Hour) != 0 {
		nights++
	}
	return nights
}

// AssignmentMap decodes FolioAssignments. A missing or empty column
// yields an empty (non-nil) map.
func (r *Reservation) AssignmentMap() map[string]int {
	out := map[string]int{}
	if len(r.FolioAssignments) == 0 {
		return out
	}
	// best-effort: a corrupt column behaves like no overrides
	_ = json.Unmarshal(r.FolioAssignments, &out)
	return out
}

// SetAssignmentMap encodes m back into FolioAssignments.
func (r *Reservation) SetAssignmentMap(m map[string]int) error {
	raw, err := json.Marshal(m)
	if err != nil {
		return err
	}
	r.FolioAssignments = datatypes.JSON(raw)
	return nil
}

// BillingDetailsMap decodes FolioBillingDetails keyed by folio number.
func (r *Reservation) BillingDetailsMap() map[string]BillingDetails {
	out := map[string]BillingDetails{}
	if len(r.FolioBillingDetails) == 0 {
		return out
	}
	_ = json.Unmarshal(r.FolioBillingDetails, &out)
	return out
}

// SetBillingDetailsMap encodes m back into FolioBillingDetails.
func (r *Reservation) SetBillingDetailsMap(m map[string]BillingDetails) error {
	raw, err := json.Marshal(m)
	if err != nil {
		return err
	}
	r.FolioBillingDetails = datatypes.JSON(raw)
	return nil
}
