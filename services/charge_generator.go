package services

import (
	"errors"
	"fmt"
	"time"

	"frontdesk-backend/models"
	"frontdesk-backend/utils"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ServiceFeeLabel marks auto-applied per-night service fee entries so
// the generator can recognize its own output.
const ServiceFeeLabel = "Service fee"

// ChargeGenerator produces the recurring charges a reservation must
// carry for its current date range and occupancy. Accommodation charges
// are computed on every read and never persisted, so they track date
// and rate edits for free. Per-night service fees are persisted; the
// generator reconciles them against the current stay instead of
// appending blindly, which keeps repeated runs idempotent.
type ChargeGenerator struct {
	DB *gorm.DB
}

func NewChargeGenerator(db *gorm.DB) *ChargeGenerator {
	return &ChargeGenerator{DB: db}
}

// AccommodationCharges returns one computed charge per night of stay,
// each at the reservation's nightly rate, on the default folio. The
// entries carry synthetic ids and exist only in the read model.
func (g *ChargeGenerator) AccommodationCharges(res *models.Reservation) []models.LedgerEntry {
	nights := res.Nights()
	if nights == 0 {
		return nil
	}

	roomType := "Room"
	if res.Room != nil {
		if res.Room.RoomType.TypeName != "" {
			roomType = res.Room.RoomType.TypeName
		} else if res.Room.RoomNumber != "" {
			roomType = "Room " + res.Room.RoomNumber
		}
	}

	entries := make([]models.LedgerEntry, 0, nights)
	for i := 0; i < nights; i++ {
		entries = append(entries, models.LedgerEntry{
			EntryID:       fmt.Sprintf("night-%d-%d", res.ID, i+1),
			ReservationID: res.ID,
			Date:          res.Arrival.AddDate(0, 0, i),
			Description:   fmt.Sprintf("Accommodation - %s", roomType),
			Amount:        res.Rate,
			Type:          models.EntryTypeCharge,
			FolioNumber:   models.DefaultFolioNumber,
			AutoApplied:   true,
		})
	}
	return entries
}

// ServiceFeePerGuest resolves the per-guest per-night fee from the
// property settings, falling back to the SERVICE_FEE_PER_GUEST env
// variable when no settings row exists.
func (g *ChargeGenerator) ServiceFeePerGuest() decimal.Decimal {
	var setting models.PropertySetting
	if err := g.DB.First(&setting).Error; err == nil && setting.ServiceFeePerGuest.IsPositive() {
		return setting.ServiceFeePerGuest
	}

	raw := utils.EnvOrDefault("SERVICE_FEE_PER_GUEST", "3.50")
	fee, err := decimal.NewFromString(raw)
	if err != nil || !fee.IsPositive() {
		return decimal.NewFromFloat(3.50)
	}
	return fee
}

// EnsureServiceFees reconciles the persisted auto-applied service fee
// entries with the reservation's current nights and pax: one entry per
// night at pax x fee, folio 1. When the existing set already matches it
// is left untouched, so the original entry ids survive; otherwise the
// stale set is replaced in one transaction. Manually added charges are
// never touched.
func (g *ChargeGenerator) EnsureServiceFees(res *models.Reservation) error {
	if res == nil || res.ID == 0 {
		return ErrReservationNotFound
	}

	nights := res.Nights()
	perNight := g.ServiceFeePerGuest().Mul(decimal.NewFromInt(int64(res.Pax)))

	var existing []models.LedgerEntry
	if err := g.DB.
		Where("reservation_id = ? AND auto_applied = ? AND type = ?", res.ID, true, models.EntryTypeCharge).
		Where("description LIKE ?", ServiceFeeLabel+"%").
		Order("date ASC").
		Find(&existing).Error; err != nil {
		return err
	}

	if serviceFeesMatch(existing, res, nights, perNight) {
		return nil
	}

	desired := make([]models.LedgerEntry, 0, nights)
	for i := 0; i < nights; i++ {
		desired = append(desired, models.LedgerEntry{
			EntryID:       uuid.NewString(),
			ReservationID: res.ID,
			Date:          res.Arrival.AddDate(0, 0, i),
			Description:   fmt.Sprintf("%s (%d guests)", ServiceFeeLabel, res.Pax),
			Amount:        perNight,
			Type:          models.EntryTypeCharge,
			FolioNumber:   models.DefaultFolioNumber,
			AutoApplied:   true,
		})
	}

	return g.DB.Transaction(func(tx *gorm.DB) error {
		if len(existing) > 0 {
			ids := make([]string, 0, len(existing))
			for _, e := range existing {
				ids = append(ids, e.EntryID)
			}
			if err := tx.Where("entry_id IN ?", ids).Delete(&models.LedgerEntry{}).Error; err != nil {
				return err
			}
		}
		if len(desired) == 0 {
			return nil
		}
		if err := tx.Create(&desired).Error; err != nil {
			if isDuplicateKey(err) {
				return errors.New("service_fee_conflict")
			}
			return err
		}
		return nil
	})
}

func serviceFeesMatch(existing []models.LedgerEntry, res *models.Reservation, nights int, perNight decimal.Decimal) bool {
	if len(existing) != nights {
		return false
	}
	for i, e := range existing {
		if !e.Amount.Equal(perNight) {
			return false
		}
		if !sameDay(e.Date, res.Arrival.AddDate(0, 0, i)) {
			return false
		}
	}
	return true
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
