package services

import (
	"errors"
	"fmt"
	"strconv"

	"frontdesk-backend/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ReservationService owns the reservation lifecycle: creation, edits,
// and the status state machine. Legal transitions are
// confirmed -> checked_in -> checked_out, with confirmed -> cancelled
// as the alternate terminal edge; checked_out and cancelled are final.
// Transitions never touch the ledger, and an outstanding balance does
// not block check-out.
type ReservationService struct {
	DB        *gorm.DB
	Generator *ChargeGenerator
}

func NewReservationService(db *gorm.DB, gen *ChargeGenerator) *ReservationService {
	return &ReservationService{DB: db, Generator: gen}
}

// ActionAvailability tells the presentation layer which lifecycle
// actions are currently legal, and which of them demand an explicit
// confirmation before the mutation is sent.
type ActionAvailability struct {
	Action               string `json:"action"`
	Allowed              bool   `json:"allowed"`
	RequiresConfirmation bool   `json:"requires_confirmation"`
}

func (s *ReservationService) Get(id uint) (*models.Reservation, error) {
	var res models.Reservation
	err := s.DB.
		Preload("Room.RoomType").
		Preload("Folios").
		Preload("Entries").
		First(&res, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, fmt.Errorf("failed to fetch reservation: %w", err)
	}
	return &res, nil
}

func (s *ReservationService) List() ([]models.Reservation, error) {
	var out []models.Reservation
	err := s.DB.Preload("Room.RoomType").Order("arrival ASC").Find(&out).Error
	return out, err
}

func (s *ReservationService) validate(res *models.Reservation) error {
	if !res.Departure.After(res.Arrival) {
		return ErrInvalidDateRange
	}
	if res.Pax <= 0 {
		return ErrInvalidPax
	}
	if res.Rate.IsNegative() {
		return ErrInvalidAmount
	}
	return nil
}

// Create books a new reservation in confirmed status, seeds the default
// billing details from the guest identity and runs the charge generator
// so the per-night service fees exist from day one.
func (s *ReservationService) Create(res *models.Reservation) error {
	if err := s.validate(res); err != nil {
		return err
	}

	res.Status = models.StatusConfirmed
	if res.ReferenceCode == "" {
		res.ReferenceCode = uuid.NewString()
	}

	if len(res.FolioBillingDetails) == 0 {
		bd := map[string]models.BillingDetails{
			strconv.Itoa(models.DefaultFolioNumber): {
				Name:    res.GuestName,
				Address: res.GuestAddress,
				City:    res.GuestCity,
				Country: res.GuestCountry,
				Type:    "guest",
			},
		}
		if err := res.SetBillingDetailsMap(bd); err != nil {
			return err
		}
	}

	if err := s.DB.Create(res).Error; err != nil {
		if isDuplicateKey(err) {
			return errors.New("reference_code_conflict")
		}
		return fmt.Errorf("failed to create reservation: %w", err)
	}

	return s.Generator.EnsureServiceFees(res)
}

// UpdateStay edits the date range, rate, pax and room assignment, then
// reconciles the generated service fees against the new stay. Computed
// accommodation charges need no reconciliation since they are derived
// on read.
func (s *ReservationService) UpdateStay(id uint, upd *models.Reservation) (*models.Reservation, error) {
	res, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if res.Status == models.StatusCancelled {
		return nil, ErrInvalidTransition
	}

	res.Arrival = upd.Arrival
	res.Departure = upd.Departure
	res.Rate = upd.Rate
	res.Pax = upd.Pax
	res.RoomID = upd.RoomID
	if err := s.validate(res); err != nil {
		return nil, err
	}

	if err := s.DB.Model(&models.Reservation{}).
		Where("id = ?", res.ID).
		Updates(map[string]interface{}{
			"arrival":   res.Arrival,
			"departure": res.Departure,
			"rate":      res.Rate,
			"pax":       res.Pax,
			"room_id":   res.RoomID,
		}).Error; err != nil {
		return nil, fmt.Errorf("failed to update reservation: %w", err)
	}

	if err := s.Generator.EnsureServiceFees(res); err != nil {
		return nil, err
	}
	return s.Get(id)
}

// transition moves a reservation from exactly one expected status to
// the next. Anything else is rejected with ErrInvalidTransition and the
// stored status stays as it was.
func (s *ReservationService) transition(id uint, from, to string) (*models.Reservation, error) {
	res, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if res.Status != from {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, res.Status, to)
	}
	if err := s.DB.Model(&models.Reservation{}).
		Where("id = ? AND status = ?", id, from).
		Update("status", to).Error; err != nil {
		return nil, fmt.Errorf("failed to update status: %w", err)
	}
	res.Status = to
	return res, nil
}

func (s *ReservationService) CheckIn(id uint) (*models.Reservation, error) {
	return s.transition(id, models.StatusConfirmed, models.StatusCheckedIn)
}

func (s *ReservationService) CheckOut(id uint) (*models.Reservation, error) {
	return s.transition(id, models.StatusCheckedIn, models.StatusCheckedOut)
}

// Cancel is irreversible; callers must have collected the user's
// confirmation (see RequiresConfirmation). Cancellation is a status,
// not a delete: the reservation and its ledger stay on record.
func (s *ReservationService) Cancel(id uint) (*models.Reservation, error) {
	return s.transition(id, models.StatusConfirmed, models.StatusCancelled)
}

func CanCheckIn(res *models.Reservation) bool {
	return res.Status == models.StatusConfirmed
}

func CanCheckOut(res *models.Reservation) bool {
	return res.Status == models.StatusCheckedIn
}

func CanCancel(res *models.Reservation) bool {
	return res.Status == models.StatusConfirmed
}

// AvailableActions reports which lifecycle actions are legal for the
// reservation's current status, so the UI offers only valid buttons
// instead of relying on the operations to fail.
func (s *ReservationService) AvailableActions(res *models.Reservation) []ActionAvailability {
	return []ActionAvailability{
		{Action: "reservation.checkIn", Allowed: CanCheckIn(res)},
		{Action: "reservation.checkOut", Allowed: CanCheckOut(res)},
		{
			Action:               ActionCancelReservation,
			Allowed:              CanCancel(res),
			RequiresConfirmation: RequiresConfirmation(ActionCancelReservation),
		},
	}
}
