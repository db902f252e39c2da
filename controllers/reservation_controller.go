package controllers

import (
	"net/http"
	"time"

	"frontdesk-backend/models"
	"frontdesk-backend/services"
	"frontdesk-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// ---------------------------
// Payload / DTOs
// ---------------------------

type CreateReservationRequest struct {
	Arrival   string  `json:"arrival" binding:"required"`
	Departure string  `json:"departure" binding:"required"`
	Rate      float64 `json:"rate" binding:"required"`
	Pax       int     `json:"pax" binding:"required"`
	RoomID    *uint   `json:"room_id"`

	GuestName    string `json:"guest_name" binding:"required"`
	GuestEmail   string `json:"guest_email"`
	GuestAddress string `json:"guest_address"`
	GuestCity    string `json:"guest_city"`
	GuestCountry string `json:"guest_country"`
}

type UpdateStayRequest struct {
	Arrival   string  `json:"arrival" binding:"required"`
	Departure string  `json:"departure" binding:"required"`
	Rate      float64 `json:"rate" binding:"required"`
	Pax       int     `json:"pax" binding:"required"`
	RoomID    *uint   `json:"room_id"`
}

type ConfirmPayload struct {
	Confirm bool `json:"confirm"`
}

// ---------------------------
// Controller
// ---------------------------

type ReservationController struct {
	ReservationSvc *services.ReservationService
}

func NewReservationController(svc *services.ReservationService) *ReservationController {
	return &ReservationController{ReservationSvc: svc}
}

func parseDate(raw string) (time.Time, bool) {
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func (ctrl *ReservationController) ListReservations(c *gin.Context) {
	list, err := ctrl.ReservationSvc.List()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, list)
}

func (ctrl *ReservationController) GetReservation(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	res, err := ctrl.ReservationSvc.Get(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, res)
}

func (ctrl *ReservationController) CreateReservation(c *gin.Context) {
	var payload CreateReservationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "error.invalidPayload", err.Error())
		return
	}

	arrival, ok := parseDate(payload.Arrival)
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "error.invalidDate", "arrival must be YYYY-MM-DD")
		return
	}
	departure, ok := parseDate(payload.Departure)
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "error.invalidDate", "departure must be YYYY-MM-DD")
		return
	}

	res := models.Reservation{
		Arrival:      arrival,
		Departure:    departure,
		Rate:         decimal.NewFromFloat(payload.Rate),
		Pax:          payload.Pax,
		RoomID:       payload.RoomID,
		GuestName:    payload.GuestName,
		GuestEmail:   payload.GuestEmail,
		GuestAddress: payload.GuestAddress,
		GuestCity:    payload.GuestCity,
		GuestCountry: payload.GuestCountry,
	}
	if err := ctrl.ReservationSvc.Create(&res); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, res)
}

func (ctrl *ReservationController) UpdateStay(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var payload UpdateStayRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "error.invalidPayload", err.Error())
		return
	}
	arrival, okA := parseDate(payload.Arrival)
	departure, okD := parseDate(payload.Departure)
	if !okA || !okD {
		utils.JSONError(c, http.StatusBadRequest, "error.invalidDate", "dates must be YYYY-MM-DD")
		return
	}

	res, err := ctrl.ReservationSvc.UpdateStay(id, &models.Reservation{
		Arrival:   arrival,
		Departure: departure,
		Rate:      decimal.NewFromFloat(payload.Rate),
		Pax:       payload.Pax,
		RoomID:    payload.RoomID,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, res)
}

func (ctrl *ReservationController) CheckIn(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	res, err := ctrl.ReservationSvc.CheckIn(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, res)
}

func (ctrl *ReservationController) CheckOut(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	res, err := ctrl.ReservationSvc.CheckOut(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, res)
}

func (ctrl *ReservationController) CancelReservation(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var payload ConfirmPayload
	_ = c.ShouldBindJSON(&payload)
	if !requireConfirmation(c, services.ActionCancelReservation, payload.Confirm) {
		return
	}

	res, err := ctrl.ReservationSvc.Cancel(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, res)
}

// GetActions exposes the availability + confirmation metadata for the
// lifecycle buttons of one reservation.
func (ctrl *ReservationController) GetActions(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	res, err := ctrl.ReservationSvc.Get(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, ctrl.ReservationSvc.AvailableActions(res))
}
