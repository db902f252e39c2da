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

type AddChargeRequest struct {
	Folio       int     `json:"folio"`
	Description string  `json:"description" binding:"required"`
	Amount      float64 `json:"amount" binding:"required"`
	Date        string  `json:"date"`
}

type AddPaymentRequest struct {
	Folio  int     `json:"folio"`
	Amount float64 `json:"amount" binding:"required"`
	Date   string  `json:"date"`
}

type AddFolioRequest struct {
	Name string `json:"name"`
}

type MoveChargeRequest struct {
	EntryIDs    []string `json:"entry_ids" binding:"required"`
	TargetFolio int      `json:"target_folio" binding:"required"`
	Confirm     bool     `json:"confirm"`
}

type RectifyRequest struct {
	Reason         string  `json:"reason" binding:"required"`
	AdjustmentType string  `json:"adjustment_type" binding:"required"`
	Value          float64 `json:"value" binding:"required"`
	Confirm        bool    `json:"confirm"`
}

type BillingDetailsRequest struct {
	Name       string `json:"name" binding:"required"`
	Address    string `json:"address"`
	City       string `json:"city"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
	TaxID      string `json:"tax_id"`
	Type       string `json:"type"`
}

// ---------------------------
// Controller
// ---------------------------

type LedgerController struct {
	LedgerSvc *services.LedgerService
}

func NewLedgerController(svc *services.LedgerService) *LedgerController {
	return &LedgerController{LedgerSvc: svc}
}

func entryDate(raw string) time.Time {
	if raw == "" {
		return time.Time{}
	}
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t
	}
	return time.Time{}
}

// GetLedger returns the full read model: per-folio and aggregate
// charges, payments and balances.
func (ctrl *LedgerController) GetLedger(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	view, err := ctrl.LedgerSvc.ReadModel(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, view)
}

func (ctrl *LedgerController) AddCharge(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var payload AddChargeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "error.invalidPayload", err.Error())
		return
	}
	folio := payload.Folio
	if folio == 0 {
		folio = models.DefaultFolioNumber
	}

	entry, err := ctrl.LedgerSvc.AddCharge(id, folio, payload.Description,
		decimal.NewFromFloat(payload.Amount), entryDate(payload.Date))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, entry)
}

func (ctrl *LedgerController) AddPayment(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var payload AddPaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "error.invalidPayload", err.Error())
		return
	}
	folio := payload.Folio
	if folio == 0 {
		folio = models.DefaultFolioNumber
	}

	entry, err := ctrl.LedgerSvc.AddPayment(id, folio,
		decimal.NewFromFloat(payload.Amount), entryDate(payload.Date))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, entry)
}

func (ctrl *LedgerController) AddFolio(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var payload AddFolioRequest
	_ = c.ShouldBindJSON(&payload)

	folio, err := ctrl.LedgerSvc.AddFolio(id, payload.Name)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, folio)
}

// MoveCharges handles single and bulk moves: the override map is
// written once for the whole set, so all entries move or none do.
func (ctrl *LedgerController) MoveCharges(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var payload MoveChargeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "error.invalidPayload", err.Error())
		return
	}

	action := services.ActionMoveCharge
	if len(payload.EntryIDs) > 1 {
		action = services.ActionBulkMoveCharges
	}
	if !requireConfirmation(c, action, payload.Confirm) {
		return
	}

	if err := ctrl.LedgerSvc.BulkMove(id, payload.EntryIDs, payload.TargetFolio); err != nil {
		respondServiceError(c, err)
		return
	}
	view, err := ctrl.LedgerSvc.ReadModel(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, view)
}

func (ctrl *LedgerController) RectifyCharge(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	entryID := c.Param("entryId")
	if entryID == "" {
		utils.JSONError(c, http.StatusBadRequest, "error.invalidId", "missing entryId parameter")
		return
	}
	var payload RectifyRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "error.invalidPayload", err.Error())
		return
	}
	if !requireConfirmation(c, services.ActionRectifyCharge, payload.Confirm) {
		return
	}

	entry, err := ctrl.LedgerSvc.Rectify(id, entryID, payload.Reason,
		payload.AdjustmentType, decimal.NewFromFloat(payload.Value))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, entry)
}

func (ctrl *LedgerController) GetBillingDetails(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	folio, ok := parseIDParam(c, "folio")
	if !ok {
		return
	}

	details, err := ctrl.LedgerSvc.BillingDetailsFor(id, int(folio))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, details)
}

func (ctrl *LedgerController) UpdateBillingDetails(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	folio, ok := parseIDParam(c, "folio")
	if !ok {
		return
	}
	var payload BillingDetailsRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "error.invalidPayload", err.Error())
		return
	}

	err := ctrl.LedgerSvc.UpdateBillingDetails(id, int(folio), models.BillingDetails{
		Name:       payload.Name,
		Address:    payload.Address,
		City:       payload.City,
		PostalCode: payload.PostalCode,
		Country:    payload.Country,
		TaxID:      payload.TaxID,
		Type:       payload.Type,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"updated": true})
}
