package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"frontdesk-backend/services"
	"frontdesk-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// parseIDParam reads a numeric :id path param; responds 400 itself when
// the value is missing or not a number.
func parseIDParam(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		utils.JSONError(c, http.StatusBadRequest, "error.invalidId", "invalid "+name+" parameter")
		return 0, false
	}
	return uint(id), true
}

// respondServiceError maps a services sentinel error to an HTTP status
// and a stable error code for the frontend.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrReservationNotFound),
		errors.Is(err, services.ErrEntryNotFound),
		errors.Is(err, services.ErrFolioNotFound):
		utils.JSONError(c, http.StatusNotFound, "error."+err.Error(), err.Error())
	case errors.Is(err, gorm.ErrRecordNotFound):
		utils.JSONError(c, http.StatusNotFound, "error.not_found", err.Error())
	case errors.Is(err, services.ErrInvalidTransition):
		utils.JSONError(c, http.StatusConflict, "error.invalidTransition", err.Error())
	case errors.Is(err, services.ErrInvalidAmount),
		errors.Is(err, services.ErrEmptyDescription),
		errors.Is(err, services.ErrEmptyReason),
		errors.Is(err, services.ErrInvalidAdjustment),
		errors.Is(err, services.ErrNotRectifiable),
		errors.Is(err, services.ErrInvalidDateRange),
		errors.Is(err, services.ErrInvalidPax),
		errors.Is(err, services.ErrInvalidBillingType):
		utils.JSONError(c, http.StatusBadRequest, "error."+err.Error(), err.Error())
	default:
		utils.JSONError(c, http.StatusInternalServerError, "error.internal", err.Error())
	}
}

// requireConfirmation answers 409 with the confirmation contract when a
// destructive action was sent without confirm=true. Returns true when
// the caller may proceed.
func requireConfirmation(c *gin.Context, action string, confirmed bool) bool {
	if !services.RequiresConfirmation(action) || confirmed {
		return true
	}
	c.JSON(http.StatusConflict, gin.H{
		"success": false,
		"error": gin.H{
			"code":                 "error.confirmationRequired",
			"message":              "this action is destructive and must be confirmed",
			"action":               action,
			"requiresConfirmation": true,
		},
	})
	return false
}
