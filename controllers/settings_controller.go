package controllers

import (
	"errors"
	"net/http"

	"frontdesk-backend/config"
	"frontdesk-backend/models"
	"frontdesk-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type propertySettingsPayload struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Website string `json:"website"`

	Country            string   `json:"country"`
	ServiceFeePerGuest *float64 `json:"service_fee_per_guest"`
}

func GetPropertySettings(c *gin.Context) {
	var setting models.PropertySetting
	if err := config.DB.First(&setting).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.JSONSuccess(c, http.StatusOK, models.PropertySetting{})
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "error.internal", err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, setting)
}

func UpdatePropertySettings(c *gin.Context) {
	var payload propertySettingsPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "error.invalidPayload", err.Error())
		return
	}

	var setting models.PropertySetting
	err := config.DB.First(&setting).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.JSONError(c, http.StatusInternalServerError, "error.internal", err.Error())
		return
	}

	setting.Name = payload.Name
	setting.Address = payload.Address
	setting.Phone = payload.Phone
	setting.Email = payload.Email
	setting.Website = payload.Website
	setting.Country = payload.Country
	if payload.ServiceFeePerGuest != nil {
		fee := decimal.NewFromFloat(*payload.ServiceFeePerGuest)
		if fee.IsNegative() {
			utils.JSONError(c, http.StatusBadRequest, "error.invalid_amount", "service fee must not be negative")
			return
		}
		setting.ServiceFeePerGuest = fee
	}

	if err := config.DB.Save(&setting).Error; err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "error.internal", err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, setting)
}
