package controllers

import (
	"net/http"
	"strings"
	"time"

	"frontdesk-backend/config"
	"frontdesk-backend/models"
	"frontdesk-backend/utils"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

type loginPayload struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func Login(c *gin.Context) {
	var payload loginPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "error.invalidPayload", "invalid payload")
		return
	}

	username := strings.TrimSpace(payload.Username)
	if username == "" || payload.Password == "" {
		utils.JSONError(c, http.StatusBadRequest, "error.missingCredentials", "username and password required")
		return
	}

	var admin models.Admin
	if err := config.DB.Where("username = ?", username).First(&admin).Error; err != nil {
		utils.JSONError(c, http.StatusUnauthorized, "error.invalidCredentials", "invalid username or password")
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(payload.Password)); err != nil {
		utils.JSONError(c, http.StatusUnauthorized, "error.invalidCredentials", "invalid username or password")
		return
	}

	token, err := utils.GenerateSecureToken(32)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "error.internal", "could not create session")
		return
	}
	expires := time.Now().Add(12 * time.Hour)
	if err := config.DB.Model(&admin).Updates(map[string]interface{}{
		"session_token":    token,
		"token_expires_at": expires,
	}).Error; err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "error.internal", "could not persist session")
		return
	}

	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"token":      token,
		"expires_at": expires,
		"full_name":  admin.FullName,
	})
}
