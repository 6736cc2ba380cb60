package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/rosecitylabs/pdxevents/config"
	"github.com/rosecitylabs/pdxevents/internal/helpers"
	"github.com/rosecitylabs/pdxevents/internal/models"
)

// minDonationCents is the provider's practical floor; amounts are integer
// cents and the order is created in USD for amount/100.
const minDonationCents = 100

type DonationRequest struct {
	Amount     int    `json:"amount" binding:"required"`
	DonorName  string `json:"donor_name"`
	DonorEmail string `json:"donor_email"`
	Message    string `json:"message"`
}

// CreateDonation validates the amount, creates a provider order via
// client credentials, records a pending donation row, and returns the
// approval redirect URL.
func CreateDonation(c *gin.Context) {
	var req DonationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Amount (in cents) is required.")
		return
	}

	if req.Amount < minDonationCents {
		helpers.RespondWithError(c, http.StatusBadRequest, "Minimum donation is $1.00 (100 cents).")
		return
	}

	if req.DonorEmail != "" {
		if err := helpers.ValidateTextLength("donor_email", req.DonorEmail, 254); err != nil {
			helpers.RespondWithError(c, http.StatusBadRequest, err.Error())
			return
		}
	}
	if err := helpers.ValidateTextLength("message", req.Message, 500); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	paypalCfg, err := config.LoadPayPalConfig()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Payment provider not configured."})
		return
	}

	client := helpers.NewPayPalClient(paypalCfg, nil)

	accessToken, err := client.GetAccessToken()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	orderID, approvalURL, err := client.CreateOrder(accessToken, req.Amount, "Donation to PDX Events")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	donation := models.Donation{
		Amount:          req.Amount,
		DonorName:       req.DonorName,
		DonorEmail:      req.DonorEmail,
		Message:         req.Message,
		Status:          "pending",
		ProviderOrderID: orderID,
	}
	if err := gormDB.Create(&donation).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record donation."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": approvalURL})
}
