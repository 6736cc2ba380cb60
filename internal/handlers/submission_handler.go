package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rosecitylabs/pdxevents/internal/helpers"
	"github.com/rosecitylabs/pdxevents/internal/models"
)

const maxDescriptionLength = 2000

// CreateSubmission accepts a user-submitted event as multipart form data
// with an optional flyer image. Submissions start pending and become
// publicly visible only after moderation.
func CreateSubmission(c *gin.Context) {
	title := c.PostForm("title")
	description := c.PostForm("description")
	category := c.PostForm("category")
	eventDate := c.PostForm("event_date")
	startClock := c.PostForm("start_time")
	endClock := c.PostForm("end_time")

	if title == "" || eventDate == "" || startClock == "" {
		helpers.RespondWithError(c, http.StatusBadRequest, "Missing required fields: title, event_date, start_time.")
		return
	}

	if err := helpers.ValidateEventDate(eventDate); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}
	if err := helpers.ValidateClock(startClock); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}
	if endClock != "" {
		if err := helpers.ValidateClock(endClock); err != nil {
			helpers.RespondWithError(c, http.StatusBadRequest, err.Error())
			return
		}
	}
	if err := helpers.ValidateTextLength("description", description, maxDescriptionLength); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	ticketURL := c.PostForm("ticket_url")
	if err := helpers.ValidateHTTPURL(ticketURL); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	userID, exists := c.Get("user_id")
	if !exists {
		helpers.RespondWithError(c, http.StatusUnauthorized, "User ID not found in token.")
		return
	}

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	submission := models.Submission{
		ID:            uuid.New(),
		Title:         title,
		Description:   description,
		Category:      category,
		VenueName:     c.PostForm("venue_name"),
		VenueAddress:  c.PostForm("venue_address"),
		VenueCity:     c.PostForm("venue_city"),
		VenueState:    c.PostForm("venue_state"),
		VenueZip:      c.PostForm("venue_zip"),
		EventDate:     eventDate,
		StartClock:    startClock,
		EndClock:      endClock,
		PriceDisplay:  c.PostForm("price_display"),
		TicketURL:     ticketURL,
		OrganizerName: c.PostForm("organizer_name"),
		Status:        models.StatusPending,
		UserID:        userID.(uuid.UUID),
	}

	flyerFile, err := c.FormFile("flyer")
	if err == nil {
		flyerPath, err := helpers.UploadFile(c, flyerFile, "event_flyers")
		if err != nil {
			helpers.RespondWithError(c, http.StatusBadRequest, err.Error())
			return
		}
		submission.ImageURL = flyerPath
	}

	if err := gormDB.Create(&submission).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to create submission.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":       "Event submitted for review.",
		"submission_id": submission.ID,
	})
}

func ListMySubmissions(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		helpers.RespondWithError(c, http.StatusUnauthorized, "User ID not found in token.")
		return
	}

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	var submissions []models.Submission
	if err := gormDB.Where("user_id = ?", userID).Order("created_at DESC").Find(&submissions).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving submissions.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"submissions": submissions})
}

// DeleteSubmission lets a submitter withdraw their own event while it is
// still pending. Moderated submissions cannot be deleted.
func DeleteSubmission(c *gin.Context) {
	submissionID := c.Param("id")
	userID, exists := c.Get("user_id")
	if !exists {
		helpers.RespondWithError(c, http.StatusUnauthorized, "User ID not found in token.")
		return
	}

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	result := gormDB.Where("id = ? AND user_id = ? AND status = ?", submissionID, userID, models.StatusPending).
		Delete(&models.Submission{})
	if result.Error != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to delete submission.")
		return
	}

	if result.RowsAffected == 0 {
		helpers.RespondWithError(c, http.StatusForbidden, "Submission not found, already moderated, or not yours to delete.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Submission deleted successfully.",
	})
}
