package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rosecitylabs/pdxevents/internal/helpers"
	"github.com/rosecitylabs/pdxevents/internal/models"
)

type ModerationRequest struct {
	Status          models.ModerationStatus `json:"status" binding:"required"`
	RejectionReason *string                 `json:"rejection_reason"`
}

// UpdateSubmissionStatus transitions a user-submitted event out of
// pending. Approved and rejected are terminal; a rejection reason is
// attached when provided. Persistence errors are surfaced to the caller
// unchanged.
func UpdateSubmissionStatus(c *gin.Context) {
	submissionID := c.Param("id")

	var req ModerationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}

	moderatorID, exists := c.Get("user_id")
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

	var submission models.Submission
	if err := gormDB.Where("id = ?", submissionID).First(&submission).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			helpers.RespondWithError(c, http.StatusNotFound, "Submission not found.")
			return
		}
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error finding submission.")
		return
	}

	if err := models.ValidTransition(submission.Status, req.Status); err != nil {
		helpers.RespondWithError(c, http.StatusConflict, err.Error())
		return
	}

	now := time.Now()
	modID := moderatorID.(uuid.UUID)
	submission.Status = req.Status
	submission.ModeratedBy = &modID
	submission.ModeratedAt = &now
	if req.Status == models.StatusRejected {
		submission.RejectionReason = req.RejectionReason
	}

	if err := gormDB.Save(&submission).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    "Submission status updated.",
		"submission": submission,
	})
}

// UpdateMusicVideoStatus is the music-video counterpart of
// UpdateSubmissionStatus with identical transition rules.
func UpdateMusicVideoStatus(c *gin.Context) {
	videoID := c.Param("id")

	var req ModerationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}

	moderatorID, exists := c.Get("user_id")
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

	var video models.MusicVideo
	if err := gormDB.Where("id = ?", videoID).First(&video).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			helpers.RespondWithError(c, http.StatusNotFound, "Music video not found.")
			return
		}
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error finding music video.")
		return
	}

	if err := models.ValidTransition(video.Status, req.Status); err != nil {
		helpers.RespondWithError(c, http.StatusConflict, err.Error())
		return
	}

	now := time.Now()
	modID := moderatorID.(uuid.UUID)
	video.Status = req.Status
	video.ModeratedBy = &modID
	video.ModeratedAt = &now
	if req.Status == models.StatusRejected {
		video.RejectionReason = req.RejectionReason
	}

	if err := gormDB.Save(&video).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Music video status updated.",
		"video":   video,
	})
}

// ListPendingSubmissions serves the moderation queue for user events.
func ListPendingSubmissions(c *gin.Context) {
	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	var submissions []models.Submission
	if err := gormDB.Where("status = ?", models.StatusPending).Order("created_at ASC").Find(&submissions).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving pending submissions.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"submissions": submissions})
}

// ListPendingMusicVideos serves the moderation queue for artist videos.
func ListPendingMusicVideos(c *gin.Context) {
	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	var videos []models.MusicVideo
	if err := gormDB.Where("status = ?", models.StatusPending).Order("created_at ASC").Find(&videos).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving pending music videos.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"videos": videos})
}
