package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rosecitylabs/pdxevents/internal/helpers"
	"github.com/rosecitylabs/pdxevents/internal/models"
)

type MusicVideoRequest struct {
	ArtistName string `json:"artist_name" binding:"required"`
	Title      string `json:"title" binding:"required"`
	VideoURL   string `json:"video_url" binding:"required"`
}

func CreateMusicVideo(c *gin.Context) {
	var req MusicVideoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}

	if err := helpers.ValidateHTTPURL(req.VideoURL); err != nil {
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

	video := models.MusicVideo{
		ID:         uuid.New(),
		ArtistName: req.ArtistName,
		Title:      req.Title,
		VideoURL:   req.VideoURL,
		Status:     models.StatusPending,
		UserID:     userID.(uuid.UUID),
	}

	if err := gormDB.Create(&video).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to submit music video.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Music video submitted for review.",
		"video_id": video.ID,
	})
}

func ListMusicVideos(c *gin.Context) {
	page := c.DefaultQuery("page", "1")
	limit := c.DefaultQuery("limit", "10")

	pageNum, err := helpers.StringToInt(page)
	if err != nil || pageNum < 1 {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid page number.")
		return
	}

	limitNum, err := helpers.StringToInt(limit)
	if err != nil || limitNum < 1 {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid limit.")
		return
	}

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	query := gormDB.Model(&models.MusicVideo{}).Where("status = ?", models.StatusApproved)

	var totalCount int64
	query.Count(&totalCount)

	var videos []models.MusicVideo
	offset := (pageNum - 1) * limitNum
	err = query.Offset(offset).Limit(limitNum).Order("created_at DESC").Find(&videos).Error
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving music videos.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"videos":      videos,
		"total":       totalCount,
		"page":        pageNum,
		"limit":       limitNum,
		"total_pages": (totalCount + int64(limitNum) - 1) / int64(limitNum),
	})
}

func ListMyMusicVideos(c *gin.Context) {
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

	var videos []models.MusicVideo
	if err := gormDB.Where("user_id = ?", userID).Order("created_at DESC").Find(&videos).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving music videos.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"videos": videos})
}

func DeleteMusicVideo(c *gin.Context) {
	videoID := c.Param("id")
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

	result := gormDB.Where("id = ? AND user_id = ? AND status = ?", videoID, userID, models.StatusPending).
		Delete(&models.MusicVideo{})
	if result.Error != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to delete music video.")
		return
	}

	if result.RowsAffected == 0 {
		helpers.RespondWithError(c, http.StatusForbidden, "Music video not found, already moderated, or not yours to delete.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Music video deleted successfully.",
	})
}
