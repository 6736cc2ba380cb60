package handlers

import (
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/rosecitylabs/pdxevents/internal/aggregation"
	"github.com/rosecitylabs/pdxevents/internal/helpers"
	"github.com/rosecitylabs/pdxevents/internal/models"
)

// ListEvents merges synced provider events with approved user submissions
// and applies the search/category/date filters. The two source reads are
// issued together; a failed branch is logged and served as empty rather
// than failing the whole page.
func ListEvents(c *gin.Context) {
	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	now := time.Now()

	var events []models.Event
	var submissions []models.Submission

	g := new(errgroup.Group)
	g.Go(func() error {
		if err := gormDB.Where("start_time >= ?", now.AddDate(0, 0, -1)).Find(&events).Error; err != nil {
			log.Printf("Error fetching synced events: %v", err)
			events = nil
		}
		return nil
	})
	g.Go(func() error {
		if err := gormDB.Where("status = ?", models.StatusApproved).Find(&submissions).Error; err != nil {
			log.Printf("Error fetching approved submissions: %v", err)
			submissions = nil
		}
		return nil
	})
	_ = g.Wait()

	listed := make([]aggregation.ListedEvent, 0, len(events)+len(submissions))
	for _, e := range events {
		listed = append(listed, aggregation.FromEvent(e))
	}
	for _, s := range submissions {
		le, err := aggregation.FromSubmission(s, time.Local)
		if err != nil {
			log.Printf("Skipping submission with unparseable schedule: %v", err)
			continue
		}
		listed = append(listed, le)
	}

	result := aggregation.Filter(listed, aggregation.Query{
		Search:     c.Query("search"),
		Category:   c.DefaultQuery("category", aggregation.CategoryAll),
		DateFilter: c.DefaultQuery("date", aggregation.DateFilterAll),
		Now:        now,
	})

	c.JSON(http.StatusOK, gin.H{
		"events": result,
		"total":  len(result),
	})
}

// GetEvent serves an event detail from either source by id.
func GetEvent(c *gin.Context) {
	eventID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid event ID.")
		return
	}

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	listed, ok := findListedEvent(gormDB, eventID)
	if !ok {
		helpers.RespondWithError(c, http.StatusNotFound, "Event not found.")
		return
	}

	c.JSON(http.StatusOK, listed)
}

// GetEventQR renders a PNG QR code pointing at the event's ticket URL, or
// its public detail page when no ticket link exists.
func GetEventQR(c *gin.Context) {
	eventID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid event ID.")
		return
	}

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	listed, ok := findListedEvent(gormDB, eventID)
	if !ok {
		helpers.RespondWithError(c, http.StatusNotFound, "Event not found.")
		return
	}

	target := listed.TicketURL
	if target == "" {
		baseURL := os.Getenv("PUBLIC_BASE_URL")
		if baseURL == "" {
			baseURL = "https://pdxevents.org"
		}
		target = baseURL + "/events/" + listed.ID
	}

	png, err := qrcode.Encode(target, qrcode.Medium, 256)
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to generate QR code.")
		return
	}

	c.Data(http.StatusOK, "image/png", png)
}

func findListedEvent(gormDB *gorm.DB, id uuid.UUID) (aggregation.ListedEvent, bool) {
	var event models.Event
	if err := gormDB.Where("id = ?", id).First(&event).Error; err == nil {
		return aggregation.FromEvent(event), true
	}

	var submission models.Submission
	err := gormDB.Where("id = ? AND status = ?", id, models.StatusApproved).First(&submission).Error
	if err != nil {
		return aggregation.ListedEvent{}, false
	}

	listed, err := aggregation.FromSubmission(submission, time.Local)
	if err != nil {
		return aggregation.ListedEvent{}, false
	}
	return listed, true
}
