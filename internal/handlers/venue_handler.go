package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/rosecitylabs/pdxevents/internal/aggregation"
	"github.com/rosecitylabs/pdxevents/internal/helpers"
	"github.com/rosecitylabs/pdxevents/internal/models"
)

// ListVenues serves the de-duplicated venue directory: the approved-venues
// table merged with venues implied by approved events.
func ListVenues(c *gin.Context) {
	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	var venues []models.Venue
	var events []models.Event
	var submissions []models.Submission

	g := new(errgroup.Group)
	g.Go(func() error {
		if err := gormDB.Where("status = ?", models.StatusApproved).Find(&venues).Error; err != nil {
			log.Printf("Error fetching venues: %v", err)
			venues = nil
		}
		return nil
	})
	g.Go(func() error {
		if err := gormDB.Find(&events).Error; err != nil {
			log.Printf("Error fetching synced events for venues: %v", err)
			events = nil
		}
		if err := gormDB.Where("status = ?", models.StatusApproved).Find(&submissions).Error; err != nil {
			log.Printf("Error fetching approved submissions for venues: %v", err)
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
			continue
		}
		listed = append(listed, le)
	}

	result := aggregation.NormalizeVenues(venues, listed)

	c.JSON(http.StatusOK, gin.H{
		"venues": result,
		"total":  len(result),
	})
}
