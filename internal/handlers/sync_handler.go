package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/rosecitylabs/pdxevents/config"
	"github.com/rosecitylabs/pdxevents/internal/helpers"
	"github.com/rosecitylabs/pdxevents/internal/syncer"
)

type ImportRequest struct {
	Source string                 `json:"source"`
	Events []syncer.ProviderEvent `json:"events" binding:"required"`
}

const defaultImportSource = "manual_import"

// ImportEvents upserts a caller-provided batch of provider-shaped events.
// The run always answers 200 once processing has started, reporting chunk
// failures through the stats; only a failure before any processing yields
// a 500.
func ImportEvents(c *gin.Context) {
	var req ImportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Expected an events array.")
		return
	}

	source := req.Source
	if source == "" {
		source = defaultImportSource
	}

	imp, ok := importerFromContext(c)
	if !ok {
		return
	}

	stats, err := imp.Run(c.Request.Context(), source, req.Events)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Import failed before processing.",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, syncResponse(stats))
}

// RunSync fetches the current event list from the listing provider and
// imports it.
func RunSync(c *gin.Context) {
	providerCfg, err := config.LoadProviderConfig()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Listing provider not configured.",
			"details": err.Error(),
		})
		return
	}

	source := c.DefaultQuery("source", "eventlistings")

	records, err := syncer.FetchProviderEvents(c.Request.Context(), nil, *providerCfg)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Failed to fetch events from listing provider.",
			"details": err.Error(),
		})
		return
	}

	imp, ok := importerFromContext(c)
	if !ok {
		return
	}

	stats, err := imp.Run(c.Request.Context(), source, records)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Import failed before processing.",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, syncResponse(stats))
}

func importerFromContext(c *gin.Context) (*syncer.Importer, bool) {
	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return nil, false
	}
	gormDB := db.(*gorm.DB)

	return syncer.NewImporter(
		syncer.NewGormEventStore(gormDB),
		syncer.NewGormSyncLogStore(gormDB),
		slog.Default(),
	), true
}

func syncResponse(stats *syncer.Stats) gin.H {
	statsBody := gin.H{
		"processed": stats.Processed,
		"added":     stats.Added,
		"updated":   stats.Updated,
		"errors":    len(stats.Errors),
	}
	if len(stats.Errors) > 0 {
		statsBody["error_details"] = stats.Errors
	}
	return gin.H{
		"success": true,
		"stats":   statsBody,
	}
}
