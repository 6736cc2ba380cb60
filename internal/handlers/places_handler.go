package handlers

import (
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/rosecitylabs/pdxevents/config"
)

const placesDetailsURL = "https://maps.googleapis.com/maps/api/place/details/json"

// GetPlaceDetails proxies the places provider's details endpoint, passing
// the raw provider JSON through untouched.
func GetPlaceDetails(c *gin.Context) {
	placeID := c.Query("place_id")
	if placeID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing place_id parameter."})
		return
	}

	placesCfg, err := config.LoadPlacesConfig()
	if err != nil || placesCfg.APIKey == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Places API key not configured."})
		return
	}

	requestURL := fmt.Sprintf("%s?place_id=%s&key=%s",
		placesDetailsURL, url.QueryEscape(placeID), url.QueryEscape(placesCfg.APIKey))

	resp, err := http.Get(requestURL)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Places provider request failed."})
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("Places provider returned %d.", resp.StatusCode)})
		return
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read places provider response."})
		return
	}

	c.Data(http.StatusOK, "application/json", body)
}
