package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/rosecitylabs/pdxevents/internal/helpers"
)

func donationRequest(t *testing.T, body string, withDB bool) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	req := httptest.NewRequest(http.MethodPost, "/v1/donations", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req

	if withDB {
		c.Set("db", &gorm.DB{})
	}

	CreateDonation(c)
	return w
}

func TestCreateDonationRejectsBelowMinimum(t *testing.T) {
	w := donationRequest(t, `{"amount": 50}`, false)

	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp helpers.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.Message, "$1.00")
}

func TestCreateDonationRejectsMissingAmount(t *testing.T) {
	w := donationRequest(t, `{"donor_name": "Rose"}`, false)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// Amount 500 clears the minimum guard; with no provider credentials
// configured the handler then fails fast with a descriptive error before
// touching the database.
func TestCreateDonationMinimumGuardPassesAtOneDollarPlus(t *testing.T) {
	t.Setenv("PAYPAL_CLIENT_ID", "")
	t.Setenv("PAYPAL_CLIENT_SECRET", "")

	w := donationRequest(t, `{"amount": 500}`, true)

	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "PayPal credentials not configured")
}

func TestCreateDonationRejectsOversizedMessage(t *testing.T) {
	body := `{"amount": 500, "message": "` + strings.Repeat("x", 600) + `"}`
	w := donationRequest(t, body, false)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
