package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rosecitylabs/pdxevents/internal/helpers"
)

func listVideosRequest(t *testing.T, query string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/v1/videos"+query, nil)

	ListMusicVideos(c)
	return w
}

func TestListMusicVideosRejectsZeroLimit(t *testing.T) {
	w := listVideosRequest(t, "?limit=0")

	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp helpers.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.Message, "Invalid limit")
}

func TestListMusicVideosRejectsNegativePagination(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, listVideosRequest(t, "?limit=-5").Code)
	assert.Equal(t, http.StatusBadRequest, listVideosRequest(t, "?page=0").Code)
	assert.Equal(t, http.StatusBadRequest, listVideosRequest(t, "?page=abc").Code)
}
