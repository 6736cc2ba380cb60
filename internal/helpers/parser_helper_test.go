package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateEventDate(t *testing.T) {
	assert.NoError(t, ValidateEventDate("2026-03-06"))
	assert.Error(t, ValidateEventDate("03/06/2026"))
	assert.Error(t, ValidateEventDate("soon"))
}

func TestValidateClock(t *testing.T) {
	assert.NoError(t, ValidateClock("18:30"))
	assert.NoError(t, ValidateClock("00:00"))
	assert.Error(t, ValidateClock("6pm"))
	assert.Error(t, ValidateClock("25:00"))
}

func TestValidateHTTPURL(t *testing.T) {
	assert.NoError(t, ValidateHTTPURL(""))
	assert.NoError(t, ValidateHTTPURL("https://example.com/tickets"))
	assert.Error(t, ValidateHTTPURL("ftp://example.com"))
	assert.Error(t, ValidateHTTPURL("not a url"))
}

func TestValidateTextLength(t *testing.T) {
	assert.NoError(t, ValidateTextLength("description", "short", 10))
	assert.Error(t, ValidateTextLength("description", "this is far too long", 10))
}
