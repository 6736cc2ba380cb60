package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidTransition(t *testing.T) {
	assert.NoError(t, ValidTransition(StatusPending, StatusApproved))
	assert.NoError(t, ValidTransition(StatusPending, StatusRejected))

	// approved and rejected are terminal
	assert.Error(t, ValidTransition(StatusApproved, StatusRejected))
	assert.Error(t, ValidTransition(StatusRejected, StatusApproved))

	// pending is not a valid target
	assert.Error(t, ValidTransition(StatusApproved, StatusPending))
	assert.Error(t, ValidTransition(StatusPending, StatusPending))
	assert.Error(t, ValidTransition(StatusPending, ModerationStatus("archived")))
}
