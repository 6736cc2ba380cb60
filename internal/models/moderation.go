package models

import "fmt"

type ModerationStatus string

const (
	StatusPending  ModerationStatus = "pending"
	StatusApproved ModerationStatus = "approved"
	StatusRejected ModerationStatus = "rejected"
)

// ValidTransition reports whether a moderation record may move from one
// status to another. Only pending records can be transitioned; approved
// and rejected are terminal.
func ValidTransition(from, to ModerationStatus) error {
	if to != StatusApproved && to != StatusRejected {
		return fmt.Errorf("invalid target status %q", to)
	}
	if from != StatusPending {
		return fmt.Errorf("cannot transition from %q", from)
	}
	return nil
}
