package models

import (
	"github.com/weekly-envelope/backend/internal/types"
)

// Envelope represents a weekly spending category with a fixed allowance.
type Envelope struct {
	DefaultModel
	UserID       string `json:"-" gorm:"index"`              // Owner of the envelope, set from the request identity
	Title        string `json:"title" example:"Groceries"`   // Name of the envelope
	WeeklyBudget int64  `json:"weeklyBudgetCents" example:"5000" gorm:"column:weekly_budget"` // Weekly allowance in cents
	Rollover     bool   `json:"rollover" example:"false"`    // Rollover envelopes are excluded from savings accounting
	SortOrder    int    `json:"sortOrder" example:"1"`       // Display ordering, irrelevant to computation
}

// CreatedOn returns the calendar day the envelope was created on.
//
// An envelope participates in a week's accounting only if this day is
// not after the week's start. Once created, it is never retroactively
// excluded.
func (e Envelope) CreatedOn() types.Date {
	return types.DateOf(e.CreatedAt)
}

// EnvelopesForUser returns the user's envelopes ordered by their
// display order.
func EnvelopesForUser(userID string) ([]Envelope, error) {
	var envelopes []Envelope

	err := DB.
		Where(&Envelope{UserID: userID}).
		Order("sort_order ASC, created_at ASC").
		Find(&envelopes).Error

	return envelopes, err
}
