package models

import (
	"github.com/google/uuid"
	"github.com/weekly-envelope/backend/internal/types"
)

// Allocation covers part of one envelope's weekly overage with spare
// balance from a donor envelope.
type Allocation struct {
	DefaultModel
	UserID          string     `json:"-" gorm:"index"`                                                 // Owner of the allocation, set from the request identity
	EnvelopeID      uuid.UUID  `json:"envelopeId" example:"878c831f-af99-4a71-b3ca-80deb7d793c1"`      // ID of the overspent envelope receiving the balance
	Envelope        Envelope   `json:"-"`
	DonorEnvelopeID uuid.UUID  `json:"donorEnvelopeId" example:"45b6b5b9-f746-4ae9-b77b-7688b91f8166"` // ID of the envelope giving up balance
	DonorEnvelope   Envelope   `json:"-" gorm:"foreignKey:DonorEnvelopeID"`
	Amount          int64      `json:"amountCents" example:"2000"`                                     // Transferred amount in cents, always positive
	WeekStart       types.Date `json:"weekStart" example:"2026-02-08"`                                 // Sunday of the week the overage occurred in
}

// AllocationsForUser returns all of the user's allocations, newest
// week first.
func AllocationsForUser(userID string) ([]Allocation, error) {
	var allocations []Allocation

	err := DB.
		Where(&Allocation{UserID: userID}).
		Order("week_start DESC, created_at ASC").
		Find(&allocations).Error

	return allocations, err
}

// AllocationsForUserInWeek returns the user's allocations for a single week.
func AllocationsForUserInWeek(userID string, week types.Week) ([]Allocation, error) {
	var allocations []Allocation

	err := DB.
		Where(&Allocation{UserID: userID}).
		Where("week_start = ?", week.Start()).
		Find(&allocations).Error

	return allocations, err
}
