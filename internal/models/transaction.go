package models

import (
	"github.com/google/uuid"
	"github.com/weekly-envelope/backend/internal/types"
)

// Transaction represents a single debit against an envelope.
//
// Transactions are append-only facts: the computation core never
// writes them, it only aggregates over them.
type Transaction struct {
	DefaultModel
	UserID      string     `json:"-" gorm:"index"`                                    // Owner of the transaction, set from the request identity
	EnvelopeID  uuid.UUID  `json:"envelopeId" example:"878c831f-af99-4a71-b3ca-80deb7d793c1"` // ID of the envelope the transaction debits
	Envelope    Envelope   `json:"-"`
	Amount      int64      `json:"amountCents" example:"1050"`                        // Debited amount in cents, always positive
	Date        types.Date `json:"date" example:"2026-02-10"`                         // Calendar day of the transaction
	Merchant    string     `json:"merchant,omitempty" example:"Costco"`               // Where the money was spent
	Description string     `json:"description,omitempty" example:"Weekly groceries"`  // Free text, not used in computation
}

// TransactionsForUserInRange returns the user's transactions with dates
// in the inclusive range [from, to], oldest first.
func TransactionsForUserInRange(userID string, from, to types.Date) ([]Transaction, error) {
	var transactions []Transaction

	err := DB.
		Where(&Transaction{UserID: userID}).
		Where("date >= ? AND date <= ?", from, to).
		Order("date ASC, created_at ASC").
		Find(&transactions).Error

	return transactions, err
}
