package v1

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/weekly-envelope/backend/internal/models"
	"github.com/weekly-envelope/backend/internal/types"
)

// TransactionEditable represents all user configurable parameters of a
// transaction.
type TransactionEditable struct {
	EnvelopeID  string          `json:"envelopeId" example:"878c831f-af99-4a71-b3ca-80deb7d793c1"` // ID of the envelope the transaction debits
	AmountCents decimal.Decimal `json:"amountCents" example:"1050"`                                // Debited amount in cents, at least 1
	Date        string          `json:"date" example:"2026-02-10"`                                 // Calendar day of the transaction, YYYY-MM-DD
	Merchant    string          `json:"merchant" example:"Costco" default:""`                      // Where the money was spent
	Description string          `json:"description" example:"Weekly groceries" default:""`         // Free text
}

// validate returns one FieldError per violated constraint.
func (t TransactionEditable) validate() []FieldError {
	var fields []FieldError

	if t.EnvelopeID == "" {
		fields = append(fields, FieldError{Field: "envelopeId", Error: "is required"})
	} else if _, err := uuid.Parse(t.EnvelopeID); err != nil {
		fields = append(fields, FieldError{Field: "envelopeId", Error: "must be a valid envelope ID"})
	}

	if !t.AmountCents.IsInteger() {
		fields = append(fields, FieldError{Field: "amountCents", Error: "must be an integer number of cents"})
	} else if t.AmountCents.IntPart() < 1 {
		fields = append(fields, FieldError{Field: "amountCents", Error: "must be at least 1"})
	}

	if !validDate(t.Date) {
		fields = append(fields, FieldError{Field: "date", Error: "must be a valid date in YYYY-MM-DD format"})
	}

	return fields
}

// model transforms the API representation into the model
// representation. It must only be called on validated input.
func (t TransactionEditable) model(userID string) models.Transaction {
	envelopeID, _ := uuid.Parse(t.EnvelopeID)
	date, _ := types.ParseDate(t.Date)

	return models.Transaction{
		UserID:      userID,
		EnvelopeID:  envelopeID,
		Amount:      t.AmountCents.IntPart(),
		Date:        date,
		Merchant:    t.Merchant,
		Description: t.Description,
	}
}

// TransactionUpdate represents a partial update of a transaction.
// Every field is optional, an empty body is a valid no-op.
type TransactionUpdate struct {
	EnvelopeID  *string          `json:"envelopeId"`
	AmountCents *decimal.Decimal `json:"amountCents"`
	Date        *string          `json:"date"`
	Merchant    *string          `json:"merchant"`
	Description *string          `json:"description"`
}

// validate returns one FieldError per violated constraint. Fields that
// are not part of the update are not checked.
func (u TransactionUpdate) validate() []FieldError {
	var fields []FieldError

	if u.EnvelopeID != nil {
		if _, err := uuid.Parse(*u.EnvelopeID); err != nil {
			fields = append(fields, FieldError{Field: "envelopeId", Error: "must be a valid envelope ID"})
		}
	}

	if u.AmountCents != nil {
		if !u.AmountCents.IsInteger() {
			fields = append(fields, FieldError{Field: "amountCents", Error: "must be an integer number of cents"})
		} else if u.AmountCents.IntPart() < 1 {
			fields = append(fields, FieldError{Field: "amountCents", Error: "must be at least 1"})
		}
	}

	if u.Date != nil && !validDate(*u.Date) {
		fields = append(fields, FieldError{Field: "date", Error: "must be a valid date in YYYY-MM-DD format"})
	}

	return fields
}

// updates returns the changed columns for gorm. A map is used so that
// empty strings update correctly.
func (u TransactionUpdate) updates() map[string]any {
	updates := make(map[string]any)

	if u.EnvelopeID != nil {
		id, _ := uuid.Parse(*u.EnvelopeID)
		updates["envelope_id"] = id
	}

	if u.AmountCents != nil {
		updates["amount"] = u.AmountCents.IntPart()
	}

	if u.Date != nil {
		date, _ := types.ParseDate(*u.Date)
		updates["date"] = date
	}

	if u.Merchant != nil {
		updates["merchant"] = *u.Merchant
	}

	if u.Description != nil {
		updates["description"] = *u.Description
	}

	return updates
}

type TransactionResponse struct {
	Data  *models.Transaction `json:"data"`  // The transaction
	Error *string             `json:"error"` // The error, if any occurred
}

type TransactionListResponse struct {
	Data  []models.Transaction `json:"data"`  // List of transactions, newest first
	Error *string              `json:"error"` // The error, if any occurred
}

// TransactionQueryFilter contains the supported query string filters
// for the transaction list.
type TransactionQueryFilter struct {
	Envelope string `form:"envelope"` // Filter by envelope ID
	From     string `form:"from"`     // Earliest date to include, YYYY-MM-DD
	To       string `form:"to"`       // Latest date to include, YYYY-MM-DD
	Merchant string `form:"merchant"` // Filter by merchant, supports * globbing
}
