package v1

import (
	"strings"

	"github.com/shopspring/decimal"
	"github.com/weekly-envelope/backend/internal/models"
	"github.com/weekly-envelope/backend/internal/report"
)

// EnvelopeEditable represents all user configurable parameters of an
// envelope.
//
// Money fields bind as decimals so that non-integer cent values can be
// rejected with a field error instead of an opaque parse failure. Past
// this boundary, all money is integer cents.
type EnvelopeEditable struct {
	Title             string          `json:"title" example:"Groceries"`            // Name of the envelope, 1-100 characters
	WeeklyBudgetCents decimal.Decimal `json:"weeklyBudgetCents" example:"5000"`     // Weekly allowance in cents, > 0
	Rollover          bool            `json:"rollover" example:"false" default:"false"` // Exclude the envelope from savings accounting
	SortOrder         int             `json:"sortOrder" example:"1" default:"0"`    // Display ordering
}

// validate returns one FieldError per violated constraint.
func (e EnvelopeEditable) validate() []FieldError {
	var fields []FieldError

	if strings.TrimSpace(e.Title) == "" {
		fields = append(fields, FieldError{Field: "title", Error: "must not be empty"})
	} else if len([]rune(e.Title)) > 100 {
		fields = append(fields, FieldError{Field: "title", Error: "must be 100 characters or less"})
	}

	if !e.WeeklyBudgetCents.IsInteger() {
		fields = append(fields, FieldError{Field: "weeklyBudgetCents", Error: "must be an integer number of cents"})
	} else if e.WeeklyBudgetCents.IntPart() <= 0 {
		fields = append(fields, FieldError{Field: "weeklyBudgetCents", Error: "must be greater than 0"})
	}

	return fields
}

// model transforms the API representation into the model representation.
func (e EnvelopeEditable) model(userID string) models.Envelope {
	return models.Envelope{
		UserID:       userID,
		Title:        e.Title,
		WeeklyBudget: e.WeeklyBudgetCents.IntPart(),
		Rollover:     e.Rollover,
		SortOrder:    e.SortOrder,
	}
}

// EnvelopeUpdate represents a partial update of an envelope. Every
// field is optional, an empty body is a valid no-op.
type EnvelopeUpdate struct {
	Title             *string          `json:"title"`
	WeeklyBudgetCents *decimal.Decimal `json:"weeklyBudgetCents"`
	Rollover          *bool            `json:"rollover"`
	SortOrder         *int             `json:"sortOrder"`
}

// validate returns one FieldError per violated constraint. Fields that
// are not part of the update are not checked.
func (u EnvelopeUpdate) validate() []FieldError {
	var fields []FieldError

	if u.Title != nil {
		if strings.TrimSpace(*u.Title) == "" {
			fields = append(fields, FieldError{Field: "title", Error: "must not be empty"})
		} else if len([]rune(*u.Title)) > 100 {
			fields = append(fields, FieldError{Field: "title", Error: "must be 100 characters or less"})
		}
	}

	if u.WeeklyBudgetCents != nil {
		if !u.WeeklyBudgetCents.IsInteger() {
			fields = append(fields, FieldError{Field: "weeklyBudgetCents", Error: "must be an integer number of cents"})
		} else if u.WeeklyBudgetCents.IntPart() <= 0 {
			fields = append(fields, FieldError{Field: "weeklyBudgetCents", Error: "must be greater than 0"})
		}
	}

	return fields
}

// updates returns the changed columns for gorm. A map is used so that
// zero values update correctly.
func (u EnvelopeUpdate) updates() map[string]any {
	updates := make(map[string]any)

	if u.Title != nil {
		updates["title"] = *u.Title
	}

	if u.WeeklyBudgetCents != nil {
		updates["weekly_budget"] = u.WeeklyBudgetCents.IntPart()
	}

	if u.Rollover != nil {
		updates["rollover"] = *u.Rollover
	}

	if u.SortOrder != nil {
		updates["sort_order"] = *u.SortOrder
	}

	return updates
}

type EnvelopeResponse struct {
	Data  *models.Envelope `json:"data"`  // The envelope
	Error *string          `json:"error"` // The error, if any occurred
}

type EnvelopeListResponse struct {
	Data  []models.Envelope `json:"data"`  // List of envelopes, ordered by sortOrder
	Error *string           `json:"error"` // The error, if any occurred
}

type EnvelopeStatusResponse struct {
	Data  *report.EnvelopeStatus `json:"data"`  // Remaining balance and status
	Error *string                `json:"error"` // The error, if any occurred
}
