package v1

import (
	"github.com/google/uuid"
	"github.com/weekly-envelope/backend/internal/models"
	"github.com/weekly-envelope/backend/internal/report"
)

// AllocationCreate is the request body for covering a week's overage.
// All proposed transfers are validated together and persisted
// atomically, a partially applied allocation never exists.
type AllocationCreate struct {
	EnvelopeID  string                      `json:"envelopeId" example:"878c831f-af99-4a71-b3ca-80deb7d793c1"` // ID of the overspent envelope
	WeekStart   string                      `json:"weekStart" example:"2026-02-08"`                            // Any day inside the week the overage occurred in, YYYY-MM-DD
	Allocations []report.ProposedAllocation `json:"allocations"`                                               // Proposed transfers, must sum to the overage
}

// validate returns one FieldError per violated constraint. The
// allocations themselves are validated against balances later.
func (a AllocationCreate) validate() []FieldError {
	var fields []FieldError

	if a.EnvelopeID == "" {
		fields = append(fields, FieldError{Field: "envelopeId", Error: "is required"})
	} else if _, err := uuid.Parse(a.EnvelopeID); err != nil {
		fields = append(fields, FieldError{Field: "envelopeId", Error: "must be a valid envelope ID"})
	}

	if !validDate(a.WeekStart) {
		fields = append(fields, FieldError{Field: "weekStart", Error: "must be a valid date in YYYY-MM-DD format"})
	}

	return fields
}

type AllocationResponse struct {
	Data  *models.Allocation `json:"data"`  // The allocation
	Error *string            `json:"error"` // The error, if any occurred
}

type AllocationListResponse struct {
	Data  []models.Allocation `json:"data"`  // List of allocations, newest week first
	Error *string             `json:"error"` // The error, if any occurred
}

type AllocationValidationResponse struct {
	Data  *report.AllocationValidation `json:"data"`  // The validation result
	Error *string                      `json:"error"` // The error, if any occurred
}
