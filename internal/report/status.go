// Package report implements the computation core of the backend:
// point-in-time envelope status, savings aggregation over completed
// weeks, weekly pivot tables and overage allocation validation.
//
// All functions are pure. They operate on caller-supplied slices,
// mutate nothing and hold no state between calls, so they are safe to
// call concurrently.
package report

import (
	"github.com/weekly-envelope/backend/internal/types"
)

// Status is the qualitative spending state of an envelope.
type Status string

const (
	StatusOver    Status = "Over"
	StatusWatch   Status = "Watch"
	StatusOnTrack Status = "On Track"
)

// EnvelopeStatus is the point-in-time state of an envelope within a week.
type EnvelopeStatus struct {
	Remaining int64  `json:"remainingCents" example:"2000"` // Remaining balance in cents, negative when overspent
	Status    Status `json:"status" example:"Watch"`        // Qualitative status
}

// ComputeStatus derives the remaining balance and status of an envelope.
// received and donated are the allocation totals the envelope received
// from and gave to other envelopes during the week containing today.
func ComputeStatus(budget, spent, received, donated int64, today types.Date) EnvelopeStatus {
	remaining := budget - spent + received - donated

	return EnvelopeStatus{
		Remaining: remaining,
		Status:    StatusLabel(remaining, budget, types.RemainingDaysFraction(today)),
	}
}

// StatusLabel returns the status for a remaining balance.
//
// An exhausted or overspent envelope is "Over". Otherwise the balance
// is compared against the budget scaled by the fraction of the week
// still ahead: an envelope spending faster than the week passes is on
// "Watch", everything else is "On Track".
func StatusLabel(remaining, budget int64, remainingDays float64) Status {
	if remaining <= 0 {
		return StatusOver
	}

	if float64(remaining) < float64(budget)*remainingDays {
		return StatusWatch
	}

	return StatusOnTrack
}
