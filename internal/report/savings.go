package report

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/weekly-envelope/backend/internal/models"
	"github.com/weekly-envelope/backend/internal/types"
)

// SavingsWeek is one completed week's savings within a breakdown.
type SavingsWeek struct {
	WeekStart  types.Date `json:"weekStart" example:"2026-01-04"`  // Sunday the week starts on
	Label      string     `json:"weekLabel" example:"Wk 2"`        // Week number label
	Savings    int64      `json:"savingsCents" example:"5000"`     // Unspent budget of the week in cents
	Cumulative int64      `json:"cumulativeCents" example:"12000"` // Running total including this week
}

// SavingsForWeek returns the total unspent budget of all eligible
// envelopes for one week.
//
// Eligible envelopes are non-rollover envelopes created no later than
// the week's start. Savings are floored at zero per envelope, so
// overspending on one envelope never offsets savings on another.
// Transactions outside the week's date range are ignored; callers may
// pass pre-scoped or full slices.
func SavingsForWeek(envelopes []models.Envelope, transactions []models.Transaction, week types.Week) int64 {
	spent := make(map[uuid.UUID]int64)
	for _, t := range transactions {
		if week.Contains(t.Date) {
			spent[t.EnvelopeID] += t.Amount
		}
	}

	var total int64
	for _, e := range envelopes {
		if e.Rollover || e.CreatedOn().After(week.Start()) {
			continue
		}

		if savings := e.WeeklyBudget - spent[e.ID]; savings > 0 {
			total += savings
		}
	}

	return total
}

// CumulativeSavings returns the total savings across all completed
// weeks from first (inclusive) to current (exclusive).
//
// The in-progress current week is never counted. If both bounds name
// the same week there are no completed weeks and the result is 0.
func CumulativeSavings(envelopes []models.Envelope, transactions []models.Transaction, first, current types.Week) int64 {
	var total int64
	for week := range types.Iterate(first, current) {
		total += SavingsForWeek(envelopes, transactions, week)
	}

	return total
}

// SavingsBreakdown returns one entry per completed week from first
// (inclusive) to current (exclusive) in chronological order, each
// carrying the week's savings and the running total.
func SavingsBreakdown(envelopes []models.Envelope, transactions []models.Transaction, first, current types.Week) []SavingsWeek {
	breakdown := make([]SavingsWeek, 0)

	var cumulative int64
	for week := range types.Iterate(first, current) {
		savings := SavingsForWeek(envelopes, transactions, week)
		cumulative += savings

		breakdown = append(breakdown, SavingsWeek{
			WeekStart:  week.Start(),
			Label:      fmt.Sprintf("Wk %d", week.Number()),
			Savings:    savings,
			Cumulative: cumulative,
		})
	}

	return breakdown
}
