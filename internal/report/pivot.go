package report

import (
	"fmt"
	"maps"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/weekly-envelope/backend/internal/models"
	"github.com/weekly-envelope/backend/internal/types"
)

// PivotRow is one week's transaction totals broken out per envelope.
type PivotRow struct {
	WeekStart types.Date          `json:"weekStart" example:"2026-01-04"` // Sunday the week starts on
	Label     string              `json:"weekLabel" example:"Wk 2"`       // Week number label
	Cells     map[uuid.UUID]int64 `json:"cells"`                          // Spent cents per envelope ID
	Total     int64               `json:"totalCents" example:"3500"`      // Sum of all cells in the row
}

// PivotRows groups the transactions with dates in the inclusive range
// [from, to] into a week-by-envelope matrix.
//
// Weeks without any transactions are omitted entirely and rows are
// ordered newest week first, matching the "recent history" display.
func PivotRows(transactions []models.Transaction, from, to types.Date) []PivotRow {
	buckets := make(map[types.Week]map[uuid.UUID]int64)
	for _, t := range transactions {
		if t.Date.Before(from) || t.Date.After(to) {
			continue
		}

		week := types.WeekOf(t.Date)
		if buckets[week] == nil {
			buckets[week] = make(map[uuid.UUID]int64)
		}
		buckets[week][t.EnvelopeID] += t.Amount
	}

	weeks := slices.Collect(maps.Keys(buckets))
	slices.SortFunc(weeks, func(a, b types.Week) int {
		return time.Time(b).Compare(time.Time(a))
	})

	rows := make([]PivotRow, 0, len(weeks))
	for _, week := range weeks {
		cells := buckets[week]

		var total int64
		for _, cents := range cells {
			total += cents
		}

		rows = append(rows, PivotRow{
			WeekStart: week.Start(),
			Label:     fmt.Sprintf("Wk %d", week.Number()),
			Cells:     cells,
			Total:     total,
		})
	}

	return rows
}
