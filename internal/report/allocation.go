package report

import (
	"fmt"

	"github.com/google/uuid"
)

// ProposedAllocation is a single proposed transfer from a donor
// envelope. It is validation input only and never persisted.
type ProposedAllocation struct {
	DonorEnvelopeID uuid.UUID `json:"donorEnvelopeId" example:"45b6b5b9-f746-4ae9-b77b-7688b91f8166"` // Envelope expected to have spare balance
	Amount          int64     `json:"amountCents" example:"2000"`                                     // Cents to transfer
}

// AllocationValidation is the result of validating a set of proposed
// allocations against an overage.
type AllocationValidation struct {
	Valid  bool     `json:"valid"`            // True if no constraint was violated
	Errors []string `json:"errors,omitempty"` // One message per violated constraint
}

// ValidateAllocations checks a set of proposed overage transfers
// against the donors' remaining balances and the conservation
// constraint that the transfers exactly offset the overage.
//
// Violations are reported as a value, never as an error return: a
// single invalid input surfaces every violated constraint so the
// caller can re-prompt with all problems visible at once. The order
// of the messages is not significant.
func ValidateAllocations(allocations []ProposedAllocation, overage int64, balances map[uuid.UUID]int64) AllocationValidation {
	if len(allocations) == 0 {
		return AllocationValidation{Errors: []string{"No allocations provided"}}
	}

	var errs []string
	var total int64
	for _, a := range allocations {
		total += a.Amount

		balance, ok := balances[a.DonorEnvelopeID]
		if !ok {
			errs = append(errs, fmt.Sprintf("Donor envelope %s not found", a.DonorEnvelopeID))
			continue
		}

		if a.Amount > balance {
			errs = append(errs, fmt.Sprintf("Allocation for %s (%d) exceeds remaining balance (%d)", a.DonorEnvelopeID, a.Amount, balance))
		}
	}

	if total != overage {
		errs = append(errs, fmt.Sprintf("Total allocated (%d) does not equal overage (%d)", total, overage))
	}

	if len(errs) > 0 {
		return AllocationValidation{Errors: errs}
	}

	return AllocationValidation{Valid: true}
}
