package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/weekly-envelope/backend/internal/httputil"
	"github.com/weekly-envelope/backend/internal/models"
	"github.com/weekly-envelope/backend/internal/report"
	"github.com/weekly-envelope/backend/internal/types"
)

// RegisterSavingsRoutes registers the routes for the savings report
// with the RouterGroup that is passed.
func RegisterSavingsRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsSavings)
	r.GET("", GetSavings)
}

// SavingsReport is the savings summary over all completed weeks.
type SavingsReport struct {
	TotalCents int64                `json:"totalCents" example:"12000"` // Savings across all completed weeks in cents
	Weeks      []report.SavingsWeek `json:"weeks"`                      // Per-week breakdown, oldest first
}

type SavingsResponse struct {
	Data  *SavingsReport `json:"data"`  // The savings report
	Error *string        `json:"error"` // The error, if any occurred
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Savings
// @Success		204
// @Router			/v1/savings [options]
func OptionsSavings(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Savings report
// @Description	Returns the unspent budget accumulated over completed weeks. The week containing "until" is still in progress and not counted.
// @Tags			Savings
// @Produce		json
// @Success		200		{object}	SavingsResponse
// @Failure		400		{object}	httputil.Error
// @Failure		500		{object}	httputil.Error
// @Param			from	query		string	false	"First week to include, YYYY-MM-DD. Defaults to the week the oldest envelope was created in."
// @Param			until	query		string	false	"Day marking the in-progress week, YYYY-MM-DD. Defaults to today."
// @Router			/v1/savings [get]
func GetSavings(c *gin.Context) {
	user := requestUser(c)

	envelopes, err := models.EnvelopesForUser(user)
	if err != nil {
		httputil.NewError(c, status(err), err)
		return
	}

	today := types.Today()
	if raw, ok := c.GetQuery("until"); ok {
		if !validDate(raw) {
			httputil.NewError(c, http.StatusBadRequest, errDateParameterInvalid)
			return
		}
		today, _ = types.ParseDate(raw)
	}
	current := types.WeekOf(today)

	first := current
	if raw, ok := c.GetQuery("from"); ok {
		if !validDate(raw) {
			httputil.NewError(c, http.StatusBadRequest, errDateParameterInvalid)
			return
		}
		first, _ = types.ParseWeek(raw)
	} else {
		// Without an explicit start, savings accrue from the week the
		// oldest envelope joined the budget.
		for _, e := range envelopes {
			if week := types.WeekOf(e.CreatedOn()); week.Before(first) {
				first = week
			}
		}
	}

	if first.After(current) {
		first = current
	}

	transactions, err := models.TransactionsForUserInRange(user, first.Start(), current.End())
	if err != nil {
		httputil.NewError(c, status(err), err)
		return
	}

	weeks := report.SavingsBreakdown(envelopes, transactions, first, current)

	var total int64
	if len(weeks) > 0 {
		total = weeks[len(weeks)-1].Cumulative
	}

	c.JSON(http.StatusOK, SavingsResponse{Data: &SavingsReport{
		TotalCents: total,
		Weeks:      weeks,
	}})
}
