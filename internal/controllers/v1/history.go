package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/weekly-envelope/backend/internal/httputil"
	"github.com/weekly-envelope/backend/internal/models"
	"github.com/weekly-envelope/backend/internal/report"
	"github.com/weekly-envelope/backend/internal/types"
)

// RegisterHistoryRoutes registers the routes for the spending history
// with the RouterGroup that is passed.
func RegisterHistoryRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsHistory)
	r.GET("", GetHistory)
}

type HistoryResponse struct {
	Data  []report.PivotRow `json:"data"`  // Weekly spending rows, newest week first
	Error *string           `json:"error"` // The error, if any occurred
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			History
// @Success		204
// @Router			/v1/history [options]
func OptionsHistory(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Spending history
// @Description	Returns a week-by-envelope matrix of the requester's spending, newest week first. Weeks without transactions are omitted.
// @Tags			History
// @Produce		json
// @Success		200		{object}	HistoryResponse
// @Failure		400		{object}	httputil.Error
// @Failure		500		{object}	httputil.Error
// @Param			from	query		string	true	"Earliest date to include, YYYY-MM-DD"
// @Param			to		query		string	false	"Latest date to include, YYYY-MM-DD. Defaults to today."
// @Router			/v1/history [get]
func GetHistory(c *gin.Context) {
	raw, ok := c.GetQuery("from")
	if !ok {
		httputil.NewError(c, http.StatusBadRequest, errFromParameterNotSet)
		return
	}
	if !validDate(raw) {
		httputil.NewError(c, http.StatusBadRequest, errDateParameterInvalid)
		return
	}
	from, _ := types.ParseDate(raw)

	to := types.Today()
	if raw, ok := c.GetQuery("to"); ok {
		if !validDate(raw) {
			httputil.NewError(c, http.StatusBadRequest, errDateParameterInvalid)
			return
		}
		to, _ = types.ParseDate(raw)
	}

	transactions, err := models.TransactionsForUserInRange(requestUser(c), from, to)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), HistoryResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, HistoryResponse{Data: report.PivotRows(transactions, from, to)})
}
