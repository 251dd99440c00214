package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/weekly-envelope/backend/internal/httputil"
	"github.com/weekly-envelope/backend/internal/models"
	"github.com/weekly-envelope/backend/internal/report"
	"github.com/weekly-envelope/backend/internal/types"
	"gorm.io/gorm"
)

// RegisterAllocationRoutes registers the routes for allocations with
// the RouterGroup that is passed.
func RegisterAllocationRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsAllocationList)
		r.GET("", GetAllocations)
		r.POST("", CreateAllocations)
	}

	// Allocation with ID
	{
		r.OPTIONS("/:id", OptionsAllocationDetail)
		r.GET("/:id", GetAllocation)
		r.DELETE("/:id", DeleteAllocation)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Allocations
// @Success		204
// @Router			/v1/allocations [options]
func OptionsAllocationList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Allocations
// @Success		204
// @Param			id	path	string	true	"ID of the allocation"
// @Router			/v1/allocations/{id} [options]
func OptionsAllocationDetail(c *gin.Context) {
	httputil.OptionsGetDelete(c)
}

// @Summary		Create allocations
// @Description	Covers an envelope's weekly overage with balance from other envelopes. All proposed transfers are validated against the donors' remaining balances and must sum to the overage exactly; either all of them are persisted or none are.
// @Tags			Allocations
// @Accept			json
// @Produce		json
// @Success		201			{object}	AllocationListResponse
// @Failure		400			{object}	AllocationValidationResponse
// @Failure		404			{object}	httputil.Error
// @Failure		500			{object}	httputil.Error
// @Param			allocation	body		AllocationCreate	true	"Allocation"
// @Router			/v1/allocations [post]
func CreateAllocations(c *gin.Context) {
	var create AllocationCreate

	if err := httputil.BindData(c, &create); err != nil {
		return
	}

	if fields := create.validate(); len(fields) > 0 {
		invalidFields(c, fields)
		return
	}

	user := requestUser(c)
	envelopeID, _ := uuid.Parse(create.EnvelopeID)
	day, _ := types.ParseDate(create.WeekStart)
	week := types.WeekOf(day)

	envelopes, err := models.EnvelopesForUser(user)
	if err != nil {
		httputil.NewError(c, status(err), err)
		return
	}

	found := false
	for _, e := range envelopes {
		if e.ID == envelopeID {
			found = true
			break
		}
	}
	if !found {
		httputil.NewError(c, http.StatusNotFound, models.ErrResourceNotFound)
		return
	}

	remaining, err := remainingBalances(user, envelopes, week)
	if err != nil {
		httputil.NewError(c, status(err), err)
		return
	}

	// The target must actually be overspent, and cannot donate to itself.
	overage := -remaining[envelopeID]
	if overage <= 0 {
		httputil.NewError(c, http.StatusBadRequest, errEnvelopeNotOverspent)
		return
	}
	delete(remaining, envelopeID)

	validation := report.ValidateAllocations(create.Allocations, overage, remaining)
	if !validation.Valid {
		c.JSON(http.StatusBadRequest, AllocationValidationResponse{Data: &validation})
		return
	}

	allocations := make([]models.Allocation, 0, len(create.Allocations))
	for _, proposed := range create.Allocations {
		allocations = append(allocations, models.Allocation{
			UserID:          user,
			EnvelopeID:      envelopeID,
			DonorEnvelopeID: proposed.DonorEnvelopeID,
			Amount:          proposed.Amount,
			WeekStart:       week.Start(),
		})
	}

	err = models.DB.Transaction(func(tx *gorm.DB) error {
		for i := range allocations {
			if err := tx.Create(&allocations[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		httputil.NewError(c, status(err), err)
		return
	}

	c.JSON(http.StatusCreated, AllocationListResponse{Data: allocations})
}

// @Summary		List allocations
// @Description	Returns the requester's allocations, newest week first
// @Tags			Allocations
// @Produce		json
// @Success		200		{object}	AllocationListResponse
// @Failure		400		{object}	httputil.Error
// @Failure		500		{object}	AllocationListResponse
// @Param			week	query		string	false	"Only return allocations for the week containing this date, YYYY-MM-DD"
// @Router			/v1/allocations [get]
func GetAllocations(c *gin.Context) {
	var allocations []models.Allocation
	var err error

	if raw, ok := c.GetQuery("week"); ok {
		if !validDate(raw) {
			httputil.NewError(c, http.StatusBadRequest, errDateParameterInvalid)
			return
		}

		week, _ := types.ParseWeek(raw)
		allocations, err = models.AllocationsForUserInWeek(requestUser(c), week)
	} else {
		allocations, err = models.AllocationsForUser(requestUser(c))
	}

	if err != nil {
		e := err.Error()
		c.JSON(status(err), AllocationListResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, AllocationListResponse{Data: allocations})
}

// @Summary		Get allocation
// @Description	Returns an allocation by its ID
// @Tags			Allocations
// @Produce		json
// @Success		200	{object}	AllocationResponse
// @Failure		400	{object}	httputil.Error
// @Failure		404	{object}	httputil.Error
// @Failure		500	{object}	httputil.Error
// @Param			id	path		string	true	"ID of the allocation"
// @Router			/v1/allocations/{id} [get]
func GetAllocation(c *gin.Context) {
	allocation, err := getAllocation(c)
	if err != nil {
		return
	}

	c.JSON(http.StatusOK, AllocationResponse{Data: &allocation})
}

// @Summary		Delete allocation
// @Description	Deletes an allocation, returning the balance to the donor envelope
// @Tags			Allocations
// @Success		204
// @Failure		400	{object}	httputil.Error
// @Failure		404	{object}	httputil.Error
// @Failure		500	{object}	httputil.Error
// @Param			id	path		string	true	"ID of the allocation"
// @Router			/v1/allocations/{id} [delete]
func DeleteAllocation(c *gin.Context) {
	allocation, err := getAllocation(c)
	if err != nil {
		return
	}

	if err := models.DB.Delete(&allocation).Error; err != nil {
		httputil.NewError(c, status(err), err)
		return
	}

	c.Status(http.StatusNoContent)
}

// remainingBalances computes each envelope's remaining balance for the
// week from its budget, the week's spending and any allocations already
// applied to the week.
func remainingBalances(userID string, envelopes []models.Envelope, week types.Week) (map[uuid.UUID]int64, error) {
	transactions, err := models.TransactionsForUserInRange(userID, week.Start(), week.End())
	if err != nil {
		return nil, err
	}

	allocations, err := models.AllocationsForUserInWeek(userID, week)
	if err != nil {
		return nil, err
	}

	remaining := make(map[uuid.UUID]int64, len(envelopes))
	for _, e := range envelopes {
		remaining[e.ID] = e.WeeklyBudget
	}

	for _, t := range transactions {
		remaining[t.EnvelopeID] -= t.Amount
	}

	for _, a := range allocations {
		remaining[a.EnvelopeID] += a.Amount
		remaining[a.DonorEnvelopeID] -= a.Amount
	}

	return remaining, nil
}
