package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/weekly-envelope/backend/internal/httputil"
	"github.com/weekly-envelope/backend/internal/models"
	"github.com/weekly-envelope/backend/internal/report"
	"github.com/weekly-envelope/backend/internal/types"
)

// RegisterEnvelopeRoutes registers the routes for envelopes with
// the RouterGroup that is passed.
func RegisterEnvelopeRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsEnvelopeList)
		r.GET("", GetEnvelopes)
		r.POST("", CreateEnvelope)
	}

	// Envelope with ID
	{
		r.OPTIONS("/:id", OptionsEnvelopeDetail)
		r.GET("/:id", GetEnvelope)
		r.PATCH("/:id", UpdateEnvelope)
		r.DELETE("/:id", DeleteEnvelope)

		r.OPTIONS("/:id/status", OptionsEnvelopeStatus)
		r.GET("/:id/status", GetEnvelopeStatus)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Envelopes
// @Success		204
// @Router			/v1/envelopes [options]
func OptionsEnvelopeList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Envelopes
// @Success		204
// @Param			id	path	string	true	"ID of the envelope"
// @Router			/v1/envelopes/{id} [options]
func OptionsEnvelopeDetail(c *gin.Context) {
	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Envelopes
// @Success		204
// @Param			id	path	string	true	"ID of the envelope"
// @Router			/v1/envelopes/{id}/status [options]
func OptionsEnvelopeStatus(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Create envelope
// @Description	Creates a new envelope with a fixed weekly allowance
// @Tags			Envelopes
// @Accept			json
// @Produce		json
// @Success		201			{object}	EnvelopeResponse
// @Failure		400			{object}	ValidationResponse
// @Failure		500			{object}	httputil.Error
// @Param			envelope	body		EnvelopeEditable	true	"Envelope"
// @Router			/v1/envelopes [post]
func CreateEnvelope(c *gin.Context) {
	var editable EnvelopeEditable

	if err := httputil.BindData(c, &editable); err != nil {
		return
	}

	if fields := editable.validate(); len(fields) > 0 {
		invalidFields(c, fields)
		return
	}

	envelope := editable.model(requestUser(c))
	if err := models.DB.Create(&envelope).Error; err != nil {
		httputil.NewError(c, status(err), err)
		return
	}

	c.JSON(http.StatusCreated, EnvelopeResponse{Data: &envelope})
}

// @Summary		List envelopes
// @Description	Returns the requester's envelopes ordered by their display order
// @Tags			Envelopes
// @Produce		json
// @Success		200	{object}	EnvelopeListResponse
// @Failure		500	{object}	EnvelopeListResponse
// @Router			/v1/envelopes [get]
func GetEnvelopes(c *gin.Context) {
	envelopes, err := models.EnvelopesForUser(requestUser(c))
	if err != nil {
		e := err.Error()
		c.JSON(status(err), EnvelopeListResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, EnvelopeListResponse{Data: envelopes})
}

// @Summary		Get envelope
// @Description	Returns an envelope by its ID
// @Tags			Envelopes
// @Produce		json
// @Success		200	{object}	EnvelopeResponse
// @Failure		400	{object}	httputil.Error
// @Failure		404	{object}	httputil.Error
// @Failure		500	{object}	httputil.Error
// @Param			id	path		string	true	"ID of the envelope"
// @Router			/v1/envelopes/{id} [get]
func GetEnvelope(c *gin.Context) {
	envelope, err := getEnvelope(c)
	if err != nil {
		return
	}

	c.JSON(http.StatusOK, EnvelopeResponse{Data: &envelope})
}

// @Summary		Update envelope
// @Description	Updates an existing envelope. Only values to be updated need to be specified.
// @Tags			Envelopes
// @Accept			json
// @Produce		json
// @Success		200			{object}	EnvelopeResponse
// @Failure		400			{object}	ValidationResponse
// @Failure		404			{object}	httputil.Error
// @Failure		500			{object}	httputil.Error
// @Param			id			path		string			true	"ID of the envelope"
// @Param			envelope	body		EnvelopeUpdate	true	"Envelope"
// @Router			/v1/envelopes/{id} [patch]
func UpdateEnvelope(c *gin.Context) {
	envelope, err := getEnvelope(c)
	if err != nil {
		return
	}

	var update EnvelopeUpdate
	if err := httputil.BindData(c, &update); err != nil {
		return
	}

	if fields := update.validate(); len(fields) > 0 {
		invalidFields(c, fields)
		return
	}

	if err := models.DB.Model(&envelope).Updates(update.updates()).Error; err != nil {
		httputil.NewError(c, status(err), err)
		return
	}

	c.JSON(http.StatusOK, EnvelopeResponse{Data: &envelope})
}

// @Summary		Delete envelope
// @Description	Deletes an envelope
// @Tags			Envelopes
// @Success		204
// @Failure		400	{object}	httputil.Error
// @Failure		404	{object}	httputil.Error
// @Failure		500	{object}	httputil.Error
// @Param			id	path		string	true	"ID of the envelope"
// @Router			/v1/envelopes/{id} [delete]
func DeleteEnvelope(c *gin.Context) {
	envelope, err := getEnvelope(c)
	if err != nil {
		return
	}

	if err := models.DB.Delete(&envelope).Error; err != nil {
		httputil.NewError(c, status(err), err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary		Get envelope status
// @Description	Returns the remaining balance and status of an envelope for the week containing the requested date
// @Tags			Envelopes
// @Produce		json
// @Success		200		{object}	EnvelopeStatusResponse
// @Failure		400		{object}	httputil.Error
// @Failure		404		{object}	httputil.Error
// @Failure		500		{object}	httputil.Error
// @Param			id		path		string	true	"ID of the envelope"
// @Param			date	query		string	false	"Date inside the week to report on, YYYY-MM-DD. Defaults to today."
// @Router			/v1/envelopes/{id}/status [get]
func GetEnvelopeStatus(c *gin.Context) {
	envelope, err := getEnvelope(c)
	if err != nil {
		return
	}

	today := types.Today()
	if raw, ok := c.GetQuery("date"); ok {
		if !validDate(raw) {
			httputil.NewError(c, http.StatusBadRequest, errDateParameterInvalid)
			return
		}
		today, _ = types.ParseDate(raw)
	}

	week := types.WeekOf(today)
	user := requestUser(c)

	transactions, err := models.TransactionsForUserInRange(user, week.Start(), week.End())
	if err != nil {
		httputil.NewError(c, status(err), err)
		return
	}

	var spent int64
	for _, t := range transactions {
		if t.EnvelopeID == envelope.ID {
			spent += t.Amount
		}
	}

	allocations, err := models.AllocationsForUserInWeek(user, week)
	if err != nil {
		httputil.NewError(c, status(err), err)
		return
	}

	var received, donated int64
	for _, a := range allocations {
		if a.EnvelopeID == envelope.ID {
			received += a.Amount
		}
		if a.DonorEnvelopeID == envelope.ID {
			donated += a.Amount
		}
	}

	result := report.ComputeStatus(envelope.WeeklyBudget, spent, received, donated, today)
	c.JSON(http.StatusOK, EnvelopeStatusResponse{Data: &result})
}
