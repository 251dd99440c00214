package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/ryanuber/go-glob"
	"github.com/weekly-envelope/backend/internal/httputil"
	"github.com/weekly-envelope/backend/internal/models"
	"github.com/weekly-envelope/backend/internal/types"
)

// RegisterTransactionRoutes registers the routes for transactions with
// the RouterGroup that is passed.
func RegisterTransactionRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsTransactionList)
		r.GET("", GetTransactions)
		r.POST("", CreateTransaction)
	}

	// Transaction with ID
	{
		r.OPTIONS("/:id", OptionsTransactionDetail)
		r.GET("/:id", GetTransaction)
		r.PATCH("/:id", UpdateTransaction)
		r.DELETE("/:id", DeleteTransaction)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Transactions
// @Success		204
// @Router			/v1/transactions [options]
func OptionsTransactionList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Transactions
// @Success		204
// @Param			id	path	string	true	"ID of the transaction"
// @Router			/v1/transactions/{id} [options]
func OptionsTransactionDetail(c *gin.Context) {
	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Create transaction
// @Description	Creates a new spending transaction against an envelope
// @Tags			Transactions
// @Accept			json
// @Produce		json
// @Success		201			{object}	TransactionResponse
// @Failure		400			{object}	ValidationResponse
// @Failure		500			{object}	httputil.Error
// @Param			transaction	body		TransactionEditable	true	"Transaction"
// @Router			/v1/transactions [post]
func CreateTransaction(c *gin.Context) {
	var editable TransactionEditable

	if err := httputil.BindData(c, &editable); err != nil {
		return
	}

	if fields := editable.validate(); len(fields) > 0 {
		invalidFields(c, fields)
		return
	}

	transaction := editable.model(requestUser(c))
	if err := models.DB.Create(&transaction).Error; err != nil {
		httputil.NewError(c, status(err), err)
		return
	}

	c.JSON(http.StatusCreated, TransactionResponse{Data: &transaction})
}

// @Summary		List transactions
// @Description	Returns the requester's transactions, newest first. All filters are optional and combine.
// @Tags			Transactions
// @Produce		json
// @Success		200			{object}	TransactionListResponse
// @Failure		400			{object}	httputil.Error
// @Failure		500			{object}	TransactionListResponse
// @Param			envelope	query		string	false	"Filter by envelope ID"
// @Param			from		query		string	false	"Earliest date to include, YYYY-MM-DD"
// @Param			to			query		string	false	"Latest date to include, YYYY-MM-DD"
// @Param			merchant	query		string	false	"Filter by merchant, supports * globbing"
// @Router			/v1/transactions [get]
func GetTransactions(c *gin.Context) {
	var filter TransactionQueryFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		httputil.NewError(c, http.StatusBadRequest, err)
		return
	}

	query := models.DB.
		Where(&models.Transaction{UserID: requestUser(c)}).
		Order("date DESC, created_at DESC")

	if filter.Envelope != "" {
		id, err := uuid.Parse(filter.Envelope)
		if err != nil {
			httputil.NewError(c, http.StatusBadRequest, errIDParameterInvalid)
			return
		}
		query = query.Where("envelope_id = ?", id)
	}

	if filter.From != "" {
		if !validDate(filter.From) {
			httputil.NewError(c, http.StatusBadRequest, errDateParameterInvalid)
			return
		}
		from, _ := types.ParseDate(filter.From)
		query = query.Where("date >= ?", from)
	}

	if filter.To != "" {
		if !validDate(filter.To) {
			httputil.NewError(c, http.StatusBadRequest, errDateParameterInvalid)
			return
		}
		to, _ := types.ParseDate(filter.To)
		query = query.Where("date <= ?", to)
	}

	var transactions []models.Transaction
	if err := query.Find(&transactions).Error; err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionListResponse{Error: &e})
		return
	}

	// The merchant filter globs, which SQL cannot do for us.
	if filter.Merchant != "" {
		matched := make([]models.Transaction, 0, len(transactions))
		for _, transaction := range transactions {
			if glob.Glob(filter.Merchant, transaction.Merchant) {
				matched = append(matched, transaction)
			}
		}
		transactions = matched
	}

	c.JSON(http.StatusOK, TransactionListResponse{Data: transactions})
}

// @Summary		Get transaction
// @Description	Returns a transaction by its ID
// @Tags			Transactions
// @Produce		json
// @Success		200	{object}	TransactionResponse
// @Failure		400	{object}	httputil.Error
// @Failure		404	{object}	httputil.Error
// @Failure		500	{object}	httputil.Error
// @Param			id	path		string	true	"ID of the transaction"
// @Router			/v1/transactions/{id} [get]
func GetTransaction(c *gin.Context) {
	transaction, err := getTransaction(c)
	if err != nil {
		return
	}

	c.JSON(http.StatusOK, TransactionResponse{Data: &transaction})
}

// @Summary		Update transaction
// @Description	Updates an existing transaction. Only values to be updated need to be specified.
// @Tags			Transactions
// @Accept			json
// @Produce		json
// @Success		200			{object}	TransactionResponse
// @Failure		400			{object}	ValidationResponse
// @Failure		404			{object}	httputil.Error
// @Failure		500			{object}	httputil.Error
// @Param			id			path		string				true	"ID of the transaction"
// @Param			transaction	body		TransactionUpdate	true	"Transaction"
// @Router			/v1/transactions/{id} [patch]
func UpdateTransaction(c *gin.Context) {
	transaction, err := getTransaction(c)
	if err != nil {
		return
	}

	var update TransactionUpdate
	if err := httputil.BindData(c, &update); err != nil {
		return
	}

	if fields := update.validate(); len(fields) > 0 {
		invalidFields(c, fields)
		return
	}

	if err := models.DB.Model(&transaction).Updates(update.updates()).Error; err != nil {
		httputil.NewError(c, status(err), err)
		return
	}

	c.JSON(http.StatusOK, TransactionResponse{Data: &transaction})
}

// @Summary		Delete transaction
// @Description	Deletes a transaction
// @Tags			Transactions
// @Success		204
// @Failure		400	{object}	httputil.Error
// @Failure		404	{object}	httputil.Error
// @Failure		500	{object}	httputil.Error
// @Param			id	path		string	true	"ID of the transaction"
// @Router			/v1/transactions/{id} [delete]
func DeleteTransaction(c *gin.Context) {
	transaction, err := getTransaction(c)
	if err != nil {
		return
	}

	if err := models.DB.Delete(&transaction).Error; err != nil {
		httputil.NewError(c, status(err), err)
		return
	}

	c.Status(http.StatusNoContent)
}
