package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/weekly-envelope/backend/internal/httputil"
	"github.com/weekly-envelope/backend/internal/models"
)

// requestUser returns the identity of the requester, as set by the
// user identity middleware.
func requestUser(c *gin.Context) string {
	return c.GetString(httputil.ContextUser)
}

// parseID parses the id URI parameter and answers the request when it
// is not a valid UUID.
func parseID(c *gin.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.NewError(c, http.StatusBadRequest, errIDParameterInvalid)
		return uuid.Nil, errIDParameterInvalid
	}

	return id, nil
}

// getEnvelope fetches the envelope the request URI points at, scoped
// to the requester, and answers the request on failure.
func getEnvelope(c *gin.Context) (models.Envelope, error) {
	id, err := parseID(c)
	if err != nil {
		return models.Envelope{}, err
	}

	var envelope models.Envelope
	err = models.DB.
		Where(&models.Envelope{UserID: requestUser(c)}).
		First(&envelope, "id = ?", id).Error
	if err != nil {
		httputil.NewError(c, status(err), err)
		return models.Envelope{}, err
	}

	return envelope, nil
}

// getTransaction fetches the transaction the request URI points at,
// scoped to the requester, and answers the request on failure.
func getTransaction(c *gin.Context) (models.Transaction, error) {
	id, err := parseID(c)
	if err != nil {
		return models.Transaction{}, err
	}

	var transaction models.Transaction
	err = models.DB.
		Where(&models.Transaction{UserID: requestUser(c)}).
		First(&transaction, "id = ?", id).Error
	if err != nil {
		httputil.NewError(c, status(err), err)
		return models.Transaction{}, err
	}

	return transaction, nil
}

// getAllocation fetches the allocation the request URI points at,
// scoped to the requester, and answers the request on failure.
func getAllocation(c *gin.Context) (models.Allocation, error) {
	id, err := parseID(c)
	if err != nil {
		return models.Allocation{}, err
	}

	var allocation models.Allocation
	err = models.DB.
		Where(&models.Allocation{UserID: requestUser(c)}).
		First(&allocation, "id = ?", id).Error
	if err != nil {
		httputil.NewError(c, status(err), err)
		return models.Allocation{}, err
	}

	return allocation, nil
}
