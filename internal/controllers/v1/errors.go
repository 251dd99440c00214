package v1

import (
	"errors"
	"net/http"

	"github.com/weekly-envelope/backend/internal/models"
)

// status returns the appropriate HTTP status for a database error
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	return http.StatusBadRequest
}

var (
	errIDParameterInvalid   = errors.New("the specified resource ID is not a valid UUID")
	errDateParameterInvalid = errors.New("date parameters must be valid dates in YYYY-MM-DD format")
	errFromParameterNotSet  = errors.New("the from query parameter must be set")
)

// Allocation errors
var (
	errEnvelopeNotOverspent = errors.New("the envelope is not overspent in the requested week")
)
