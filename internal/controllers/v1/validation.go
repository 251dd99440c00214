package v1

import (
	"net/http"
	"regexp"

	"github.com/gin-gonic/gin"
	"github.com/weekly-envelope/backend/internal/types"
)

// dateFormat matches RFC3339 full-date strings. Calendar validity is
// checked separately by parsing.
var dateFormat = regexp.MustCompile(`^[0-9]{4}-[0-9]{2}-[0-9]{2}$`)

// FieldError describes a single violated constraint of a request field.
type FieldError struct {
	Field string `json:"field" example:"weeklyBudgetCents"`                // Name of the field
	Error string `json:"error" example:"must be a positive integer number of cents"` // What is wrong with it
}

// ValidationResponse answers a request whose body violates the
// documented field constraints.
type ValidationResponse struct {
	Error  string       `json:"error" example:"the request contains invalid fields"` // Summary message
	Fields []FieldError `json:"fields"`                                              // One entry per violated constraint
}

// invalidFields rejects a request with the list of violated field
// constraints. Validation always reports every violation at once.
func invalidFields(c *gin.Context, fields []FieldError) {
	c.JSON(http.StatusBadRequest, ValidationResponse{
		Error:  "the request contains invalid fields",
		Fields: fields,
	})
}

// validDate reports whether the string is a YYYY-MM-DD formatted,
// calendar-valid date.
func validDate(s string) bool {
	if !dateFormat.MatchString(s) {
		return false
	}

	_, err := types.ParseDate(s)
	return err == nil
}
