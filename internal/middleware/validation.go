package middleware

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/yigit/jobsearch/internal/app/models/dto"
)

// HandleBindError renders a request binding failure as a 400. Validation
// failures report the first offending field and list all of them in details.
func HandleBindError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fields := make([]dto.FieldError, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, dto.FieldError{Field: fieldPath(fe), Message: formatValidationError(fe)})
		}
		detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, fields[0].Message).
			WithField(fields[0].Field).
			WithDetails(fields)
		c.AbortWithStatusJSON(http.StatusBadRequest, dto.NewErrorResponse(detail))
		return
	}

	message := "Invalid request body."
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed,
			fmt.Sprintf("Expected %s.", typeErr.Type.String())).WithField(typeErr.Field)
		c.AbortWithStatusJSON(http.StatusBadRequest, dto.NewErrorResponse(detail))
		return
	}

	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		message = "JSON parse error."
	}
	c.AbortWithStatusJSON(http.StatusBadRequest,
		dto.NewErrorResponse(dto.NewErrorDetail(dto.ErrorCodeValidationFailed, message)))
}

// fieldPath drops the struct name from the namespace, e.g.
// "CreateJobRequest.locations[1]" becomes "locations[1]".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	for i := 0; i < len(ns); i++ {
		if ns[i] == '.' {
			return ns[i+1:]
		}
	}
	return fe.Field()
}

// formatValidationError creates a human-readable validation error message
func formatValidationError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "This field is required."
	case "min":
		return fmt.Sprintf("Ensure this field has at least %s characters.", e.Param())
	case "max":
		return fmt.Sprintf("Ensure this field has no more than %s characters.", e.Param())
	case "email":
		return "Enter a valid email address."
	case "url":
		return "Enter a valid URL."
	case "jobtype":
		return fmt.Sprintf("\"%v\" is not a valid choice.", e.Value())
	default:
		return fmt.Sprintf("Failed on the %q rule.", e.Tag())
	}
}
