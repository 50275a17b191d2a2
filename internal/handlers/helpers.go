package handlers

import (
	"errors"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/logger"
	fvalidator "fintrack/internal/validator"
)

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error   string                 `json:"error" example:"Validation failed"`
	Code    string                 `json:"code" example:"VALIDATION_FAILED"`
	Message string                 `json:"message,omitempty" example:"Please check your input and try again."`
	Details []apperrors.FieldError `json:"details,omitempty"`
}

// respondWithError writes a consistent JSON error response. If the error is an
// *AppError it is rendered as is. Otherwise it logs the unexpected error and
// returns a generic internal server error.
func respondWithError(c *gin.Context, err error) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		if appErr.Internal != nil {
			logger.Get().Errorw("app error",
				"code", appErr.Code,
				"internal", appErr.Internal.Error(),
				"path", c.Request.URL.Path,
			)
		}
		c.JSON(appErr.StatusCode, appErr)
		return
	}

	logger.Get().Errorw("unexpected error",
		"error", err.Error(),
		"path", c.Request.URL.Path,
		"method", c.Request.Method,
	)
	c.JSON(apperrors.ErrInternalServer.StatusCode, apperrors.ErrInternalServer)
}

// bindingError converts a gin binding failure into INVALID_INPUT, listing the
// offending fields when the failure came from the validator.
func bindingError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error())
	}
	details := make([]apperrors.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		details = append(details, apperrors.FieldError{
			Field:   fe.Field(),
			Message: "failed on the '" + fe.Tag() + "' rule",
		})
	}
	return apperrors.WithDetails(apperrors.ErrInvalidInput, details)
}

// queryDate parses an optional calendar-date query parameter.
func queryDate(c *gin.Context, name string) (time.Time, bool, error) {
	v := c.Query(name)
	if v == "" {
		return time.Time{}, false, nil
	}
	d, err := fvalidator.ParseDate(v)
	if err != nil {
		return time.Time{}, false, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid "+name+", expected YYYY-MM-DD")
	}
	return d, true, nil
}

// queryInt parses an optional integer query parameter.
func queryInt(c *gin.Context, name string) (int, bool, error) {
	v := c.Query(name)
	if v == "" {
		return 0, false, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, false, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid "+name)
	}
	return n, true, nil
}
