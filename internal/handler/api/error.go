package api

import (
	"errors"
	"net/http"

	"promo-engine/internal/handler/httperr"
	"promo-engine/internal/usecase"

	"github.com/gin-gonic/gin"
)

// respondUseCaseError maps the use case error taxonomy onto HTTP statuses.
// The response carries the specific reason's message; the full error chain
// stays in the gin error stack for logging.
func respondUseCaseError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	msg := "Internal server error"

	switch {
	case errors.Is(err, usecase.ErrValidationFailed):
		status = http.StatusBadRequest
		msg = reasonMessage(err)
	case errors.Is(err, usecase.ErrNotFound):
		status = http.StatusNotFound
		msg = reasonMessage(err)
	case errors.Is(err, usecase.ErrForbidden):
		status = http.StatusForbidden
		msg = reasonMessage(err)
	case errors.Is(err, usecase.ErrConflict):
		status = http.StatusConflict
		msg = reasonMessage(err)
	case errors.Is(err, usecase.ErrUnavailable):
		status = http.StatusServiceUnavailable
		msg = "Rule store temporarily unavailable"
	}

	httperr.AbortWithError(c, status, err, msg, nil)
}

var reasonMessages = []struct {
	sentinel error
	message  string
}{
	{usecase.ErrEmptyCode, "At least one code is required"},
	{usecase.ErrInvalidOrderAmount, "Order amount must be positive"},
	{usecase.ErrCustomerRequired, "Customer id is required"},
	{usecase.ErrOrderRequired, "Order id is required"},
	{usecase.ErrDiscountNotFound, "Discount not found"},
	{usecase.ErrPromotionNotFound, "Promotion not found"},
	{usecase.ErrNotStackable, "Discount cannot be combined with others"},
	{usecase.ErrCustomerLimitReached, "Customer usage limit reached"},
	{usecase.ErrPromotionLimitReached, "Promotion usage limit reached"},
	{usecase.ErrDiscountLimitReached, "Discount usage limit reached"},
}

func reasonMessage(err error) string {
	for _, rm := range reasonMessages {
		if errors.Is(err, rm.sentinel) {
			return rm.message
		}
	}
	// Domain eligibility reasons carry presentable messages already.
	return capitalizeFirst(innermost(err).Error())
}

func innermost(err error) error {
	for {
		next := errors.Unwrap(err)
		if next == nil {
			return err
		}
		err = next
	}
}

func capitalizeFirst(s string) string {
	if s == "" {
		return s
	}
	if s[0] >= 'a' && s[0] <= 'z' {
		return string(s[0]-'a'+'A') + s[1:]
	}
	return s
}
