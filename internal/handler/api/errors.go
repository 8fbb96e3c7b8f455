package api

import (
	"net/http"

	"slotbook/internal/domain/booking"
	"slotbook/internal/domain/slot"
	"slotbook/internal/handler/httperr"
	"slotbook/internal/pkg/errs"
	"slotbook/internal/usecase/commands"
	"slotbook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

const slotConflictMessage = "One or more of your selected times were just taken. Please pick again."

// abortWithUseCaseError maps use case sentinels to HTTP responses.
func abortWithUseCaseError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, commands.ErrSlotConflict):
		httperr.AbortWithCode(c, http.StatusConflict, err, httperr.CodeSlotConflict, slotConflictMessage, nil)
	case errs.Is(err, commands.ErrPolicyViolation):
		httperr.AbortWithCode(c, http.StatusBadRequest, err, httperr.CodePolicyViolation, "Reservation violates booking policy", gin.H{"reason": policyReason(err)})
	case errs.Is(err, commands.ErrCrossOwnerRequest):
		httperr.AbortWithCode(c, http.StatusBadRequest, err, httperr.CodeCrossOwner, "Selected slots must belong to a single owner", nil)
	case errs.IsAny(err, commands.ErrInvalidSlotSelection, commands.ErrInvalidBookingIDs, commands.ErrInvalidReservation):
		httperr.AbortWithCode(c, http.StatusBadRequest, err, httperr.CodeInvalidRequest, "Invalid request", nil)
	case errs.Is(err, queries.ErrInvalidDateRange):
		httperr.AbortWithCode(c, http.StatusBadRequest, err, httperr.CodeInvalidDateRange, "Invalid date range", nil)
	case errs.IsAny(err, commands.ErrNotFound, queries.ErrBookingNotFound):
		httperr.AbortWithCode(c, http.StatusNotFound, err, httperr.CodeNotFound, "Booking not found", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}

func policyReason(err error) string {
	switch {
	case errs.Is(err, booking.ErrInsufficientNotice):
		return "insufficient_notice"
	case errs.Is(err, booking.ErrNotFutureDate):
		return "not_future_date"
	case errs.Is(err, slot.ErrNotContiguous):
		return "not_contiguous"
	default:
		return "policy"
	}
}
