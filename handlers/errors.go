package handlers

import (
	"errors"
	"net/http"

	"UniClinic/repositories"
	"UniClinic/services"
)

// statusForAppointmentError maps lifecycle and availability errors onto
// HTTP status codes. Anything unrecognized is a 500.
func statusForAppointmentError(err error) int {
	switch {
	case errors.Is(err, services.ErrAppointmentNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrInvalidTransition):
		return http.StatusConflict
	case errors.Is(err, repositories.ErrSlotTaken):
		return http.StatusConflict
	case errors.Is(err, services.ErrPendingExists):
		return http.StatusConflict
	case errors.Is(err, services.ErrProfileIncomplete),
		errors.Is(err, services.ErrInvalidPayload),
		errors.Is(err, services.ErrInvalidStatusValue),
		errors.Is(err, services.ErrInvalidDate),
		errors.Is(err, services.ErrPastDate),
		errors.Is(err, services.ErrBeyondLookahead),
		errors.Is(err, services.ErrInvalidSlot),
		errors.Is(err, services.ErrNotWorkingDay),
		errors.Is(err, services.ErrHolidayBlocked):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrNotOwner):
		return http.StatusForbidden
	}
	return http.StatusInternalServerError
}
