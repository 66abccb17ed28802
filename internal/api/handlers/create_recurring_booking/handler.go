package create_recurring_booking

import (
	"errors"
	"net/http"

	"github.com/careslot/booking-service/internal/api/handlers"
	"github.com/careslot/booking-service/internal/api/middleware"
	createBooking "github.com/careslot/booking-service/internal/usecase/create_booking"
	createRecurringBooking "github.com/careslot/booking-service/internal/usecase/create_recurring_booking"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidDateOrTime  = "invalid date or time format, expected YYYY-MM-DD and HH:MM"
	msgMissingUserID      = "missing user ID"
	msgProviderNotFound   = "provider not found"
	msgUnknownPattern     = "unknown recurrence pattern"
	msgInvalidDateRange   = "endDate must not be before startDate"
	msgInvalidInput       = "invalid input data"
)

type Handler struct {
	useCase CreateRecurringBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateRecurringBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/recurring
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings/recurring - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateRecurringBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/recurring - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /bookings/recurring - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createRecurringBooking.ErrUnknownPattern):
			h.logger.Warn("POST /bookings/recurring - Unknown pattern: %s", req.Pattern)
			handlers.RespondBadRequest(w, msgUnknownPattern)

		case errors.Is(err, createRecurringBooking.ErrInvalidDateRange):
			h.logger.Warn("POST /bookings/recurring - Invalid date range: %s..%s", req.StartDate, req.EndDate)
			handlers.RespondBadRequest(w, msgInvalidDateRange)

		case errors.Is(err, createBooking.ErrProviderNotFound):
			h.logger.Warn("POST /bookings/recurring - Provider not found: provider_id=%d", req.ProviderID)
			handlers.RespondNotFound(w, msgProviderNotFound)

		case errors.Is(err, createRecurringBooking.ErrInvalidInput),
			errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings/recurring - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /bookings/recurring - Failed: user_id=%d, provider_id=%d, error=%v",
				userID, req.ProviderID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/recurring - Series created: series_id=%s, created=%d, skipped=%d",
		result.SeriesID, len(result.Created), len(result.Skipped))
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
