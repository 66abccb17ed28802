package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/careslot/booking-service/internal/api/handlers"
	getAvailableSlots "github.com/careslot/booking-service/internal/usecase/get_available_slots"
)

const (
	msgInvalidProviderID = "invalid provider ID"
	msgInvalidDaysAhead  = "invalid daysAhead parameter"
	msgProviderNotFound  = "provider not found"
	msgInvalidSchedule   = "provider schedule is not configured correctly"
	msgInvalidInput      = "invalid input data"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/providers/{providerId}/availability
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	providerID, err := strconv.ParseInt(vars["providerId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /providers/{id}/availability - Invalid provider ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProviderID)
		return
	}

	// Optional horizon override, clamped to the provider policy downstream
	daysAhead := 0
	if raw := r.URL.Query().Get("daysAhead"); raw != "" {
		daysAhead, err = strconv.Atoi(raw)
		if err != nil {
			h.logger.Warn("GET /providers/{id}/availability - Invalid daysAhead: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDaysAhead)
			return
		}
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailableSlots.Request{
		ProviderID: providerID,
		DaysAhead:  daysAhead,
	})
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrProviderNotFound):
			h.logger.Warn("GET /providers/{id}/availability - Provider not found: provider_id=%d", providerID)
			handlers.RespondNotFound(w, msgProviderNotFound)

		case errors.Is(err, getAvailableSlots.ErrInvalidSchedule):
			h.logger.Warn("GET /providers/{id}/availability - Invalid schedule: provider_id=%d", providerID)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgInvalidSchedule)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /providers/{id}/availability - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /providers/{id}/availability - Failed: provider_id=%d, error=%v", providerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /providers/{id}/availability - Calendar generated: provider_id=%d, days=%d",
		providerID, len(result.Days))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
