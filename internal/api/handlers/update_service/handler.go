package update_service

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/blackrooms/BR-ReservationService/internal/api/handlers"
	"github.com/blackrooms/BR-ReservationService/internal/service/extraservices"
)

const (
	msgInvalidServiceID   = "некорректный ID услуги"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgServiceNotFound    = "услуга не найдена"
	msgBookingNotFound    = "бронирование не найдено"
	msgBookingTerminal    = "нельзя привязать услугу к завершенному или отмененному бронированию"
	msgBusy               = "сервис перегружен, повторите попытку"
)

type Handler struct {
	service ExtraServiceService
	logger  Logger
}

func NewHandler(service ExtraServiceService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/services/{serviceId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	serviceID, err := strconv.ParseInt(vars["serviceId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /services/{id} - Invalid service ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return
	}

	// Кастомный UnmarshalJSON различает отсутствующий и null bookingId,
	// поэтому декодируем напрямую, без DisallowUnknownFields
	var req UpdateServiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("PUT /services/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), serviceID, req.ToServiceRequest())
	if err != nil {
		switch {
		case errors.Is(err, extraservices.ErrInvalidInput):
			h.logger.Warn("PUT /services/{id} - Invalid input: service_id=%d: %v", serviceID, err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, extraservices.ErrServiceNotFound):
			h.logger.Warn("PUT /services/{id} - Service not found: service_id=%d", serviceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, extraservices.ErrBookingNotFound):
			h.logger.Warn("PUT /services/{id} - Booking not found: service_id=%d", serviceID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, extraservices.ErrBookingTerminal):
			h.logger.Warn("PUT /services/{id} - Booking terminal: service_id=%d", serviceID)
			handlers.RespondConflict(w, msgBookingTerminal)

		case errors.Is(err, extraservices.ErrBusy):
			h.logger.Warn("PUT /services/{id} - Contention: service_id=%d", serviceID)
			handlers.RespondServiceUnavailable(w, msgBusy)

		default:
			h.logger.Error("PUT /services/{id} - Failed to update service: service_id=%d, error=%v",
				serviceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /services/{id} - Service updated: service_id=%d", serviceID)
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}
