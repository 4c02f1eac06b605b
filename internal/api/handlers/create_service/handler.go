package create_service

import (
	"errors"
	"net/http"

	"github.com/blackrooms/BR-ReservationService/internal/api/handlers"
	"github.com/blackrooms/BR-ReservationService/internal/service/extraservices"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
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

// Handle POST /api/v1/services
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateServiceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /services - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), req.ToServiceRequest())
	if err != nil {
		switch {
		case errors.Is(err, extraservices.ErrInvalidInput):
			h.logger.Warn("POST /services - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, extraservices.ErrBookingNotFound):
			h.logger.Warn("POST /services - Booking not found: booking_id=%v", req.BookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, extraservices.ErrBookingTerminal):
			h.logger.Warn("POST /services - Booking terminal: booking_id=%v", req.BookingID)
			handlers.RespondConflict(w, msgBookingTerminal)

		case errors.Is(err, extraservices.ErrBusy):
			h.logger.Warn("POST /services - Contention: booking_id=%v", req.BookingID)
			handlers.RespondServiceUnavailable(w, msgBusy)

		default:
			h.logger.Error("POST /services - Failed to create service: title=%q, error=%v", req.Title, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /services - Service created: service_id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, FromServiceResponse(result))
}
