package record_payment

import (
	"errors"
	"net/http"

	"github.com/blackrooms/BR-ReservationService/internal/api/handlers"
	"github.com/blackrooms/BR-ReservationService/internal/service/payments"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты платежа, ожидается YYYY-MM-DD"
	msgBookingNotFound    = "бронирование не найдено"
	msgPaymentNotAllowed  = "бронирование в текущем статусе не принимает платежи"
	msgBusy               = "сервис перегружен, повторите попытку"
)

type Handler struct {
	service PaymentService
	logger  Logger
}

func NewHandler(service PaymentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/payments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req RecordPaymentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /payments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq, err := req.ToServiceRequest()
	if err != nil {
		h.logger.Warn("POST /payments - Failed to parse date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.service.RecordPayment(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, payments.ErrInvalidInput):
			h.logger.Warn("POST /payments - Invalid input: booking_id=%d: %v", req.BookingID, err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, payments.ErrBookingNotFound):
			h.logger.Warn("POST /payments - Booking not found: booking_id=%d", req.BookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, payments.ErrPaymentNotAllowed):
			h.logger.Warn("POST /payments - Payment not allowed: booking_id=%d", req.BookingID)
			handlers.RespondConflict(w, msgPaymentNotAllowed)

		case errors.Is(err, payments.ErrBusy):
			h.logger.Warn("POST /payments - Contention: booking_id=%d", req.BookingID)
			handlers.RespondServiceUnavailable(w, msgBusy)

		default:
			h.logger.Error("POST /payments - Failed to record payment: booking_id=%d, error=%v",
				req.BookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /payments - Payment recorded: payment_id=%d, booking_id=%d, total=%d",
		result.ID, result.BookingID, result.TotalPaid)
	handlers.RespondJSON(w, http.StatusCreated, FromServiceResponse(result))
}
