package create_booking

import (
	"errors"
	"net/http"

	"github.com/blackrooms/BR-ReservationService/internal/api/handlers"
	createBooking "github.com/blackrooms/BR-ReservationService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgScheduleNotFound   = "слот расписания не найден"
	msgQuestNotFound      = "квест не найден"
	msgRoomNotFound       = "комната не найдена"
	msgScheduleTaken      = "слот уже забронирован"
	msgCapacityExceeded   = "количество участников превышает вместимость комнаты"
	msgBusy               = "сервис перегружен, повторите попытку"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, createBooking.ErrScheduleNotFound):
			h.logger.Warn("POST /bookings - Schedule not found: schedule_id=%d", req.ScheduleID)
			handlers.RespondNotFound(w, msgScheduleNotFound)

		case errors.Is(err, createBooking.ErrQuestNotFound):
			h.logger.Warn("POST /bookings - Quest not found: schedule_id=%d", req.ScheduleID)
			handlers.RespondNotFound(w, msgQuestNotFound)

		case errors.Is(err, createBooking.ErrRoomNotFound):
			h.logger.Warn("POST /bookings - Room not found: schedule_id=%d", req.ScheduleID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, createBooking.ErrScheduleTaken):
			h.logger.Warn("POST /bookings - Schedule taken: schedule_id=%d", req.ScheduleID)
			handlers.RespondConflict(w, msgScheduleTaken)

		case errors.Is(err, createBooking.ErrCapacityExceeded):
			h.logger.Warn("POST /bookings - Capacity exceeded: schedule_id=%d, participants=%d",
				req.ScheduleID, req.ParticipantsCount)
			handlers.RespondBadRequest(w, msgCapacityExceeded)

		case errors.Is(err, createBooking.ErrBusy):
			h.logger.Warn("POST /bookings - Contention: schedule_id=%d", req.ScheduleID)
			handlers.RespondServiceUnavailable(w, msgBusy)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: schedule_id=%d, client_id=%d, error=%v",
				req.ScheduleID, req.ClientID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created: booking_id=%d, schedule_id=%d",
		result.ID, req.ScheduleID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
