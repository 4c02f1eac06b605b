package create_reservation

import (
	"errors"
	"net/http"

	"github.com/blackrooms/BR-ReservationService/internal/api/handlers"
	allocateReservation "github.com/blackrooms/BR-ReservationService/internal/usecase/allocate_reservation"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateOrTime  = "некорректный формат даты или времени, ожидается YYYY-MM-DD и HH:MM"
	msgQuestNotFound      = "квест не найден"
	msgRoomNotFound       = "комната не найдена"
	msgRoomUnavailable    = "комната недоступна"
	msgSlotConflict       = "выбранное время пересекается с существующим бронированием"
	msgCapacityExceeded   = "количество участников превышает вместимость комнаты"
	msgBusy               = "сервис перегружен, повторите попытку"
)

type Handler struct {
	useCase AllocateReservationUseCase
	logger  Logger
}

func NewHandler(useCase AllocateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /reservations - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, allocateReservation.ErrInvalidInput):
			h.logger.Warn("POST /reservations - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, allocateReservation.ErrQuestNotFound):
			h.logger.Warn("POST /reservations - Quest not found: quest_id=%d", req.QuestID)
			handlers.RespondNotFound(w, msgQuestNotFound)

		case errors.Is(err, allocateReservation.ErrRoomNotFound):
			h.logger.Warn("POST /reservations - Room not found: room_id=%d", req.RoomID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, allocateReservation.ErrRoomUnavailable):
			h.logger.Warn("POST /reservations - Room unavailable: room_id=%d", req.RoomID)
			handlers.RespondConflict(w, msgRoomUnavailable)

		case errors.Is(err, allocateReservation.ErrSlotConflict):
			h.logger.Warn("POST /reservations - Slot conflict: room_id=%d, date=%s, time=%s",
				req.RoomID, req.Date, req.StartTime)
			handlers.RespondConflict(w, msgSlotConflict)

		case errors.Is(err, allocateReservation.ErrCapacityExceeded):
			h.logger.Warn("POST /reservations - Capacity exceeded: room_id=%d, participants=%d",
				req.RoomID, req.ParticipantsCount)
			handlers.RespondBadRequest(w, msgCapacityExceeded)

		case errors.Is(err, allocateReservation.ErrBusy):
			h.logger.Warn("POST /reservations - Contention: room_id=%d, date=%s", req.RoomID, req.Date)
			handlers.RespondServiceUnavailable(w, msgBusy)

		default:
			h.logger.Error("POST /reservations - Failed to allocate: quest_id=%d, room_id=%d, error=%v",
				req.QuestID, req.RoomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations - Reservation allocated: schedule_id=%d, booking_id=%d",
		result.ScheduleID, result.BookingID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
