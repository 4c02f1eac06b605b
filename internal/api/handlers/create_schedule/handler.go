package create_schedule

import (
	"errors"
	"net/http"

	"github.com/blackrooms/BR-ReservationService/internal/api/handlers"
	createSchedule "github.com/blackrooms/BR-ReservationService/internal/usecase/create_schedule"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateOrTime  = "некорректный формат даты или времени, ожидается YYYY-MM-DD и HH:MM"
	msgQuestNotFound      = "квест не найден"
	msgRoomNotFound       = "комната не найдена"
	msgRoomUnavailable    = "комната недоступна"
	msgSlotConflict       = "выбранное время пересекается с существующим слотом"
	msgBusy               = "сервис перегружен, повторите попытку"
)

type Handler struct {
	useCase CreateScheduleUseCase
	logger  Logger
}

func NewHandler(useCase CreateScheduleUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/schedules
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateScheduleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /schedules - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /schedules - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createSchedule.ErrInvalidInput):
			h.logger.Warn("POST /schedules - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, createSchedule.ErrQuestNotFound):
			h.logger.Warn("POST /schedules - Quest not found: quest_id=%d", req.QuestID)
			handlers.RespondNotFound(w, msgQuestNotFound)

		case errors.Is(err, createSchedule.ErrRoomNotFound):
			h.logger.Warn("POST /schedules - Room not found: room_id=%d", req.RoomID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, createSchedule.ErrRoomUnavailable):
			h.logger.Warn("POST /schedules - Room unavailable: room_id=%d", req.RoomID)
			handlers.RespondConflict(w, msgRoomUnavailable)

		case errors.Is(err, createSchedule.ErrSlotConflict):
			h.logger.Warn("POST /schedules - Slot conflict: room_id=%d, date=%s, time=%s",
				req.RoomID, req.Date, req.StartTime)
			handlers.RespondConflict(w, msgSlotConflict)

		case errors.Is(err, createSchedule.ErrBusy):
			h.logger.Warn("POST /schedules - Contention: room_id=%d, date=%s", req.RoomID, req.Date)
			handlers.RespondServiceUnavailable(w, msgBusy)

		default:
			h.logger.Error("POST /schedules - Failed to create schedule: quest_id=%d, room_id=%d, error=%v",
				req.QuestID, req.RoomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /schedules - Schedule created: schedule_id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
