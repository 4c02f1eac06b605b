package get_room_availability

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/blackrooms/BR-ReservationService/internal/api/handlers"
	"github.com/blackrooms/BR-ReservationService/internal/domain"
	getRoomAvailability "github.com/blackrooms/BR-ReservationService/internal/usecase/get_room_availability"
)

const (
	msgInvalidRoomID  = "некорректный ID комнаты"
	msgInvalidQuestID = "некорректный параметр questId"
	msgInvalidDate    = "некорректный параметр date, ожидается YYYY-MM-DD"
	msgRoomNotFound   = "комната не найдена"
	msgQuestNotFound  = "квест не найден"
)

type Handler struct {
	useCase GetRoomAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetRoomAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/rooms/{roomId}/availability?date=YYYY-MM-DD&questId=N
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	roomID, err := strconv.ParseInt(vars["roomId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /rooms/{id}/availability - Invalid room ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRoomID)
		return
	}

	questID, err := strconv.ParseInt(r.URL.Query().Get("questId"), 10, 64)
	if err != nil {
		h.logger.Warn("GET /rooms/{id}/availability - Invalid quest ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidQuestID)
		return
	}

	date, err := time.Parse(domain.DateFormat, r.URL.Query().Get("date"))
	if err != nil {
		h.logger.Warn("GET /rooms/{id}/availability - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getRoomAvailability.Request{
		RoomID:  roomID,
		QuestID: questID,
		Date:    date,
	})
	if err != nil {
		switch {
		case errors.Is(err, getRoomAvailability.ErrInvalidInput):
			h.logger.Warn("GET /rooms/{id}/availability - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, getRoomAvailability.ErrRoomNotFound):
			h.logger.Warn("GET /rooms/{id}/availability - Room not found: room_id=%d", roomID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, getRoomAvailability.ErrQuestNotFound):
			h.logger.Warn("GET /rooms/{id}/availability - Quest not found: quest_id=%d", questID)
			handlers.RespondNotFound(w, msgQuestNotFound)

		default:
			h.logger.Error("GET /rooms/{id}/availability - Failed: room_id=%d, error=%v", roomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /rooms/{id}/availability - Retrieved: room_id=%d, free_slots=%d",
		roomID, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
