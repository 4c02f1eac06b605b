package get_schedule

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/blackrooms/BR-ReservationService/internal/api/handlers"
	scheduleRepo "github.com/blackrooms/BR-ReservationService/internal/infra/storage/schedule"
)

const (
	msgInvalidScheduleID = "некорректный ID слота"
	msgNotFound          = "слот расписания не найден"
)

type Handler struct {
	repo   ScheduleRepository
	logger Logger
}

func NewHandler(repo ScheduleRepository, logger Logger) *Handler {
	return &Handler{
		repo:   repo,
		logger: logger,
	}
}

// Handle GET /api/v1/schedules/{scheduleId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	scheduleID, err := strconv.ParseInt(vars["scheduleId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /schedules/{id} - Invalid schedule ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidScheduleID)
		return
	}

	schedule, err := h.repo.GetByID(r.Context(), scheduleID)
	if err != nil {
		switch {
		case errors.Is(err, scheduleRepo.ErrScheduleNotFound):
			h.logger.Warn("GET /schedules/{id} - Schedule not found: schedule_id=%d", scheduleID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /schedules/{id} - Failed to get schedule: schedule_id=%d, error=%v",
				scheduleID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /schedules/{id} - Schedule retrieved: schedule_id=%d", scheduleID)
	handlers.RespondJSON(w, http.StatusOK, FromDomainSchedule(schedule))
}
