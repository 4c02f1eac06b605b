package get_quest

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/blackrooms/BR-ReservationService/internal/api/handlers"
	"github.com/blackrooms/BR-ReservationService/internal/service/catalog"
)

const (
	msgInvalidQuestID = "некорректный ID квеста"
	msgNotFound       = "квест не найден"
)

type Handler struct {
	catalog CatalogService
	logger  Logger
}

func NewHandler(catalog CatalogService, logger Logger) *Handler {
	return &Handler{
		catalog: catalog,
		logger:  logger,
	}
}

// Handle GET /api/v1/quests/{questId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	questID, err := strconv.ParseInt(vars["questId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /quests/{id} - Invalid quest ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidQuestID)
		return
	}

	quest, err := h.catalog.GetQuest(r.Context(), questID)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrQuestNotFound):
			h.logger.Warn("GET /quests/{id} - Quest not found: quest_id=%d", questID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /quests/{id} - Failed to get quest: quest_id=%d, error=%v", questID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /quests/{id} - Quest retrieved: quest_id=%d", questID)
	handlers.RespondJSON(w, http.StatusOK, FromDomainQuest(quest))
}
