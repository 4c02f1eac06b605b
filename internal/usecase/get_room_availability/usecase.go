package get_room_availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/blackrooms/BR-ReservationService/internal/domain"
	catalogService "github.com/blackrooms/BR-ReservationService/internal/service/catalog"
)

// UseCase use case получения свободного времени комнаты на дату
//
// Читающий путь: результат консистентен на момент чтения, без блокировок.
// Гонку с параллельной бронью закрывает аллокатор при создании слота
type UseCase struct {
	scheduleRepo ScheduleRepository
	catalog      CatalogService
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(scheduleRepo ScheduleRepository, catalog CatalogService, logger Logger) *UseCase {
	return &UseCase{
		scheduleRepo: scheduleRepo,
		catalog:      catalog,
		logger:       logger,
	}
}

// Execute выполняет use case получения свободных окон
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetRoomAvailability: room=%d, quest=%d, date=%s",
		req.RoomID, req.QuestID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetRoomAvailability: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем комнату
	room, err := uc.catalog.GetRoom(ctx, req.RoomID)
	if err != nil {
		if errors.Is(err, catalogService.ErrRoomNotFound) {
			uc.logger.Warn("GetRoomAvailability: room id=%d not found", req.RoomID)
			return nil, ErrRoomNotFound
		}
		uc.logger.Error("GetRoomAvailability: failed to get room id=%d: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: failed to get room: %w", ErrInternal, err)
	}

	// 3. Получаем квест (длительность окна)
	quest, err := uc.catalog.GetQuest(ctx, req.QuestID)
	if err != nil {
		if errors.Is(err, catalogService.ErrQuestNotFound) {
			uc.logger.Warn("GetRoomAvailability: quest id=%d not found", req.QuestID)
			return nil, ErrQuestNotFound
		}
		uc.logger.Error("GetRoomAvailability: failed to get quest id=%d: %v", req.QuestID, err)
		return nil, fmt.Errorf("%w: failed to get quest: %w", ErrInternal, err)
	}

	// 4. Закрытая комната свободных окон не имеет
	if !room.IsAvailable {
		uc.logger.Info("GetRoomAvailability: room id=%d is unavailable, no slots", req.RoomID)
		return &Response{
			RoomID:  req.RoomID,
			QuestID: req.QuestID,
			Date:    req.Date,
			Slots:   []Slot{},
		}, nil
	}

	// 5. Блокирующие слоты комнаты на дату (без блокировок, обычное чтение)
	blocking, err := uc.scheduleRepo.ListBlockingForRoomDate(ctx, req.RoomID, req.Date)
	if err != nil {
		uc.logger.Error("GetRoomAvailability: failed to list blocking slots: %v", err)
		return nil, fmt.Errorf("%w: failed to list blocking slots: %w", ErrInternal, err)
	}

	// 6. Генерируем кандидатов и отбрасываем пересекающихся с занятыми интервалами
	candidates, err := generateCandidates(quest.DurationMinutes)
	if err != nil {
		uc.logger.Error("GetRoomAvailability: failed to generate candidates: %v", err)
		return nil, fmt.Errorf("%w: failed to generate candidates: %w", ErrInternal, err)
	}

	free := filterFree(candidates, quest.DurationMinutes, blocking)

	uc.logger.Info("GetRoomAvailability: room id=%d, date=%s: %d free of %d candidates",
		req.RoomID, req.Date.Format(domain.DateFormat), len(free), len(candidates))

	return &Response{
		RoomID:  req.RoomID,
		QuestID: req.QuestID,
		Date:    req.Date,
		Slots:   free,
	}, nil
}
