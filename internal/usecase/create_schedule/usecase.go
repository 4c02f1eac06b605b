package create_schedule

import (
	"context"
	"errors"
	"fmt"

	"github.com/blackrooms/BR-ReservationService/internal/domain"
	catalogService "github.com/blackrooms/BR-ReservationService/internal/service/catalog"
	"github.com/blackrooms/BR-ReservationService/pkg/simpletxmanager"
	"github.com/blackrooms/BR-ReservationService/pkg/txmanager"
)

// UseCase use case создания свободного слота расписания
//
// Слот без бронирования тоже блокирует свой интервал: он резервирует
// время комнаты до того, как на него придет клиент
type UseCase struct {
	scheduleRepo ScheduleRepository
	catalog      CatalogService
	txManager    TransactionManager
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	scheduleRepo ScheduleRepository,
	catalog CatalogService,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		scheduleRepo: scheduleRepo,
		catalog:      catalog,
		txManager:    txManager,
		logger:       logger,
	}
}

// Execute выполняет use case создания слота
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateSchedule: quest=%d, room=%d, date=%s, time=%s",
		req.QuestID, req.RoomID, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateSchedule: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем квест
	quest, err := uc.catalog.GetQuest(ctx, req.QuestID)
	if err != nil {
		if errors.Is(err, catalogService.ErrQuestNotFound) {
			uc.logger.Warn("CreateSchedule: quest id=%d not found", req.QuestID)
			return nil, ErrQuestNotFound
		}
		uc.logger.Error("CreateSchedule: failed to get quest id=%d: %v", req.QuestID, err)
		return nil, fmt.Errorf("%w: failed to get quest: %w", ErrInternal, err)
	}

	// 3. Получаем комнату
	room, err := uc.catalog.GetRoom(ctx, req.RoomID)
	if err != nil {
		if errors.Is(err, catalogService.ErrRoomNotFound) {
			uc.logger.Warn("CreateSchedule: room id=%d not found", req.RoomID)
			return nil, ErrRoomNotFound
		}
		uc.logger.Error("CreateSchedule: failed to get room id=%d: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: failed to get room: %w", ErrInternal, err)
	}

	if !room.IsAvailable {
		uc.logger.Warn("CreateSchedule: room id=%d is unavailable", req.RoomID)
		return nil, ErrRoomUnavailable
	}

	// 4. Вычисляем конец интервала
	endTime, err := req.StartTime.AddMinutes(quest.DurationMinutes)
	if err != nil {
		uc.logger.Warn("CreateSchedule: slot does not fit into the day: %v", err)
		return nil, fmt.Errorf("%w: slot end time: %v", ErrInvalidInput, err)
	}

	var created *domain.Schedule

	// 5. Проверка пересечений и вставка в одной сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		blocking, err := uc.scheduleRepo.ListBlockingForRoomDate(txCtx, req.RoomID, req.Date)
		if err != nil {
			uc.logger.Error("CreateSchedule: failed to list blocking slots: %v", err)
			return fmt.Errorf("%w: failed to list blocking slots: %w", ErrInternal, err)
		}

		if conflict := findConflict(blocking, req.StartTime, endTime); conflict != nil {
			uc.logger.Warn("CreateSchedule: interval [%s, %s) conflicts with slot id=%d",
				req.StartTime, endTime, conflict.ID)
			return ErrSlotConflict
		}

		created, err = uc.scheduleRepo.Create(txCtx, &domain.Schedule{
			QuestID:   req.QuestID,
			RoomID:    req.RoomID,
			Date:      req.Date,
			StartTime: req.StartTime,
			EndTime:   endTime,
		})
		if err != nil {
			uc.logger.Error("CreateSchedule: failed to create schedule: %v", err)
			return fmt.Errorf("%w: failed to create schedule: %w", ErrInternal, err)
		}

		return nil
	})

	if err != nil {
		if isRetriesExceeded(err) {
			uc.logger.Warn("CreateSchedule: serialization retries exceeded: %v", err)
			return nil, ErrBusy
		}
		return nil, err
	}

	uc.logger.Info("CreateSchedule: created schedule id=%d", created.ID)

	return &Response{
		ID:        created.ID,
		QuestID:   created.QuestID,
		RoomID:    created.RoomID,
		Date:      created.Date,
		StartTime: created.StartTime,
		EndTime:   created.EndTime,
		CreatedAt: created.CreatedAt,
	}, nil
}

func isRetriesExceeded(err error) bool {
	return errors.Is(err, txmanager.ErrRetriesExceeded) ||
		errors.Is(err, simpletxmanager.ErrRetriesExceeded)
}
