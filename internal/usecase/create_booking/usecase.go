package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/blackrooms/BR-ReservationService/internal/domain"
	bookingRepo "github.com/blackrooms/BR-ReservationService/internal/infra/storage/booking"
	scheduleRepo "github.com/blackrooms/BR-ReservationService/internal/infra/storage/schedule"
	catalogService "github.com/blackrooms/BR-ReservationService/internal/service/catalog"
	"github.com/blackrooms/BR-ReservationService/pkg/simpletxmanager"
	"github.com/blackrooms/BR-ReservationService/pkg/txmanager"
)

// UseCase use case бронирования существующего слота расписания
//
// На слот допускается не более одного неотмененного бронирования.
// Проверка занятости и вставка выполняются в одной сериализуемой
// транзакции; частичный уникальный индекс в БД закрывает гонку
// на случай параллельной вставки
type UseCase struct {
	scheduleRepo ScheduleRepository
	bookingRepo  BookingRepository
	catalog      CatalogService
	txManager    TransactionManager
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	scheduleRepo ScheduleRepository,
	bookingRepo BookingRepository,
	catalog CatalogService,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		scheduleRepo: scheduleRepo,
		bookingRepo:  bookingRepo,
		catalog:      catalog,
		txManager:    txManager,
		logger:       logger,
	}
}

// Execute выполняет use case бронирования слота
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: schedule=%d, client=%d, participants=%d",
		req.ScheduleID, req.ClientID, req.ParticipantsCount)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем слот вне транзакции, чтобы узнать квест и комнату
	slot, err := uc.scheduleRepo.GetByID(ctx, req.ScheduleID)
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
			uc.logger.Warn("CreateBooking: schedule id=%d not found", req.ScheduleID)
			return nil, ErrScheduleNotFound
		}
		uc.logger.Error("CreateBooking: failed to get schedule id=%d: %v", req.ScheduleID, err)
		return nil, fmt.Errorf("%w: failed to get schedule: %w", ErrInternal, err)
	}

	// 3. Получаем квест слота (денормализация названия и цены)
	quest, err := uc.catalog.GetQuest(ctx, slot.QuestID)
	if err != nil {
		if errors.Is(err, catalogService.ErrQuestNotFound) {
			uc.logger.Warn("CreateBooking: quest id=%d not found", slot.QuestID)
			return nil, ErrQuestNotFound
		}
		uc.logger.Error("CreateBooking: failed to get quest id=%d: %v", slot.QuestID, err)
		return nil, fmt.Errorf("%w: failed to get quest: %w", ErrInternal, err)
	}

	// 4. Получаем комнату слота и проверяем вместимость
	room, err := uc.catalog.GetRoom(ctx, slot.RoomID)
	if err != nil {
		if errors.Is(err, catalogService.ErrRoomNotFound) {
			uc.logger.Warn("CreateBooking: room id=%d not found", slot.RoomID)
			return nil, ErrRoomNotFound
		}
		uc.logger.Error("CreateBooking: failed to get room id=%d: %v", slot.RoomID, err)
		return nil, fmt.Errorf("%w: failed to get room: %w", ErrInternal, err)
	}

	if err := validateCapacity(room, req.ParticipantsCount); err != nil {
		uc.logger.Warn("CreateBooking: capacity check failed: %v", err)
		return nil, err
	}

	var created *domain.Booking

	// 5. Проверка занятости слота и вставка в одной транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 5.1. Блокируем строку слота (FOR UPDATE), заодно проверяя, что он еще существует
		if _, err := uc.scheduleRepo.GetByID(txCtx, req.ScheduleID); err != nil {
			if errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
				return ErrScheduleNotFound
			}
			return fmt.Errorf("%w: failed to lock schedule: %w", ErrInternal, err)
		}

		// 5.2. Активное бронирование уже есть - слот занят
		_, err := uc.bookingRepo.GetActiveByScheduleID(txCtx, req.ScheduleID)
		if err == nil {
			uc.logger.Warn("CreateBooking: schedule id=%d already has an active booking", req.ScheduleID)
			return ErrScheduleTaken
		}
		if !errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return fmt.Errorf("%w: failed to check active booking: %w", ErrInternal, err)
		}

		// 5.3. Создаем бронирование в статусе requested
		created, err = uc.bookingRepo.Create(txCtx, &domain.Booking{
			ClientID:          req.ClientID,
			ScheduleID:        req.ScheduleID,
			EmployeeID:        req.EmployeeID,
			Status:            domain.StatusRequested,
			ParticipantsCount: req.ParticipantsCount,
			QuestTitle:        quest.Title,
			QuestPrice:        quest.Price,
		})
		if err != nil {
			if errors.Is(err, bookingRepo.ErrScheduleTaken) {
				return ErrScheduleTaken
			}
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %w", ErrInternal, err)
		}

		return nil
	})

	if err != nil {
		if isRetriesExceeded(err) {
			uc.logger.Warn("CreateBooking: serialization retries exceeded: %v", err)
			return nil, ErrBusy
		}
		return nil, err
	}

	uc.logger.Info("CreateBooking: created booking id=%d for schedule id=%d", created.ID, req.ScheduleID)

	return &Response{
		ID:                created.ID,
		ScheduleID:        created.ScheduleID,
		ClientID:          created.ClientID,
		EmployeeID:        created.EmployeeID,
		Status:            string(created.Status),
		Date:              slot.Date,
		StartTime:         slot.StartTime,
		EndTime:           slot.EndTime,
		QuestTitle:        created.QuestTitle,
		QuestPrice:        created.QuestPrice,
		ParticipantsCount: created.ParticipantsCount,
		CreatedAt:         created.CreatedAt,
	}, nil
}

func isRetriesExceeded(err error) bool {
	return errors.Is(err, txmanager.ErrRetriesExceeded) ||
		errors.Is(err, simpletxmanager.ErrRetriesExceeded)
}
