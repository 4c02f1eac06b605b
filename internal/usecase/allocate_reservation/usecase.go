package allocate_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/blackrooms/BR-ReservationService/internal/domain"
	bookingRepo "github.com/blackrooms/BR-ReservationService/internal/infra/storage/booking"
	catalogService "github.com/blackrooms/BR-ReservationService/internal/service/catalog"
	"github.com/blackrooms/BR-ReservationService/pkg/simpletxmanager"
	"github.com/blackrooms/BR-ReservationService/pkg/txmanager"
)

// UseCase use case атомарного выделения слота с бронированием
//
// Слот расписания и бронирование в статусе requested создаются одной
// сериализуемой транзакцией: проверка пересечений и обе вставки либо
// проходят целиком, либо не оставляют следов. Параллельные запросы на
// пересекающиеся интервалы получают ровно одно успешное выделение
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

// Execute выполняет use case выделения слота
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("AllocateReservation: quest=%d, room=%d, client=%d, date=%s, time=%s, participants=%d",
		req.QuestID, req.RoomID, req.ClientID, req.Date.Format(domain.DateFormat), req.StartTime, req.ParticipantsCount)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("AllocateReservation: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем квест (длительность определяет конец интервала)
	quest, err := uc.catalog.GetQuest(ctx, req.QuestID)
	if err != nil {
		if errors.Is(err, catalogService.ErrQuestNotFound) {
			uc.logger.Warn("AllocateReservation: quest id=%d not found", req.QuestID)
			return nil, ErrQuestNotFound
		}
		uc.logger.Error("AllocateReservation: failed to get quest id=%d: %v", req.QuestID, err)
		return nil, fmt.Errorf("%w: failed to get quest: %w", ErrInternal, err)
	}

	// 3. Получаем комнату
	room, err := uc.catalog.GetRoom(ctx, req.RoomID)
	if err != nil {
		if errors.Is(err, catalogService.ErrRoomNotFound) {
			uc.logger.Warn("AllocateReservation: room id=%d not found", req.RoomID)
			return nil, ErrRoomNotFound
		}
		uc.logger.Error("AllocateReservation: failed to get room id=%d: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: failed to get room: %w", ErrInternal, err)
	}

	// 4. Комната закрыта административно - интервал не важен
	if !room.IsAvailable {
		uc.logger.Warn("AllocateReservation: room id=%d is unavailable", req.RoomID)
		return nil, ErrRoomUnavailable
	}

	// 5. Проверяем вместимость
	if err := validateCapacity(room, req.ParticipantsCount); err != nil {
		uc.logger.Warn("AllocateReservation: capacity check failed: %v", err)
		return nil, err
	}

	// 6. Вычисляем конец интервала: начало + длительность квеста
	endTime, err := req.StartTime.AddMinutes(quest.DurationMinutes)
	if err != nil {
		uc.logger.Warn("AllocateReservation: slot does not fit into the day: %v", err)
		return nil, fmt.Errorf("%w: slot end time: %v", ErrInvalidInput, err)
	}

	var (
		createdSchedule *domain.Schedule
		createdBooking  *domain.Booking
	)

	// 7. Критическая секция: проверка пересечений и обе вставки в одной транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 7.1. Блокирующие слоты комнаты на дату (FOR UPDATE)
		blocking, err := uc.scheduleRepo.ListBlockingForRoomDate(txCtx, req.RoomID, req.Date)
		if err != nil {
			uc.logger.Error("AllocateReservation: failed to list blocking slots: %v", err)
			return fmt.Errorf("%w: failed to list blocking slots: %w", ErrInternal, err)
		}

		// 7.2. Проверяем пересечение с каждым активным слотом
		if conflict := findConflict(blocking, req.StartTime, endTime); conflict != nil {
			uc.logger.Warn("AllocateReservation: interval [%s, %s) conflicts with slot id=%d [%s, %s)",
				req.StartTime, endTime, conflict.ID, conflict.StartTime, conflict.EndTime)
			return ErrSlotConflict
		}

		// 7.3. Создаем слот
		createdSchedule, err = uc.scheduleRepo.Create(txCtx, &domain.Schedule{
			QuestID:   req.QuestID,
			RoomID:    req.RoomID,
			Date:      req.Date,
			StartTime: req.StartTime,
			EndTime:   endTime,
		})
		if err != nil {
			uc.logger.Error("AllocateReservation: failed to create schedule: %v", err)
			return fmt.Errorf("%w: failed to create schedule: %w", ErrInternal, err)
		}

		// 7.4. Создаем бронирование в статусе requested с денормализацией квеста
		createdBooking, err = uc.bookingRepo.Create(txCtx, &domain.Booking{
			ClientID:          req.ClientID,
			ScheduleID:        createdSchedule.ID,
			EmployeeID:        req.EmployeeID,
			Status:            domain.StatusRequested,
			ParticipantsCount: req.ParticipantsCount,
			QuestTitle:        quest.Title,
			QuestPrice:        quest.Price,
		})
		if err != nil {
			if errors.Is(err, bookingRepo.ErrScheduleTaken) {
				return ErrSlotConflict
			}
			uc.logger.Error("AllocateReservation: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %w", ErrInternal, err)
		}

		return nil
	})

	if err != nil {
		if isRetriesExceeded(err) {
			uc.logger.Warn("AllocateReservation: serialization retries exceeded: %v", err)
			return nil, ErrBusy
		}
		return nil, err
	}

	uc.logger.Info("AllocateReservation: allocated schedule id=%d, booking id=%d",
		createdSchedule.ID, createdBooking.ID)

	return &Response{
		ScheduleID:        createdSchedule.ID,
		BookingID:         createdBooking.ID,
		QuestID:           req.QuestID,
		RoomID:            req.RoomID,
		ClientID:          req.ClientID,
		EmployeeID:        req.EmployeeID,
		Date:              createdSchedule.Date,
		StartTime:         createdSchedule.StartTime,
		EndTime:           createdSchedule.EndTime,
		Status:            string(createdBooking.Status),
		QuestTitle:        createdBooking.QuestTitle,
		QuestPrice:        createdBooking.QuestPrice,
		ParticipantsCount: createdBooking.ParticipantsCount,
		CreatedAt:         createdBooking.CreatedAt,
	}, nil
}

func isRetriesExceeded(err error) bool {
	return errors.Is(err, txmanager.ErrRetriesExceeded) ||
		errors.Is(err, simpletxmanager.ErrRetriesExceeded)
}
