package bookings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/blackrooms/BR-ReservationService/internal/domain"
	"github.com/blackrooms/BR-ReservationService/internal/events"
	bookingRepo "github.com/blackrooms/BR-ReservationService/internal/infra/storage/booking"
	scheduleRepo "github.com/blackrooms/BR-ReservationService/internal/infra/storage/schedule"
	"github.com/blackrooms/BR-ReservationService/internal/service/bookings/models"
	"github.com/blackrooms/BR-ReservationService/pkg/simpletxmanager"
	"github.com/blackrooms/BR-ReservationService/pkg/txmanager"
)

// Service lifecycle-менеджер бронирований
// Единолично владеет переходами статусов: любой переход проверяется по
// таблице в domain.Booking и выполняется в транзакции с блокировкой
// строки бронирования
type Service struct {
	bookingRepo  BookingRepository
	scheduleRepo ScheduleRepository
	txManager    TransactionManager
	publisher    EventPublisher
	logger       Logger
}

// NewService создает новый экземпляр lifecycle-менеджера
func NewService(
	bookingRepo BookingRepository,
	scheduleRepo ScheduleRepository,
	txManager TransactionManager,
	publisher EventPublisher,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		scheduleRepo: scheduleRepo,
		txManager:    txManager,
		publisher:    publisher,
		logger:       logger,
	}
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.BookingResponse, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %w", ErrInternal, err)
	}

	return models.FromDomainBooking(booking), nil
}

// ChangeStatus выполняет переход статуса бронирования по таблице переходов
// Недопустимый переход возвращает ErrInvalidTransition, статус не меняется.
// Переход requested -> confirmed дополнительно проверяет, что слот
// бронирования все еще существует
func (s *Service) ChangeStatus(ctx context.Context, bookingID int64, req *models.ChangeStatusRequest) (*models.BookingResponse, error) {
	s.logger.Info("ChangeStatus: booking id=%d -> status=%s", bookingID, req.Status)

	newStatus, err := models.ToDomainBookingStatus(req.Status)
	if err != nil {
		s.logger.Warn("ChangeStatus: invalid status=%s for booking id=%d", req.Status, bookingID)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	var result *domain.Booking

	err = s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		booking, err := s.bookingRepo.GetByID(txCtx, bookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			return fmt.Errorf("%w: ChangeStatus - get booking: %w", ErrInternal, err)
		}

		if !booking.CanTransitionTo(newStatus) {
			s.logger.Warn("ChangeStatus: transition %s -> %s rejected for booking id=%d",
				booking.Status, newStatus, bookingID)
			return ErrInvalidTransition
		}

		// Подтверждать можно только бронирование, слот которого существует
		if booking.Status == domain.StatusRequested && newStatus == domain.StatusConfirmed {
			if _, err := s.scheduleRepo.GetByID(txCtx, booking.ScheduleID); err != nil {
				if errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
					return ErrScheduleNotFound
				}
				return fmt.Errorf("%w: ChangeStatus - get schedule: %w", ErrInternal, err)
			}
		}

		if newStatus == domain.StatusCancelled {
			if err := s.bookingRepo.Cancel(txCtx, bookingID, ""); err != nil {
				return fmt.Errorf("%w: ChangeStatus - cancel: %w", ErrInternal, err)
			}
		} else {
			if err := s.bookingRepo.UpdateStatus(txCtx, bookingID, newStatus); err != nil {
				return fmt.Errorf("%w: ChangeStatus - update status: %w", ErrInternal, err)
			}
		}

		booking.Status = newStatus
		result = booking
		return nil
	})

	if err != nil {
		if isRetriesExceeded(err) {
			s.logger.Warn("ChangeStatus: contention on booking id=%d: %v", bookingID, err)
			return nil, ErrBusy
		}
		return nil, err
	}

	s.publishTransition(result, "")

	s.logger.Info("ChangeStatus: booking id=%d moved to status=%s", bookingID, newStatus)
	return models.FromDomainBooking(result), nil
}

// Cancel отменяет бронирование с указанием причины
// Отмена немедленная и неблокирующая: событие booking.cancelled публикуется
// fire-and-forget, возвраты и уведомления - забота потребителей события.
// Слот остается в расписании для истории, но его интервал освобождается
func (s *Service) Cancel(ctx context.Context, bookingID int64, req *models.CancelBookingRequest) error {
	s.logger.Info("Cancel: cancelling booking id=%d", bookingID)

	if len(req.CancellationReason) > domain.MaxCancellationReasonLength {
		return fmt.Errorf("%w: cancellation reason too long", ErrInvalidInput)
	}

	var cancelled *domain.Booking

	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		booking, err := s.bookingRepo.GetByID(txCtx, bookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			return fmt.Errorf("%w: Cancel - get booking: %w", ErrInternal, err)
		}

		if !booking.CanBeCancelled() {
			s.logger.Warn("Cancel: booking id=%d cannot be cancelled, status=%s", bookingID, booking.Status)
			return ErrInvalidTransition
		}

		if err := s.bookingRepo.Cancel(txCtx, bookingID, req.CancellationReason); err != nil {
			return fmt.Errorf("%w: Cancel - repository error: %w", ErrInternal, err)
		}

		booking.Status = domain.StatusCancelled
		cancelled = booking
		return nil
	})

	if err != nil {
		if isRetriesExceeded(err) {
			s.logger.Warn("Cancel: contention on booking id=%d: %v", bookingID, err)
			return ErrBusy
		}
		return err
	}

	s.publishTransition(cancelled, req.CancellationReason)

	s.logger.Info("Cancel: successfully cancelled booking id=%d", bookingID)
	return nil
}

// publishTransition публикует событие смены статуса, если для статуса
// определено событие. Вызывается после коммита транзакции
func (s *Service) publishTransition(booking *domain.Booking, reason string) {
	var eventType string

	switch booking.Status {
	case domain.StatusConfirmed:
		eventType = events.EventBookingConfirmed
	case domain.StatusPaid:
		eventType = events.EventBookingPaid
	case domain.StatusCompleted:
		eventType = events.EventBookingCompleted
	case domain.StatusCancelled:
		eventType = events.EventBookingCancelled
	default:
		return
	}

	s.publisher.PublishAsync(events.BookingEvent{
		Type:       eventType,
		BookingID:  booking.ID,
		ScheduleID: booking.ScheduleID,
		ClientID:   booking.ClientID,
		Status:     string(booking.Status),
		Reason:     reason,
		OccurredAt: time.Now().UTC(),
	})
}

// isRetriesExceeded проверяет, что транзакция не прошла из-за конфликтов
// сериализации (оба менеджера транзакций сигнализируют это по-своему)
func isRetriesExceeded(err error) bool {
	return errors.Is(err, txmanager.ErrRetriesExceeded) ||
		errors.Is(err, simpletxmanager.ErrRetriesExceeded)
}
