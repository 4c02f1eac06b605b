package payments

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/blackrooms/BR-ReservationService/internal/domain"
	"github.com/blackrooms/BR-ReservationService/internal/events"
	bookingRepo "github.com/blackrooms/BR-ReservationService/internal/infra/storage/booking"
	"github.com/blackrooms/BR-ReservationService/internal/service/payments/models"
	"github.com/blackrooms/BR-ReservationService/pkg/simpletxmanager"
	"github.com/blackrooms/BR-ReservationService/pkg/txmanager"
)

// Service сервис привязки платежей к бронированиям
//
// Платеж принимается только в статусах confirmed/paid. Вставка платежа,
// пересчет суммы и неявный переход confirmed -> paid при достижении цены
// квеста выполняются одной атомарной транзакцией
type Service struct {
	bookingRepo BookingRepository
	paymentRepo PaymentRepository
	txManager   TransactionManager
	publisher   EventPublisher
	logger      Logger
}

// NewService создает новый экземпляр сервиса платежей
func NewService(
	bookingRepo BookingRepository,
	paymentRepo PaymentRepository,
	txManager TransactionManager,
	publisher EventPublisher,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		paymentRepo: paymentRepo,
		txManager:   txManager,
		publisher:   publisher,
		logger:      logger,
	}
}

// RecordPayment привязывает платеж к бронированию и пересчитывает порог оплаты
func (s *Service) RecordPayment(ctx context.Context, req *models.RecordPaymentRequest) (*models.PaymentResponse, error) {
	s.logger.Info("RecordPayment: booking id=%d, method=%s, amount=%d", req.BookingID, req.Method, req.Amount)

	if err := validateRequest(req); err != nil {
		s.logger.Warn("RecordPayment: validation failed: %v", err)
		return nil, err
	}

	var (
		created    *domain.Payment
		totalPaid  int64
		booking    *domain.Booking
		becamePaid bool
	)

	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		var err error

		// Строка бронирования блокируется FOR UPDATE: параллельные платежи
		// по одному бронированию сериализуются
		booking, err = s.bookingRepo.GetByID(txCtx, req.BookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			return fmt.Errorf("%w: RecordPayment - get booking: %w", ErrInternal, err)
		}

		if !booking.CanAcceptPayment() {
			s.logger.Warn("RecordPayment: booking id=%d in status=%s does not accept payments",
				req.BookingID, booking.Status)
			return ErrPaymentNotAllowed
		}

		created, err = s.paymentRepo.Create(txCtx, &domain.Payment{
			BookingID: req.BookingID,
			Method:    req.Method,
			Amount:    req.Amount,
			Date:      req.Date,
		})
		if err != nil {
			return fmt.Errorf("%w: RecordPayment - create payment: %w", ErrInternal, err)
		}

		totalPaid, err = s.paymentRepo.SumByBookingID(txCtx, req.BookingID)
		if err != nil {
			return fmt.Errorf("%w: RecordPayment - sum payments: %w", ErrInternal, err)
		}

		// Порог оплаты: сумма платежей достигла цены квеста,
		// зафиксированной на бронировании при создании
		if booking.Status == domain.StatusConfirmed && totalPaid >= booking.QuestPrice {
			if err := s.bookingRepo.UpdateStatus(txCtx, req.BookingID, domain.StatusPaid); err != nil {
				return fmt.Errorf("%w: RecordPayment - update status: %w", ErrInternal, err)
			}
			booking.Status = domain.StatusPaid
			becamePaid = true
		}

		return nil
	})

	if err != nil {
		if isRetriesExceeded(err) {
			s.logger.Warn("RecordPayment: contention on booking id=%d: %v", req.BookingID, err)
			return nil, ErrBusy
		}
		return nil, err
	}

	if becamePaid {
		s.logger.Info("RecordPayment: booking id=%d fully paid (%d/%d)", req.BookingID, totalPaid, booking.QuestPrice)
		s.publisher.PublishAsync(events.BookingEvent{
			Type:       events.EventBookingPaid,
			BookingID:  booking.ID,
			ScheduleID: booking.ScheduleID,
			ClientID:   booking.ClientID,
			Status:     string(booking.Status),
			OccurredAt: time.Now().UTC(),
		})
	}

	s.logger.Info("RecordPayment: payment id=%d recorded for booking id=%d, total=%d",
		created.ID, req.BookingID, totalPaid)
	return models.FromDomainPayment(created, totalPaid, booking.Status), nil
}

// ListByBooking возвращает платежи бронирования с накопленной суммой
func (s *Service) ListByBooking(ctx context.Context, bookingID int64) (*models.BookingPaymentsResponse, error) {
	if bookingID <= 0 {
		return nil, fmt.Errorf("%w: bookingID must be positive", ErrInvalidInput)
	}

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		s.logger.Error("ListByBooking: get booking id=%d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: ListByBooking - get booking: %w", ErrInternal, err)
	}

	payments, err := s.paymentRepo.ListByBookingID(ctx, bookingID)
	if err != nil {
		s.logger.Error("ListByBooking: list payments for booking id=%d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: ListByBooking - list payments: %w", ErrInternal, err)
	}

	var totalPaid int64
	for _, p := range payments {
		totalPaid += p.Amount
	}

	return models.NewBookingPaymentsResponse(booking, payments, totalPaid), nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *models.RecordPaymentRequest) error {
	if req.BookingID <= 0 {
		return fmt.Errorf("%w: bookingID must be positive", ErrInvalidInput)
	}
	if req.Method == "" {
		return fmt.Errorf("%w: method is required", ErrInvalidInput)
	}
	if req.Amount <= 0 {
		return fmt.Errorf("%w: amount must be positive", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	return nil
}

func isRetriesExceeded(err error) bool {
	return errors.Is(err, txmanager.ErrRetriesExceeded) ||
		errors.Is(err, simpletxmanager.ErrRetriesExceeded)
}
