package extraservices

import (
	"context"
	"errors"
	"fmt"

	"github.com/blackrooms/BR-ReservationService/internal/domain"
	bookingRepo "github.com/blackrooms/BR-ReservationService/internal/infra/storage/booking"
	serviceRepo "github.com/blackrooms/BR-ReservationService/internal/infra/storage/extraservice"
	"github.com/blackrooms/BR-ReservationService/internal/service/extraservices/models"
	"github.com/blackrooms/BR-ReservationService/pkg/simpletxmanager"
	"github.com/blackrooms/BR-ReservationService/pkg/txmanager"
)

// Service сервис дополнительных услуг
//
// Услуга может существовать сама по себе или быть привязана к бронированию.
// Привязка допускается только к бронированию в нетерминальном статусе;
// проверка статуса и запись выполняются одной транзакцией, строка
// бронирования блокируется FOR UPDATE
type Service struct {
	serviceRepo ServiceRepository
	bookingRepo BookingRepository
	txManager   TransactionManager
	logger      Logger
}

// NewService создает новый экземпляр сервиса дополнительных услуг
func NewService(
	serviceRepo ServiceRepository,
	bookingRepo BookingRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		serviceRepo: serviceRepo,
		bookingRepo: bookingRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// Create создает услугу, при наличии BookingID сразу привязывая ее к бронированию
func (s *Service) Create(ctx context.Context, req *models.CreateServiceRequest) (*models.ServiceResponse, error) {
	s.logger.Info("Create: service title=%q, price=%d", req.Title, req.Price)

	if err := validateCreate(req); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	var created *domain.ExtraService

	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		if req.BookingID != nil {
			if err := s.checkBookingAttachable(txCtx, *req.BookingID); err != nil {
				return err
			}
		}

		var err error
		created, err = s.serviceRepo.Create(txCtx, &domain.ExtraService{
			Title:       req.Title,
			Description: req.Description,
			Price:       req.Price,
			BookingID:   req.BookingID,
		})
		if err != nil {
			s.logger.Error("Create: repo error: %v", err)
			return fmt.Errorf("%w: Create - create service: %w", ErrInternal, err)
		}

		return nil
	})

	if err != nil {
		if isRetriesExceeded(err) {
			s.logger.Warn("Create: contention: %v", err)
			return nil, ErrBusy
		}
		return nil, err
	}

	s.logger.Info("Create: service id=%d created", created.ID)
	return models.FromDomainService(created), nil
}

// Update обновляет услугу, позволяя привязать ее к бронированию или отвязать
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateServiceRequest) (*models.ServiceResponse, error) {
	s.logger.Info("Update: service id=%d", id)

	if err := validateUpdate(id, req); err != nil {
		s.logger.Warn("Update: validation failed: %v", err)
		return nil, err
	}

	var svc *domain.ExtraService

	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		var err error
		svc, err = s.serviceRepo.GetByID(txCtx, id)
		if err != nil {
			if errors.Is(err, serviceRepo.ErrServiceNotFound) {
				return ErrServiceNotFound
			}
			s.logger.Error("Update: get service id=%d: %v", id, err)
			return fmt.Errorf("%w: Update - get service: %w", ErrInternal, err)
		}

		if req.Title != nil {
			svc.Title = *req.Title
		}
		if req.Description != nil {
			svc.Description = *req.Description
		}
		if req.Price != nil {
			svc.Price = *req.Price
		}
		if req.SetBookingID {
			if req.BookingID != nil {
				if err := s.checkBookingAttachable(txCtx, *req.BookingID); err != nil {
					return err
				}
			}
			svc.BookingID = req.BookingID
		}

		if err := s.serviceRepo.Update(txCtx, svc); err != nil {
			s.logger.Error("Update: repo error for service id=%d: %v", id, err)
			return fmt.Errorf("%w: Update - update service: %w", ErrInternal, err)
		}

		return nil
	})

	if err != nil {
		if isRetriesExceeded(err) {
			s.logger.Warn("Update: contention on service id=%d: %v", id, err)
			return nil, ErrBusy
		}
		return nil, err
	}

	s.logger.Info("Update: service id=%d updated", id)
	return models.FromDomainService(svc), nil
}

// GetByID возвращает услугу по идентификатору
func (s *Service) GetByID(ctx context.Context, id int64) (*models.ServiceResponse, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: id must be positive", ErrInvalidInput)
	}

	svc, err := s.serviceRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			return nil, ErrServiceNotFound
		}
		s.logger.Error("GetByID: get service id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - get service: %w", ErrInternal, err)
	}

	return models.FromDomainService(svc), nil
}

// checkBookingAttachable проверяет, что бронирование существует и не терминально
func (s *Service) checkBookingAttachable(ctx context.Context, bookingID int64) error {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return ErrBookingNotFound
		}
		s.logger.Error("checkBookingAttachable: get booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: get booking: %w", ErrInternal, err)
	}

	if !booking.CanAttachService() {
		s.logger.Warn("checkBookingAttachable: booking id=%d in status=%s is terminal", bookingID, booking.Status)
		return ErrBookingTerminal
	}

	return nil
}

// validateCreate валидирует входные данные запроса на создание
func validateCreate(req *models.CreateServiceRequest) error {
	if req.Title == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if req.Price < 0 {
		return fmt.Errorf("%w: price must not be negative", ErrInvalidInput)
	}
	if req.BookingID != nil && *req.BookingID <= 0 {
		return fmt.Errorf("%w: bookingID must be positive", ErrInvalidInput)
	}
	return nil
}

// validateUpdate валидирует входные данные запроса на обновление
func validateUpdate(id int64, req *models.UpdateServiceRequest) error {
	if id <= 0 {
		return fmt.Errorf("%w: id must be positive", ErrInvalidInput)
	}
	if req.Title != nil && *req.Title == "" {
		return fmt.Errorf("%w: title must not be empty", ErrInvalidInput)
	}
	if req.Price != nil && *req.Price < 0 {
		return fmt.Errorf("%w: price must not be negative", ErrInvalidInput)
	}
	if req.SetBookingID && req.BookingID != nil && *req.BookingID <= 0 {
		return fmt.Errorf("%w: bookingID must be positive", ErrInvalidInput)
	}
	return nil
}

func isRetriesExceeded(err error) bool {
	return errors.Is(err, txmanager.ErrRetriesExceeded) ||
		errors.Is(err, simpletxmanager.ErrRetriesExceeded)
}
