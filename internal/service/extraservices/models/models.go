package models

import (
	"time"

	"github.com/blackrooms/BR-ReservationService/internal/domain"
)

// CreateServiceRequest запрос на создание услуги
// BookingID опционален: услуга может существовать без привязки
type CreateServiceRequest struct {
	Title       string
	Description string
	Price       int64
	BookingID   *int64
}

// UpdateServiceRequest запрос на обновление услуги
// Поля nil не изменяются; BookingID задается отдельным флагом,
// чтобы отличать "не менять" от "отвязать"
type UpdateServiceRequest struct {
	Title        *string
	Description  *string
	Price        *int64
	BookingID    *int64
	SetBookingID bool
}

// ServiceResponse модель услуги на выходе сервисного слоя
type ServiceResponse struct {
	ID          int64
	Title       string
	Description string
	Price       int64
	BookingID   *int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// FromDomainService конвертирует доменную модель в response
func FromDomainService(s *domain.ExtraService) *ServiceResponse {
	return &ServiceResponse{
		ID:          s.ID,
		Title:       s.Title,
		Description: s.Description,
		Price:       s.Price,
		BookingID:   s.BookingID,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}
