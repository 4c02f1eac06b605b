package get_service

import (
	"time"

	"github.com/blackrooms/BR-ReservationService/internal/service/extraservices/models"
)

// ServiceResponse HTTP response model
type ServiceResponse struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Price       int64  `json:"price"`
	BookingID   *int64 `json:"bookingId,omitempty"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
}

// FromServiceResponse конвертирует модель сервисного слоя в HTTP модель
func FromServiceResponse(s *models.ServiceResponse) *ServiceResponse {
	return &ServiceResponse{
		ID:          s.ID,
		Title:       s.Title,
		Description: s.Description,
		Price:       s.Price,
		BookingID:   s.BookingID,
		CreatedAt:   s.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   s.UpdatedAt.Format(time.RFC3339),
	}
}
