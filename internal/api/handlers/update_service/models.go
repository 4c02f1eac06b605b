package update_service

import (
	"encoding/json"
	"time"

	"github.com/blackrooms/BR-ReservationService/internal/service/extraservices/models"
)

// UpdateServiceRequest HTTP request model
// BookingID различает три случая: поле отсутствует (не менять),
// null (отвязать), число (привязать)
type UpdateServiceRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Price       *int64  `json:"price,omitempty"`

	BookingID    *int64 `json:"-"`
	SetBookingID bool   `json:"-"`
}

// UnmarshalJSON различает отсутствующий bookingId и явный null
func (r *UpdateServiceRequest) UnmarshalJSON(data []byte) error {
	type alias struct {
		Title       *string          `json:"title"`
		Description *string          `json:"description"`
		Price       *int64           `json:"price"`
		BookingID   *json.RawMessage `json:"bookingId"`
	}

	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}

	r.Title = a.Title
	r.Description = a.Description
	r.Price = a.Price

	if a.BookingID != nil {
		r.SetBookingID = true
		if string(*a.BookingID) != "null" {
			var id int64
			if err := json.Unmarshal(*a.BookingID, &id); err != nil {
				return err
			}
			r.BookingID = &id
		}
	}

	return nil
}

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

// ToServiceRequest конвертирует HTTP запрос в модель сервисного слоя
func (r *UpdateServiceRequest) ToServiceRequest() *models.UpdateServiceRequest {
	return &models.UpdateServiceRequest{
		Title:        r.Title,
		Description:  r.Description,
		Price:        r.Price,
		BookingID:    r.BookingID,
		SetBookingID: r.SetBookingID,
	}
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
