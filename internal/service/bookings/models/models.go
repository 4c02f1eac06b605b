package models

import (
	"fmt"
	"time"

	"github.com/blackrooms/BR-ReservationService/internal/domain"
)

// BookingResponse модель бронирования на выходе сервисного слоя
type BookingResponse struct {
	ID                 int64
	ClientID           int64
	ScheduleID         int64
	EmployeeID         int64
	Status             string
	ParticipantsCount  int
	QuestTitle         string
	QuestPrice         int64
	CancellationReason *string
	CancelledAt        *time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// CancelBookingRequest запрос на отмену бронирования
type CancelBookingRequest struct {
	CancellationReason string
}

// ChangeStatusRequest запрос на смену статуса бронирования
type ChangeStatusRequest struct {
	Status string
}

// FromDomainBooking конвертирует доменную модель в response
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	return &BookingResponse{
		ID:                 b.ID,
		ClientID:           b.ClientID,
		ScheduleID:         b.ScheduleID,
		EmployeeID:         b.EmployeeID,
		Status:             string(b.Status),
		ParticipantsCount:  b.ParticipantsCount,
		QuestTitle:         b.QuestTitle,
		QuestPrice:         b.QuestPrice,
		CancellationReason: b.CancellationReason,
		CancelledAt:        b.CancelledAt,
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
	}
}

// ToDomainBookingStatus валидирует и конвертирует статус из строки
func ToDomainBookingStatus(s string) (domain.BookingStatus, error) {
	status := domain.BookingStatus(s)
	if !domain.ValidStatus(status) {
		return "", fmt.Errorf("unknown booking status: %q", s)
	}
	return status, nil
}
