package change_status

import (
	"time"

	"github.com/blackrooms/BR-ReservationService/internal/service/bookings/models"
)

// ChangeStatusRequest HTTP request model
type ChangeStatusRequest struct {
	Status string `json:"status"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID                 int64   `json:"id"`
	ClientID           int64   `json:"clientId"`
	ScheduleID         int64   `json:"scheduleId"`
	EmployeeID         int64   `json:"employeeId"`
	Status             string  `json:"status"`
	ParticipantsCount  int     `json:"participantsCount"`
	QuestTitle         string  `json:"questTitle"`
	QuestPrice         int64   `json:"questPrice"`
	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"`
	CreatedAt          string  `json:"createdAt"`
	UpdatedAt          string  `json:"updatedAt"`
}

// FromServiceResponse конвертирует модель сервисного слоя в HTTP модель
func FromServiceResponse(b *models.BookingResponse) *BookingResponse {
	resp := &BookingResponse{
		ID:                 b.ID,
		ClientID:           b.ClientID,
		ScheduleID:         b.ScheduleID,
		EmployeeID:         b.EmployeeID,
		Status:             b.Status,
		ParticipantsCount:  b.ParticipantsCount,
		QuestTitle:         b.QuestTitle,
		QuestPrice:         b.QuestPrice,
		CancellationReason: b.CancellationReason,
		CreatedAt:          b.CreatedAt.Format(time.RFC3339),
		UpdatedAt:          b.UpdatedAt.Format(time.RFC3339),
	}

	if b.CancelledAt != nil {
		cancelledAt := b.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledAt
	}

	return resp
}
