package create_booking

import (
	"time"

	"github.com/blackrooms/BR-ReservationService/internal/domain"
	createBooking "github.com/blackrooms/BR-ReservationService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	ScheduleID        int64 `json:"scheduleId"`
	ClientID          int64 `json:"clientId"`
	EmployeeID        int64 `json:"employeeId"`
	ParticipantsCount int   `json:"participantsCount"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID                int64  `json:"id"`
	ScheduleID        int64  `json:"scheduleId"`
	ClientID          int64  `json:"clientId"`
	EmployeeID        int64  `json:"employeeId"`
	Status            string `json:"status"`
	Date              string `json:"date"`
	StartTime         string `json:"startTime"`
	EndTime           string `json:"endTime"`
	QuestTitle        string `json:"questTitle"`
	QuestPrice        int64  `json:"questPrice"`
	ParticipantsCount int    `json:"participantsCount"`
	CreatedAt         string `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() *createBooking.Request {
	return &createBooking.Request{
		ScheduleID:        r.ScheduleID,
		ClientID:          r.ClientID,
		EmployeeID:        r.EmployeeID,
		ParticipantsCount: r.ParticipantsCount,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:                resp.ID,
		ScheduleID:        resp.ScheduleID,
		ClientID:          resp.ClientID,
		EmployeeID:        resp.EmployeeID,
		Status:            resp.Status,
		Date:              resp.Date.Format(domain.DateFormat),
		StartTime:         resp.StartTime.String(),
		EndTime:           resp.EndTime.String(),
		QuestTitle:        resp.QuestTitle,
		QuestPrice:        resp.QuestPrice,
		ParticipantsCount: resp.ParticipantsCount,
		CreatedAt:         resp.CreatedAt.Format(time.RFC3339),
	}
}
