package create_reservation

import (
	"time"

	"github.com/blackrooms/BR-ReservationService/internal/domain"
	allocateReservation "github.com/blackrooms/BR-ReservationService/internal/usecase/allocate_reservation"
	"github.com/blackrooms/BR-ReservationService/pkg/types"
)

// CreateReservationRequest HTTP request model
type CreateReservationRequest struct {
	QuestID           int64  `json:"questId"`
	RoomID            int64  `json:"roomId"`
	ClientID          int64  `json:"clientId"`
	EmployeeID        int64  `json:"employeeId"`
	Date              string `json:"date"`      // "2026-03-14"
	StartTime         string `json:"startTime"` // "18:00"
	ParticipantsCount int    `json:"participantsCount"`
}

// ReservationResponse HTTP response model
type ReservationResponse struct {
	ScheduleID        int64  `json:"scheduleId"`
	BookingID         int64  `json:"bookingId"`
	QuestID           int64  `json:"questId"`
	RoomID            int64  `json:"roomId"`
	ClientID          int64  `json:"clientId"`
	EmployeeID        int64  `json:"employeeId"`
	Date              string `json:"date"`
	StartTime         string `json:"startTime"`
	EndTime           string `json:"endTime"`
	Status            string `json:"status"`
	QuestTitle        string `json:"questTitle"`
	QuestPrice        int64  `json:"questPrice"`
	ParticipantsCount int    `json:"participantsCount"`
	CreatedAt         string `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateReservationRequest) ToUseCaseRequest() (*allocateReservation.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &allocateReservation.Request{
		QuestID:           r.QuestID,
		RoomID:            r.RoomID,
		ClientID:          r.ClientID,
		EmployeeID:        r.EmployeeID,
		Date:              date,
		StartTime:         startTime,
		ParticipantsCount: r.ParticipantsCount,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(resp *allocateReservation.Response) *ReservationResponse {
	return &ReservationResponse{
		ScheduleID:        resp.ScheduleID,
		BookingID:         resp.BookingID,
		QuestID:           resp.QuestID,
		RoomID:            resp.RoomID,
		ClientID:          resp.ClientID,
		EmployeeID:        resp.EmployeeID,
		Date:              resp.Date.Format(domain.DateFormat),
		StartTime:         resp.StartTime.String(),
		EndTime:           resp.EndTime.String(),
		Status:            resp.Status,
		QuestTitle:        resp.QuestTitle,
		QuestPrice:        resp.QuestPrice,
		ParticipantsCount: resp.ParticipantsCount,
		CreatedAt:         resp.CreatedAt.Format(time.RFC3339),
	}
}
