package create_schedule

import (
	"time"

	"github.com/blackrooms/BR-ReservationService/internal/domain"
	createSchedule "github.com/blackrooms/BR-ReservationService/internal/usecase/create_schedule"
	"github.com/blackrooms/BR-ReservationService/pkg/types"
)

// CreateScheduleRequest HTTP request model
type CreateScheduleRequest struct {
	QuestID   int64  `json:"questId"`
	RoomID    int64  `json:"roomId"`
	Date      string `json:"date"`      // "2026-03-14"
	StartTime string `json:"startTime"` // "10:00"
}

// ScheduleResponse HTTP response model
type ScheduleResponse struct {
	ID        int64  `json:"id"`
	QuestID   int64  `json:"questId"`
	RoomID    int64  `json:"roomId"`
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	CreatedAt string `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateScheduleRequest) ToUseCaseRequest() (*createSchedule.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createSchedule.Request{
		QuestID:   r.QuestID,
		RoomID:    r.RoomID,
		Date:      date,
		StartTime: startTime,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(resp *createSchedule.Response) *ScheduleResponse {
	return &ScheduleResponse{
		ID:        resp.ID,
		QuestID:   resp.QuestID,
		RoomID:    resp.RoomID,
		Date:      resp.Date.Format(domain.DateFormat),
		StartTime: resp.StartTime.String(),
		EndTime:   resp.EndTime.String(),
		CreatedAt: resp.CreatedAt.Format(time.RFC3339),
	}
}
