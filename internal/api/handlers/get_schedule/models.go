package get_schedule

import (
	"time"

	"github.com/blackrooms/BR-ReservationService/internal/domain"
)

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

// FromDomainSchedule конвертирует доменную модель в HTTP модель
func FromDomainSchedule(s *domain.Schedule) *ScheduleResponse {
	return &ScheduleResponse{
		ID:        s.ID,
		QuestID:   s.QuestID,
		RoomID:    s.RoomID,
		Date:      s.Date.Format(domain.DateFormat),
		StartTime: s.StartTime.String(),
		EndTime:   s.EndTime.String(),
		CreatedAt: s.CreatedAt.Format(time.RFC3339),
	}
}
