package get_room_availability

import (
	"github.com/blackrooms/BR-ReservationService/internal/domain"
	getRoomAvailability "github.com/blackrooms/BR-ReservationService/internal/usecase/get_room_availability"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	RoomID  int64  `json:"roomId"`
	QuestID int64  `json:"questId"`
	Date    string `json:"date"`
	Slots   []Slot `json:"slots"`
}

// Slot свободное окно
type Slot struct {
	StartTime       string `json:"startTime"`
	EndTime         string `json:"endTime"`
	DurationMinutes int    `json:"durationMinutes"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(resp *getRoomAvailability.Response) *AvailabilityResponse {
	slots := make([]Slot, len(resp.Slots))
	for i, s := range resp.Slots {
		slots[i] = Slot{
			StartTime:       s.StartTime.String(),
			EndTime:         s.EndTime.String(),
			DurationMinutes: s.DurationMinutes,
		}
	}

	return &AvailabilityResponse{
		RoomID:  resp.RoomID,
		QuestID: resp.QuestID,
		Date:    resp.Date.Format(domain.DateFormat),
		Slots:   slots,
	}
}
