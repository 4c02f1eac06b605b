package domain

import (
	"time"

	"github.com/blackrooms/BR-ReservationService/pkg/types"
)

// Schedule represents an allocated (room, date, interval) time slot
// Слот создается только аллокатором, который гарантирует отсутствие
// пересечений с другими активными слотами той же комнаты
type Schedule struct {
	ID      int64
	QuestID int64
	RoomID  int64
	Date    time.Time
	// Полуоткрытый интервал [StartTime, EndTime)
	StartTime types.TimeString
	EndTime   types.TimeString

	CreatedAt time.Time
}

// Overlaps reports whether the slot's interval overlaps [start, end)
// Полуоткрытая семантика: слот, заканчивающийся ровно в момент начала
// другого, не пересекается с ним
func (s *Schedule) Overlaps(start, end types.TimeString) bool {
	return s.StartTime.IsBefore(end) && start.IsBefore(s.EndTime)
}
