package create_schedule

import (
	"time"

	"github.com/blackrooms/BR-ReservationService/pkg/types"
)

// Request модель запроса на создание свободного слота расписания
type Request struct {
	QuestID   int64            // ID квеста
	RoomID    int64            // ID комнаты
	Date      time.Time        // Дата (без времени)
	StartTime types.TimeString // Время начала (например, "10:00")
}

// Response модель ответа с созданным слотом
type Response struct {
	ID        int64            // ID слота
	QuestID   int64            // ID квеста
	RoomID    int64            // ID комнаты
	Date      time.Time        // Дата
	StartTime types.TimeString // Время начала
	EndTime   types.TimeString // Время конца (начало + длительность квеста)
	CreatedAt time.Time        // Время создания
}
