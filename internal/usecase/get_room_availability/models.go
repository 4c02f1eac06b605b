package get_room_availability

import (
	"time"

	"github.com/blackrooms/BR-ReservationService/pkg/types"
)

// Request модель запроса на получение свободного времени комнаты
type Request struct {
	RoomID  int64     // ID комнаты
	QuestID int64     // ID квеста (длительность определяет размер окна)
	Date    time.Time // Дата (без времени)
}

// Response модель ответа со списком свободных времен начала
type Response struct {
	RoomID  int64     // ID комнаты
	QuestID int64     // ID квеста
	Date    time.Time // Дата
	Slots   []Slot    // Свободные окна
}

// Slot свободное окно под игру указанного квеста
type Slot struct {
	StartTime       types.TimeString // Время начала (например, "18:00")
	EndTime         types.TimeString // Время конца
	DurationMinutes int              // Длительность квеста в минутах
}
