package allocate_reservation

import (
	"time"

	"github.com/blackrooms/BR-ReservationService/pkg/types"
)

// Request модель запроса на атомарное выделение слота с бронированием
type Request struct {
	QuestID           int64            // ID квеста
	RoomID            int64            // ID комнаты
	ClientID          int64            // ID клиента
	EmployeeID        int64            // ID назначенного сотрудника
	Date              time.Time        // Дата игры (без времени)
	StartTime         types.TimeString // Время начала (например, "18:00")
	ParticipantsCount int              // Количество участников
}

// Response модель ответа: созданный слот и бронирование в статусе requested
type Response struct {
	ScheduleID int64            // ID созданного слота
	BookingID  int64            // ID созданного бронирования
	QuestID    int64            // ID квеста
	RoomID     int64            // ID комнаты
	ClientID   int64            // ID клиента
	EmployeeID int64            // ID сотрудника
	Date       time.Time        // Дата игры
	StartTime  types.TimeString // Время начала
	EndTime    types.TimeString // Время конца (начало + длительность квеста)
	Status     string           // Статус бронирования

	// Денормализованные данные квеста
	QuestTitle        string // Название квеста
	QuestPrice        int64  // Цена квеста
	ParticipantsCount int    // Количество участников

	CreatedAt time.Time // Время создания бронирования
}
