package create_booking

import (
	"time"

	"github.com/blackrooms/BR-ReservationService/pkg/types"
)

// Request модель запроса на бронирование существующего слота
type Request struct {
	ScheduleID        int64 // ID слота расписания
	ClientID          int64 // ID клиента
	EmployeeID        int64 // ID назначенного сотрудника
	ParticipantsCount int   // Количество участников
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID         int64            // ID бронирования
	ScheduleID int64            // ID слота
	ClientID   int64            // ID клиента
	EmployeeID int64            // ID сотрудника
	Status     string           // Статус бронирования
	Date       time.Time        // Дата игры
	StartTime  types.TimeString // Время начала
	EndTime    types.TimeString // Время конца

	// Денормализованные данные квеста
	QuestTitle        string // Название квеста
	QuestPrice        int64  // Цена квеста
	ParticipantsCount int    // Количество участников

	CreatedAt time.Time // Время создания
}
