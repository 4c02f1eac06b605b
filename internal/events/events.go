package events

import "time"

// Типы событий жизненного цикла бронирования
// Имя события совпадает с именем durable-очереди, в которую оно публикуется
const (
	EventBookingConfirmed = "booking.confirmed"
	EventBookingPaid      = "booking.paid"
	EventBookingCompleted = "booking.completed"
	EventBookingCancelled = "booking.cancelled"
)

// BookingEvent событие изменения состояния бронирования
// Потребители: уведомления клиентам, возвраты, аналитика
type BookingEvent struct {
	Type       string    `json:"type"`
	BookingID  int64     `json:"bookingId"`
	ScheduleID int64     `json:"scheduleId"`
	ClientID   int64     `json:"clientId"`
	Status     string    `json:"status"`
	Reason     string    `json:"reason,omitempty"`
	OccurredAt time.Time `json:"occurredAt"`
}
