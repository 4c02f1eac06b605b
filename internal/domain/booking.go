package domain

import "time"

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusRequested BookingStatus = "requested"
	StatusConfirmed BookingStatus = "confirmed"
	StatusPaid      BookingStatus = "paid"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
)

// transitions таблица допустимых переходов статусов
// Любой переход, которого здесь нет, запрещен; из терминальных статусов
// (completed, cancelled) переходов нет
var transitions = map[BookingStatus][]BookingStatus{
	StatusRequested: {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusPaid, StatusCancelled},
	StatusPaid:      {StatusCompleted, StatusCancelled},
}

// Booking represents a client's claim on a schedule slot
type Booking struct {
	ID         int64
	ClientID   int64
	ScheduleID int64
	EmployeeID int64 // назначенный сотрудник (игровой мастер)
	Status     BookingStatus
	// Количество участников; проверяется против вместимости комнаты при создании
	ParticipantsCount int

	// Denormalized quest data for history and the paid threshold
	QuestTitle string
	QuestPrice int64

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// CanTransitionTo returns true if the status change is allowed by the lifecycle table
func (b *Booking) CanTransitionTo(to BookingStatus) bool {
	for _, allowed := range transitions[b.Status] {
		if allowed == to {
			return true
		}
	}
	return false
}

// IsTerminal returns true if the booking is in a terminal state
func (b *Booking) IsTerminal() bool {
	return b.Status == StatusCompleted || b.Status == StatusCancelled
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// IsActive returns true if the booking still occupies its slot
// Отмененное бронирование освобождает интервал, завершенное - нет (история слота остается)
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelled
}

// CanBeCancelled returns true if the booking can be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.CanTransitionTo(StatusCancelled)
}

// CanAcceptPayment returns true if payments may be attached to the booking
func (b *Booking) CanAcceptPayment() bool {
	return b.Status == StatusConfirmed || b.Status == StatusPaid
}

// CanAttachService returns true if an extra service may be linked to the booking
func (b *Booking) CanAttachService() bool {
	return !b.IsTerminal()
}

// ValidStatus returns true if s is one of the known booking statuses
func ValidStatus(s BookingStatus) bool {
	switch s {
	case StatusRequested, StatusConfirmed, StatusPaid, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}
