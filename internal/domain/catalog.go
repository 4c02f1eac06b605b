package domain

// Room represents an escape room (reference data, read-only here)
type Room struct {
	ID       int64
	Title    string
	Type     string
	Capacity int
	// Административный флаг (комната закрыта на обслуживание)
	// Не зависит от занятости по расписанию
	IsAvailable bool
}

// Quest represents a quest scenario playable in a room (reference data, read-only here)
type Quest struct {
	ID          int64
	Title       string
	Description string
	Difficulty  int // 1-5
	// Длительность в минутах; конец слота = начало + Duration
	DurationMinutes int
	Price           int64
}
