package domain

import "time"

// Payment represents a single payment attached to a booking
// Бронирование считается оплаченным, когда сумма платежей достигает цены квеста
type Payment struct {
	ID        int64
	BookingID int64
	Method    string
	Amount    int64
	Date      time.Time

	CreatedAt time.Time
}

// ExtraService представляет дополнительную услугу (фотосессия, видеосъемка и т.п.)
// Услуга может существовать без привязки и быть привязана к бронированию позже
type ExtraService struct {
	ID          int64
	Title       string
	Description string
	Price       int64
	BookingID   *int64

	CreatedAt time.Time
	UpdatedAt time.Time
}
