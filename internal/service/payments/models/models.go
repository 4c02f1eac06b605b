package models

import (
	"time"

	"github.com/blackrooms/BR-ReservationService/internal/domain"
)

// RecordPaymentRequest запрос на привязку платежа к бронированию
type RecordPaymentRequest struct {
	BookingID int64
	Method    string
	Amount    int64
	Date      time.Time
}

// PaymentResponse платеж с результирующим статусом бронирования
// TotalPaid и BookingStatus отражают состояние после привязки платежа,
// включая неявный переход confirmed -> paid при достижении цены квеста
type PaymentResponse struct {
	ID            int64
	BookingID     int64
	Method        string
	Amount        int64
	Date          time.Time
	TotalPaid     int64
	BookingStatus string
	CreatedAt     time.Time
}

// FromDomainPayment конвертирует доменную модель в response
func FromDomainPayment(p *domain.Payment, totalPaid int64, bookingStatus domain.BookingStatus) *PaymentResponse {
	return &PaymentResponse{
		ID:            p.ID,
		BookingID:     p.BookingID,
		Method:        p.Method,
		Amount:        p.Amount,
		Date:          p.Date,
		TotalPaid:     totalPaid,
		BookingStatus: string(bookingStatus),
		CreatedAt:     p.CreatedAt,
	}
}

// PaymentItem платеж в списке платежей бронирования
type PaymentItem struct {
	ID        int64
	Method    string
	Amount    int64
	Date      time.Time
	CreatedAt time.Time
}

// BookingPaymentsResponse платежи бронирования с накопленной суммой
type BookingPaymentsResponse struct {
	BookingID     int64
	BookingStatus string
	QuestPrice    int64
	TotalPaid     int64
	Payments      []PaymentItem
}

// NewBookingPaymentsResponse собирает список платежей бронирования
func NewBookingPaymentsResponse(booking *domain.Booking, payments []*domain.Payment, totalPaid int64) *BookingPaymentsResponse {
	items := make([]PaymentItem, 0, len(payments))
	for _, p := range payments {
		items = append(items, PaymentItem{
			ID:        p.ID,
			Method:    p.Method,
			Amount:    p.Amount,
			Date:      p.Date,
			CreatedAt: p.CreatedAt,
		})
	}

	return &BookingPaymentsResponse{
		BookingID:     booking.ID,
		BookingStatus: string(booking.Status),
		QuestPrice:    booking.QuestPrice,
		TotalPaid:     totalPaid,
		Payments:      items,
	}
}
