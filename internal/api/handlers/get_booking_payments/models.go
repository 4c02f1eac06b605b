package get_booking_payments

import (
	"time"

	"github.com/blackrooms/BR-ReservationService/internal/domain"
	"github.com/blackrooms/BR-ReservationService/internal/service/payments/models"
)

// PaymentItem платеж в списке
type PaymentItem struct {
	ID        int64  `json:"id"`
	Method    string `json:"method"`
	Amount    int64  `json:"amount"`
	Date      string `json:"date"`
	CreatedAt string `json:"createdAt"`
}

// BookingPaymentsResponse HTTP response model
type BookingPaymentsResponse struct {
	BookingID     int64         `json:"bookingId"`
	BookingStatus string        `json:"bookingStatus"`
	QuestPrice    int64         `json:"questPrice"`
	TotalPaid     int64         `json:"totalPaid"`
	Payments      []PaymentItem `json:"payments"`
}

// FromServiceResponse конвертирует модель сервисного слоя в HTTP модель
func FromServiceResponse(resp *models.BookingPaymentsResponse) *BookingPaymentsResponse {
	items := make([]PaymentItem, 0, len(resp.Payments))
	for _, p := range resp.Payments {
		items = append(items, PaymentItem{
			ID:        p.ID,
			Method:    p.Method,
			Amount:    p.Amount,
			Date:      p.Date.Format(domain.DateFormat),
			CreatedAt: p.CreatedAt.Format(time.RFC3339),
		})
	}

	return &BookingPaymentsResponse{
		BookingID:     resp.BookingID,
		BookingStatus: resp.BookingStatus,
		QuestPrice:    resp.QuestPrice,
		TotalPaid:     resp.TotalPaid,
		Payments:      items,
	}
}
