package record_payment

import (
	"time"

	"github.com/blackrooms/BR-ReservationService/internal/domain"
	"github.com/blackrooms/BR-ReservationService/internal/service/payments/models"
)

// RecordPaymentRequest HTTP request model
type RecordPaymentRequest struct {
	BookingID int64  `json:"bookingId"`
	Method    string `json:"method"`
	Amount    int64  `json:"amount"`
	Date      string `json:"date"` // "2026-03-14"
}

// PaymentResponse HTTP response model
type PaymentResponse struct {
	ID            int64  `json:"id"`
	BookingID     int64  `json:"bookingId"`
	Method        string `json:"method"`
	Amount        int64  `json:"amount"`
	Date          string `json:"date"`
	TotalPaid     int64  `json:"totalPaid"`
	BookingStatus string `json:"bookingStatus"`
	CreatedAt     string `json:"createdAt"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервисного слоя
func (r *RecordPaymentRequest) ToServiceRequest() (*models.RecordPaymentRequest, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	return &models.RecordPaymentRequest{
		BookingID: r.BookingID,
		Method:    r.Method,
		Amount:    r.Amount,
		Date:      date,
	}, nil
}

// FromServiceResponse конвертирует модель сервисного слоя в HTTP модель
func FromServiceResponse(p *models.PaymentResponse) *PaymentResponse {
	return &PaymentResponse{
		ID:            p.ID,
		BookingID:     p.BookingID,
		Method:        p.Method,
		Amount:        p.Amount,
		Date:          p.Date.Format(domain.DateFormat),
		TotalPaid:     p.TotalPaid,
		BookingStatus: p.BookingStatus,
		CreatedAt:     p.CreatedAt.Format(time.RFC3339),
	}
}
