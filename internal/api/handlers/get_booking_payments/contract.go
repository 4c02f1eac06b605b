package get_booking_payments

import (
	"context"

	"github.com/blackrooms/BR-ReservationService/internal/service/payments/models"
)

type PaymentsService interface {
	ListByBooking(ctx context.Context, bookingID int64) (*models.BookingPaymentsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
