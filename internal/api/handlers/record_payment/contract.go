package record_payment

import (
	"context"

	"github.com/blackrooms/BR-ReservationService/internal/service/payments/models"
)

type PaymentService interface {
	RecordPayment(ctx context.Context, req *models.RecordPaymentRequest) (*models.PaymentResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
