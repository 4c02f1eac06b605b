package payments

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("payments: booking not found")

	// ErrPaymentNotAllowed возвращается при попытке привязать платеж к
	// бронированию вне статусов confirmed/paid
	ErrPaymentNotAllowed = errors.New("payments: booking status does not accept payments")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("payments: invalid input data")

	// ErrBusy возвращается при неудаче захвата критической секции; ретраибельна
	ErrBusy = errors.New("payments: operation is busy, retry later")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("payments: internal error")
)
