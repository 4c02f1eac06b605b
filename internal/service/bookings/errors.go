package bookings

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("bookings: booking not found")

	// ErrScheduleNotFound возвращается, когда слот бронирования не найден
	ErrScheduleNotFound = errors.New("bookings: schedule not found")

	// ErrInvalidTransition возвращается при недопустимом переходе статуса
	// (переход из терминального статуса или переход вне таблицы переходов)
	// Статус бронирования при этом не меняется
	ErrInvalidTransition = errors.New("bookings: invalid status transition")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("bookings: invalid input data")

	// ErrBusy возвращается, когда операция не смогла захватить критическую
	// секцию за отведенное число попыток; безопасно ретраится вызывающим
	ErrBusy = errors.New("bookings: operation is busy, retry later")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("bookings: internal error")
)
