package extraservices

import "errors"

var (
	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("extraservices: service not found")

	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("extraservices: booking not found")

	// ErrBookingTerminal возвращается при попытке привязать услугу к
	// завершенному или отмененному бронированию
	ErrBookingTerminal = errors.New("extraservices: booking is in a terminal status")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("extraservices: invalid input data")

	// ErrBusy возвращается при исчерпании попыток сериализации.
	// Запрос можно повторить
	ErrBusy = errors.New("extraservices: too many concurrent requests")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("extraservices: internal error")
)
