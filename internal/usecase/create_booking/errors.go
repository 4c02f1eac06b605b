package create_booking

import "errors"

var (
	// ErrScheduleNotFound возвращается, когда слот не найден
	ErrScheduleNotFound = errors.New("create_booking: schedule not found")

	// ErrQuestNotFound возвращается, когда квест слота не найден
	ErrQuestNotFound = errors.New("create_booking: quest not found")

	// ErrRoomNotFound возвращается, когда комната слота не найдена
	ErrRoomNotFound = errors.New("create_booking: room not found")

	// ErrScheduleTaken возвращается, когда у слота уже есть активное бронирование
	ErrScheduleTaken = errors.New("create_booking: schedule already has an active booking")

	// ErrCapacityExceeded возвращается, когда число участников превышает вместимость комнаты
	ErrCapacityExceeded = errors.New("create_booking: participants count exceeds room capacity")

	// ErrBusy возвращается, когда транзакция не прошла из-за конкуренции после всех попыток
	ErrBusy = errors.New("create_booking: too much contention, try again")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
