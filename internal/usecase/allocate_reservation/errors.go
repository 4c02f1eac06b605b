package allocate_reservation

import "errors"

var (
	// ErrQuestNotFound возвращается, когда квест не найден
	ErrQuestNotFound = errors.New("allocate_reservation: quest not found")

	// ErrRoomNotFound возвращается, когда комната не найдена
	ErrRoomNotFound = errors.New("allocate_reservation: room not found")

	// ErrRoomUnavailable возвращается, когда комната закрыта административно
	ErrRoomUnavailable = errors.New("allocate_reservation: room is unavailable")

	// ErrSlotConflict возвращается, когда интервал пересекается с активным слотом
	ErrSlotConflict = errors.New("allocate_reservation: time slot conflicts with an existing reservation")

	// ErrCapacityExceeded возвращается, когда число участников превышает вместимость комнаты
	ErrCapacityExceeded = errors.New("allocate_reservation: participants count exceeds room capacity")

	// ErrBusy возвращается, когда транзакция не прошла из-за конкуренции после всех попыток
	ErrBusy = errors.New("allocate_reservation: too much contention, try again")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("allocate_reservation: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("allocate_reservation: internal error")
)
