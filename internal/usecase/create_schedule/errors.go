package create_schedule

import "errors"

var (
	// ErrQuestNotFound возвращается, когда квест не найден
	ErrQuestNotFound = errors.New("create_schedule: quest not found")

	// ErrRoomNotFound возвращается, когда комната не найдена
	ErrRoomNotFound = errors.New("create_schedule: room not found")

	// ErrRoomUnavailable возвращается, когда комната закрыта административно
	ErrRoomUnavailable = errors.New("create_schedule: room is unavailable")

	// ErrSlotConflict возвращается, когда интервал пересекается с активным слотом
	ErrSlotConflict = errors.New("create_schedule: time slot conflicts with an existing slot")

	// ErrBusy возвращается, когда транзакция не прошла из-за конкуренции после всех попыток
	ErrBusy = errors.New("create_schedule: too much contention, try again")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_schedule: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_schedule: internal error")
)
