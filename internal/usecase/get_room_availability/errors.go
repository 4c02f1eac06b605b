package get_room_availability

import "errors"

var (
	// ErrRoomNotFound возвращается, когда комната не найдена
	ErrRoomNotFound = errors.New("get_room_availability: room not found")

	// ErrQuestNotFound возвращается, когда квест не найден
	ErrQuestNotFound = errors.New("get_room_availability: quest not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_room_availability: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_room_availability: internal error")
)
