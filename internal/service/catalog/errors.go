package catalog

import "errors"

var (
	// ErrRoomNotFound возвращается, когда комната не найдена
	ErrRoomNotFound = errors.New("catalog: room not found")

	// ErrQuestNotFound возвращается, когда квест не найден
	ErrQuestNotFound = errors.New("catalog: quest not found")

	// ErrInternal возвращается при внутренних ошибках сервиса каталога
	ErrInternal = errors.New("catalog: internal error")
)
