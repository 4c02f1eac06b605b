package get_room

import "github.com/blackrooms/BR-ReservationService/internal/domain"

// RoomResponse HTTP response model
type RoomResponse struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Type        string `json:"type"`
	Capacity    int    `json:"capacity"`
	IsAvailable bool   `json:"isAvailable"`
}

// FromDomainRoom конвертирует доменную модель в HTTP модель
func FromDomainRoom(room *domain.Room) *RoomResponse {
	return &RoomResponse{
		ID:          room.ID,
		Title:       room.Title,
		Type:        room.Type,
		Capacity:    room.Capacity,
		IsAvailable: room.IsAvailable,
	}
}
