package get_quest

import "github.com/blackrooms/BR-ReservationService/internal/domain"

// QuestResponse HTTP response model
type QuestResponse struct {
	ID              int64  `json:"id"`
	Title           string `json:"title"`
	Description     string `json:"description"`
	Difficulty      int    `json:"difficulty"`
	DurationMinutes int    `json:"durationMinutes"`
	Price           int64  `json:"price"`
}

// FromDomainQuest конвертирует доменную модель в HTTP модель
func FromDomainQuest(quest *domain.Quest) *QuestResponse {
	return &QuestResponse{
		ID:              quest.ID,
		Title:           quest.Title,
		Description:     quest.Description,
		Difficulty:      quest.Difficulty,
		DurationMinutes: quest.DurationMinutes,
		Price:           quest.Price,
	}
}
