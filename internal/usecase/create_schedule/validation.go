package create_schedule

import (
	"fmt"

	"github.com/blackrooms/BR-ReservationService/internal/domain"
	"github.com/blackrooms/BR-ReservationService/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.QuestID <= 0 {
		return fmt.Errorf("%w: questID must be positive", ErrInvalidInput)
	}

	if req.RoomID <= 0 {
		return fmt.Errorf("%w: roomID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	return nil
}

// findConflict возвращает первый слот, пересекающийся с [start, end)
func findConflict(slots []*domain.Schedule, start, end types.TimeString) *domain.Schedule {
	for _, slot := range slots {
		if slot.Overlaps(start, end) {
			return slot
		}
	}
	return nil
}
