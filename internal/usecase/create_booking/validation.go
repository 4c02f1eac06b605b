package create_booking

import (
	"fmt"

	"github.com/blackrooms/BR-ReservationService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ScheduleID <= 0 {
		return fmt.Errorf("%w: scheduleID must be positive", ErrInvalidInput)
	}

	if req.ClientID <= 0 {
		return fmt.Errorf("%w: clientID must be positive", ErrInvalidInput)
	}

	if req.EmployeeID <= 0 {
		return fmt.Errorf("%w: employeeID must be positive", ErrInvalidInput)
	}

	if req.ParticipantsCount < domain.MinParticipants {
		return fmt.Errorf("%w: participantsCount must be at least %d", ErrInvalidInput, domain.MinParticipants)
	}

	return nil
}

// validateCapacity проверяет число участников против вместимости комнаты
func validateCapacity(room *domain.Room, participants int) error {
	if participants > room.Capacity {
		return fmt.Errorf("%w: %d participants, room capacity is %d",
			ErrCapacityExceeded, participants, room.Capacity)
	}
	return nil
}
