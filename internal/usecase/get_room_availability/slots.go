package get_room_availability

import (
	"github.com/blackrooms/BR-ReservationService/internal/domain"
	"github.com/blackrooms/BR-ReservationService/pkg/types"
)

// generateCandidates генерирует все возможные времена начала игры на день
// Кандидаты идут с фиксированным шагом от открытия площадки; окно, конец
// которого выходит за время закрытия, не предлагается
func generateCandidates(durationMinutes int) ([]types.TimeString, error) {
	openTime, err := types.NewTimeStringFromString(domain.OpeningTime)
	if err != nil {
		return nil, err
	}

	closeTime, err := types.NewTimeStringFromString(domain.ClosingTime)
	if err != nil {
		return nil, err
	}

	candidates := make([]types.TimeString, 0)
	current := openTime

	for current.IsBefore(closeTime) {
		slotEnd, err := current.AddMinutes(durationMinutes)
		if err != nil {
			break
		}
		if slotEnd.IsAfter(closeTime) {
			break
		}

		candidates = append(candidates, current)

		current, err = current.AddMinutes(domain.AvailabilityStepMinutes)
		if err != nil {
			break
		}
	}

	return candidates, nil
}

// filterFree оставляет кандидатов, чье окно [start, start+duration) не
// пересекается ни с одним блокирующим слотом
// Границы не считаются пересечением: окно, начинающееся ровно в момент
// конца слота, свободно
func filterFree(candidates []types.TimeString, durationMinutes int, blocking []*domain.Schedule) []Slot {
	free := make([]Slot, 0, len(candidates))

	for _, start := range candidates {
		end, err := start.AddMinutes(durationMinutes)
		if err != nil {
			continue
		}

		conflicts := false
		for _, slot := range blocking {
			if slot.Overlaps(start, end) {
				conflicts = true
				break
			}
		}

		if !conflicts {
			free = append(free, Slot{
				StartTime:       start,
				EndTime:         end,
				DurationMinutes: durationMinutes,
			})
		}
	}

	return free
}
