package domain

// Business validation constants
const (
	MinParticipants = 1

	MinDifficulty = 1
	MaxDifficulty = 5

	MaxCancellationReasonLength = 500
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Working day of the venue: candidate start times lie on a fixed grid
// внутри рабочего дня, конец слота не выходит за время закрытия
const (
	OpeningTime             = "09:00"
	ClosingTime             = "23:00"
	AvailabilityStepMinutes = 30
)
