package create_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blackrooms/BR-ReservationService/internal/domain"
	bookingStorage "github.com/blackrooms/BR-ReservationService/internal/infra/storage/booking"
	scheduleStorage "github.com/blackrooms/BR-ReservationService/internal/infra/storage/schedule"
	catalogService "github.com/blackrooms/BR-ReservationService/internal/service/catalog"
	"github.com/blackrooms/BR-ReservationService/pkg/types"
)

type fakeScheduleRepo struct {
	schedules map[int64]*domain.Schedule
}

func (f *fakeScheduleRepo) GetByID(_ context.Context, id int64) (*domain.Schedule, error) {
	s, ok := f.schedules[id]
	if !ok {
		return nil, scheduleStorage.ErrScheduleNotFound
	}
	return s, nil
}

type fakeBookingRepo struct {
	active  map[int64]*domain.Booking // schedule_id -> активное бронирование
	created []*domain.Booking
	nextID  int64
}

func (f *fakeBookingRepo) Create(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
	if _, taken := f.active[b.ScheduleID]; taken {
		return nil, bookingStorage.ErrScheduleTaken
	}
	f.nextID++
	created := *b
	created.ID = f.nextID
	created.CreatedAt = time.Now()
	f.created = append(f.created, &created)
	return &created, nil
}

func (f *fakeBookingRepo) GetActiveByScheduleID(_ context.Context, scheduleID int64) (*domain.Booking, error) {
	b, ok := f.active[scheduleID]
	if !ok {
		return nil, bookingStorage.ErrBookingNotFound
	}
	return b, nil
}

type fakeCatalog struct {
	rooms  map[int64]*domain.Room
	quests map[int64]*domain.Quest
}

func (f *fakeCatalog) GetRoom(_ context.Context, id int64) (*domain.Room, error) {
	room, ok := f.rooms[id]
	if !ok {
		return nil, catalogService.ErrRoomNotFound
	}
	return room, nil
}

func (f *fakeCatalog) GetQuest(_ context.Context, id int64) (*domain.Quest, error) {
	quest, ok := f.quests[id]
	if !ok {
		return nil, catalogService.ErrQuestNotFound
	}
	return quest, nil
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func mustTime(t *testing.T, s string) types.TimeString {
	t.Helper()
	ts, err := types.NewTimeStringFromString(s)
	require.NoError(t, err)
	return ts
}

func fixtures(t *testing.T) (*fakeScheduleRepo, *fakeBookingRepo, *fakeCatalog) {
	t.Helper()
	scheduleRepo := &fakeScheduleRepo{
		schedules: map[int64]*domain.Schedule{
			1: {
				ID: 1, QuestID: 1, RoomID: 1,
				Date:      time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
				StartTime: mustTime(t, "18:00"),
				EndTime:   mustTime(t, "19:00"),
			},
		},
	}
	bookingRepo := &fakeBookingRepo{active: map[int64]*domain.Booking{}}
	catalog := &fakeCatalog{
		rooms: map[int64]*domain.Room{
			1: {ID: 1, Capacity: 5, IsAvailable: true},
		},
		quests: map[int64]*domain.Quest{
			1: {ID: 1, Title: "Побег", DurationMinutes: 60, Price: 2500},
		},
	}
	return scheduleRepo, bookingRepo, catalog
}

func TestExecute_Success(t *testing.T) {
	scheduleRepo, bookingRepo, catalog := fixtures(t)
	uc := NewUseCase(scheduleRepo, bookingRepo, catalog, fakeTxManager{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		ScheduleID: 1, ClientID: 10, EmployeeID: 20, ParticipantsCount: 4,
	})
	require.NoError(t, err)

	assert.Equal(t, "requested", resp.Status)
	assert.Equal(t, int64(1), resp.ScheduleID)
	assert.Equal(t, "Побег", resp.QuestTitle)
	assert.Equal(t, int64(2500), resp.QuestPrice)
	assert.Equal(t, mustTime(t, "18:00"), resp.StartTime)
	require.Len(t, bookingRepo.created, 1)
}

func TestExecute_ScheduleTaken(t *testing.T) {
	scheduleRepo, bookingRepo, catalog := fixtures(t)
	bookingRepo.active[1] = &domain.Booking{ID: 100, ScheduleID: 1, Status: domain.StatusConfirmed}

	uc := NewUseCase(scheduleRepo, bookingRepo, catalog, fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		ScheduleID: 1, ClientID: 10, EmployeeID: 20, ParticipantsCount: 2,
	})
	assert.ErrorIs(t, err, ErrScheduleTaken)
}

func TestExecute_CancelledBookingReleasesSlot(t *testing.T) {
	// Отмененное бронирование не считается активным: слот можно занять снова
	scheduleRepo, bookingRepo, catalog := fixtures(t)
	uc := NewUseCase(scheduleRepo, bookingRepo, catalog, fakeTxManager{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		ScheduleID: 1, ClientID: 11, EmployeeID: 20, ParticipantsCount: 2,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(11), resp.ClientID)
}

func TestExecute_ScheduleNotFound(t *testing.T) {
	scheduleRepo, bookingRepo, catalog := fixtures(t)
	uc := NewUseCase(scheduleRepo, bookingRepo, catalog, fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		ScheduleID: 99, ClientID: 10, EmployeeID: 20, ParticipantsCount: 2,
	})
	assert.ErrorIs(t, err, ErrScheduleNotFound)
}

func TestExecute_CapacityExceeded(t *testing.T) {
	scheduleRepo, bookingRepo, catalog := fixtures(t)
	uc := NewUseCase(scheduleRepo, bookingRepo, catalog, fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		ScheduleID: 1, ClientID: 10, EmployeeID: 20, ParticipantsCount: 6,
	})
	assert.ErrorIs(t, err, ErrCapacityExceeded)
}

func TestExecute_InvalidInput(t *testing.T) {
	scheduleRepo, bookingRepo, catalog := fixtures(t)
	uc := NewUseCase(scheduleRepo, bookingRepo, catalog, fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		ScheduleID: 1, ClientID: 10, EmployeeID: 20, ParticipantsCount: 0,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
