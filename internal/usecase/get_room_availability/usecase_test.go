package get_room_availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blackrooms/BR-ReservationService/internal/domain"
	catalogService "github.com/blackrooms/BR-ReservationService/internal/service/catalog"
	"github.com/blackrooms/BR-ReservationService/pkg/types"
)

type fakeScheduleRepo struct {
	blocking []*domain.Schedule
}

func (f *fakeScheduleRepo) ListBlockingForRoomDate(_ context.Context, _ int64, _ time.Time) ([]*domain.Schedule, error) {
	return f.blocking, nil
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

func testCatalog() *fakeCatalog {
	return &fakeCatalog{
		rooms: map[int64]*domain.Room{
			1: {ID: 1, Capacity: 5, IsAvailable: true},
			2: {ID: 2, Capacity: 3, IsAvailable: false},
		},
		quests: map[int64]*domain.Quest{
			1: {ID: 1, DurationMinutes: 60, Price: 2500},
		},
	}
}

func request() *Request {
	return &Request{
		RoomID:  1,
		QuestID: 1,
		Date:    time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
	}
}

func TestExecute_EmptyDayAllCandidatesFree(t *testing.T) {
	uc := NewUseCase(&fakeScheduleRepo{}, testCatalog(), nopLogger{})

	resp, err := uc.Execute(context.Background(), request())
	require.NoError(t, err)

	// 09:00..22:00 с шагом 30 минут для часового квеста
	require.NotEmpty(t, resp.Slots)
	assert.Equal(t, "09:00", resp.Slots[0].StartTime.String())
	assert.Equal(t, "10:00", resp.Slots[0].EndTime.String())

	last := resp.Slots[len(resp.Slots)-1]
	assert.Equal(t, "22:00", last.StartTime.String())
	assert.Equal(t, "23:00", last.EndTime.String())
}

func TestExecute_BlockedIntervalExcluded(t *testing.T) {
	repo := &fakeScheduleRepo{
		blocking: []*domain.Schedule{
			{ID: 7, RoomID: 1, StartTime: mustTime(t, "18:00"), EndTime: mustTime(t, "19:00")},
		},
	}
	uc := NewUseCase(repo, testCatalog(), nopLogger{})

	resp, err := uc.Execute(context.Background(), request())
	require.NoError(t, err)

	starts := make(map[string]bool)
	for _, s := range resp.Slots {
		starts[s.StartTime.String()] = true
	}

	// Окна, пересекающиеся с [18:00, 19:00), исключены
	assert.False(t, starts["17:30"])
	assert.False(t, starts["18:00"])
	assert.False(t, starts["18:30"])

	// Граничные окна свободны
	assert.True(t, starts["17:00"])
	assert.True(t, starts["19:00"])
}

func TestExecute_UnavailableRoomHasNoSlots(t *testing.T) {
	uc := NewUseCase(&fakeScheduleRepo{}, testCatalog(), nopLogger{})

	req := request()
	req.RoomID = 2

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecute_UnknownReferences(t *testing.T) {
	uc := NewUseCase(&fakeScheduleRepo{}, testCatalog(), nopLogger{})

	req := request()
	req.RoomID = 99
	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrRoomNotFound)

	req = request()
	req.QuestID = 99
	_, err = uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrQuestNotFound)
}
