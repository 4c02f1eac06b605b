package create_schedule

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
	nextID   int64
}

func (f *fakeScheduleRepo) Create(_ context.Context, s *domain.Schedule) (*domain.Schedule, error) {
	f.nextID++
	created := *s
	created.ID = f.nextID
	created.CreatedAt = time.Now()
	f.blocking = append(f.blocking, &created)
	return &created, nil
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

func testCatalog() *fakeCatalog {
	return &fakeCatalog{
		rooms: map[int64]*domain.Room{
			1: {ID: 1, Capacity: 5, IsAvailable: true},
			2: {ID: 2, Capacity: 3, IsAvailable: false},
		},
		quests: map[int64]*domain.Quest{
			1: {ID: 1, Title: "Побег", DurationMinutes: 60, Price: 2500},
		},
	}
}

func request(t *testing.T, start string) *Request {
	return &Request{
		QuestID:   1,
		RoomID:    1,
		Date:      time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
		StartTime: mustTime(t, start),
	}
}

func TestExecute_Success(t *testing.T) {
	repo := &fakeScheduleRepo{}
	uc := NewUseCase(repo, testCatalog(), fakeTxManager{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), request(t, "18:00"))
	require.NoError(t, err)

	assert.Equal(t, mustTime(t, "18:00"), resp.StartTime)
	assert.Equal(t, mustTime(t, "19:00"), resp.EndTime)
	require.Len(t, repo.blocking, 1)
}

func TestExecute_SlotConflict(t *testing.T) {
	repo := &fakeScheduleRepo{
		blocking: []*domain.Schedule{
			{ID: 7, RoomID: 1, StartTime: mustTime(t, "18:00"), EndTime: mustTime(t, "19:00")},
		},
	}
	uc := NewUseCase(repo, testCatalog(), fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), request(t, "18:30"))
	assert.ErrorIs(t, err, ErrSlotConflict)
}

func TestExecute_BoundaryAdjacentSucceeds(t *testing.T) {
	repo := &fakeScheduleRepo{
		blocking: []*domain.Schedule{
			{ID: 7, RoomID: 1, StartTime: mustTime(t, "18:00"), EndTime: mustTime(t, "19:00")},
		},
	}
	uc := NewUseCase(repo, testCatalog(), fakeTxManager{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), request(t, "19:00"))
	require.NoError(t, err)
	assert.Equal(t, mustTime(t, "20:00"), resp.EndTime)
}

func TestExecute_RoomUnavailable(t *testing.T) {
	uc := NewUseCase(&fakeScheduleRepo{}, testCatalog(), fakeTxManager{}, nopLogger{})

	req := request(t, "18:00")
	req.RoomID = 2

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrRoomUnavailable)
}

func TestExecute_UnknownReferences(t *testing.T) {
	uc := NewUseCase(&fakeScheduleRepo{}, testCatalog(), fakeTxManager{}, nopLogger{})

	req := request(t, "18:00")
	req.QuestID = 99
	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrQuestNotFound)

	req = request(t, "18:00")
	req.RoomID = 99
	_, err = uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestExecute_SlotDoesNotFitIntoDay(t *testing.T) {
	uc := NewUseCase(&fakeScheduleRepo{}, testCatalog(), fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), request(t, "23:30"))
	assert.ErrorIs(t, err, ErrInvalidInput)
}
