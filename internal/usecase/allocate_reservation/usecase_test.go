package allocate_reservation

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blackrooms/BR-ReservationService/internal/domain"
	catalogService "github.com/blackrooms/BR-ReservationService/internal/service/catalog"
	"github.com/blackrooms/BR-ReservationService/pkg/txmanager"
	"github.com/blackrooms/BR-ReservationService/pkg/types"
)

type fakeScheduleRepo struct {
	blocking []*domain.Schedule
	created  []*domain.Schedule
	nextID   int64
}

func (f *fakeScheduleRepo) Create(_ context.Context, s *domain.Schedule) (*domain.Schedule, error) {
	f.nextID++
	created := *s
	created.ID = f.nextID
	created.CreatedAt = time.Now()
	f.created = append(f.created, &created)
	return &created, nil
}

func (f *fakeScheduleRepo) ListBlockingForRoomDate(_ context.Context, _ int64, _ time.Time) ([]*domain.Schedule, error) {
	return f.blocking, nil
}

type fakeBookingRepo struct {
	created []*domain.Booking
	nextID  int64
}

func (f *fakeBookingRepo) Create(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
	f.nextID++
	created := *b
	created.ID = f.nextID
	created.CreatedAt = time.Now()
	f.created = append(f.created, &created)
	return &created, nil
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

type fakeTxManager struct {
	err error
}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	if f.err != nil {
		return f.err
	}
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
			1: {ID: 1, Title: "Бункер", Capacity: 5, IsAvailable: true},
			2: {ID: 2, Title: "Подвал", Capacity: 3, IsAvailable: false},
		},
		quests: map[int64]*domain.Quest{
			1: {ID: 1, Title: "Побег", DurationMinutes: 60, Price: 2500},
		},
	}
}

func validRequest(t *testing.T) *Request {
	return &Request{
		QuestID:           1,
		RoomID:            1,
		ClientID:          10,
		EmployeeID:        20,
		Date:              time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
		StartTime:         mustTime(t, "18:00"),
		ParticipantsCount: 4,
	}
}

func TestExecute_Success(t *testing.T) {
	scheduleRepo := &fakeScheduleRepo{}
	bookingRepo := &fakeBookingRepo{}
	uc := NewUseCase(scheduleRepo, bookingRepo, testCatalog(), &fakeTxManager{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), validRequest(t))
	require.NoError(t, err)

	assert.Equal(t, "requested", resp.Status)
	assert.Equal(t, mustTime(t, "18:00"), resp.StartTime)
	assert.Equal(t, mustTime(t, "19:00"), resp.EndTime)
	assert.Equal(t, "Побег", resp.QuestTitle)
	assert.Equal(t, int64(2500), resp.QuestPrice)

	require.Len(t, scheduleRepo.created, 1)
	require.Len(t, bookingRepo.created, 1)
	assert.Equal(t, scheduleRepo.created[0].ID, bookingRepo.created[0].ScheduleID)
}

func TestExecute_SlotConflict(t *testing.T) {
	scheduleRepo := &fakeScheduleRepo{
		blocking: []*domain.Schedule{
			{ID: 7, RoomID: 1, StartTime: mustTime(t, "18:00"), EndTime: mustTime(t, "19:00")},
		},
	}
	uc := NewUseCase(scheduleRepo, &fakeBookingRepo{}, testCatalog(), &fakeTxManager{}, nopLogger{})

	req := validRequest(t)
	req.StartTime = mustTime(t, "18:30")

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrSlotConflict)
	assert.Empty(t, scheduleRepo.created)
}

func TestExecute_BoundaryAdjacentSucceeds(t *testing.T) {
	// Слот [18:00, 19:00) занят, начало ровно в 19:00 не конфликтует
	scheduleRepo := &fakeScheduleRepo{
		blocking: []*domain.Schedule{
			{ID: 7, RoomID: 1, StartTime: mustTime(t, "18:00"), EndTime: mustTime(t, "19:00")},
		},
	}
	uc := NewUseCase(scheduleRepo, &fakeBookingRepo{}, testCatalog(), &fakeTxManager{}, nopLogger{})

	req := validRequest(t)
	req.StartTime = mustTime(t, "19:00")

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, mustTime(t, "20:00"), resp.EndTime)
}

func TestExecute_CapacityExceeded(t *testing.T) {
	uc := NewUseCase(&fakeScheduleRepo{}, &fakeBookingRepo{}, testCatalog(), &fakeTxManager{}, nopLogger{})

	req := validRequest(t)
	req.ParticipantsCount = 6

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrCapacityExceeded)
}

func TestExecute_RoomUnavailable(t *testing.T) {
	uc := NewUseCase(&fakeScheduleRepo{}, &fakeBookingRepo{}, testCatalog(), &fakeTxManager{}, nopLogger{})

	req := validRequest(t)
	req.RoomID = 2
	req.ParticipantsCount = 2

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrRoomUnavailable)
}

func TestExecute_UnknownReferences(t *testing.T) {
	uc := NewUseCase(&fakeScheduleRepo{}, &fakeBookingRepo{}, testCatalog(), &fakeTxManager{}, nopLogger{})

	req := validRequest(t)
	req.QuestID = 99
	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrQuestNotFound)

	req = validRequest(t)
	req.RoomID = 99
	_, err = uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := NewUseCase(&fakeScheduleRepo{}, &fakeBookingRepo{}, testCatalog(), &fakeTxManager{}, nopLogger{})

	req := validRequest(t)
	req.ParticipantsCount = 0
	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)

	req = validRequest(t)
	req.ClientID = 0
	_, err = uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_SlotDoesNotFitIntoDay(t *testing.T) {
	uc := NewUseCase(&fakeScheduleRepo{}, &fakeBookingRepo{}, testCatalog(), &fakeTxManager{}, nopLogger{})

	req := validRequest(t)
	req.StartTime = mustTime(t, "23:30")

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_BusyOnRetriesExceeded(t *testing.T) {
	txMgr := &fakeTxManager{
		err: fmt.Errorf("%w: after 3 attempts", txmanager.ErrRetriesExceeded),
	}
	uc := NewUseCase(&fakeScheduleRepo{}, &fakeBookingRepo{}, testCatalog(), txMgr, nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest(t))
	assert.ErrorIs(t, err, ErrBusy)
}

// serialTxManager выполняет транзакции строго по одной,
// как сериализуемые транзакции поверх одной комнаты и даты
type serialTxManager struct {
	mu sync.Mutex
}

func (m *serialTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return fn(ctx)
}

// committingScheduleRepo после создания слота сразу отдает его
// следующим транзакциям как блокирующий
type committingScheduleRepo struct {
	fakeScheduleRepo
}

func (f *committingScheduleRepo) Create(ctx context.Context, s *domain.Schedule) (*domain.Schedule, error) {
	created, err := f.fakeScheduleRepo.Create(ctx, s)
	if err != nil {
		return nil, err
	}
	f.blocking = append(f.blocking, created)
	return created, nil
}

func TestExecute_ConcurrentAllocationsSingleWinner(t *testing.T) {
	const parallel = 8

	scheduleRepo := &committingScheduleRepo{}
	bookingRepo := &fakeBookingRepo{}
	uc := NewUseCase(scheduleRepo, bookingRepo, testCatalog(), &serialTxManager{}, nopLogger{})

	start := mustTime(t, "18:00")
	date := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	errs := make(chan error, parallel)

	var wg sync.WaitGroup
	for i := 0; i < parallel; i++ {
		wg.Add(1)
		go func(clientID int64) {
			defer wg.Done()
			_, err := uc.Execute(context.Background(), &Request{
				QuestID:           1,
				RoomID:            1,
				ClientID:          clientID,
				EmployeeID:        20,
				Date:              date,
				StartTime:         start,
				ParticipantsCount: 4,
			})
			errs <- err
		}(int64(10 + i))
	}
	wg.Wait()
	close(errs)

	var succeeded, conflicted int
	for err := range errs {
		switch {
		case err == nil:
			succeeded++
		case errors.Is(err, ErrSlotConflict):
			conflicted++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}

	assert.Equal(t, 1, succeeded)
	assert.Equal(t, parallel-1, conflicted)
	require.Len(t, bookingRepo.created, 1)
	require.Len(t, scheduleRepo.created, 1)
}
