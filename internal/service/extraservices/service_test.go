package extraservices

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blackrooms/BR-ReservationService/internal/domain"
	bookingStorage "github.com/blackrooms/BR-ReservationService/internal/infra/storage/booking"
	serviceStorage "github.com/blackrooms/BR-ReservationService/internal/infra/storage/extraservice"
	"github.com/blackrooms/BR-ReservationService/internal/service/extraservices/models"
	"github.com/blackrooms/BR-ReservationService/pkg/ptr"
	"github.com/blackrooms/BR-ReservationService/pkg/txmanager"
)

type fakeServiceRepo struct {
	services map[int64]*domain.ExtraService
	nextID   int64
}

func (f *fakeServiceRepo) Create(_ context.Context, s *domain.ExtraService) (*domain.ExtraService, error) {
	f.nextID++
	created := *s
	created.ID = f.nextID
	created.CreatedAt = time.Now()
	created.UpdatedAt = created.CreatedAt
	f.services[created.ID] = &created
	return &created, nil
}

func (f *fakeServiceRepo) GetByID(_ context.Context, id int64) (*domain.ExtraService, error) {
	s, ok := f.services[id]
	if !ok {
		return nil, serviceStorage.ErrServiceNotFound
	}
	copied := *s
	return &copied, nil
}

func (f *fakeServiceRepo) Update(_ context.Context, s *domain.ExtraService) error {
	copied := *s
	f.services[s.ID] = &copied
	return nil
}

type fakeBookingRepo struct {
	bookings map[int64]*domain.Booking
}

func (f *fakeBookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, bookingStorage.ErrBookingNotFound
	}
	return b, nil
}

type fakeTxManager struct {
	err   error
	calls int
}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	if f.err != nil {
		return f.err
	}
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newFixture() (*Service, *fakeServiceRepo, *fakeTxManager) {
	serviceRepo := &fakeServiceRepo{services: map[int64]*domain.ExtraService{}}
	bookingRepo := &fakeBookingRepo{
		bookings: map[int64]*domain.Booking{
			1: {ID: 1, Status: domain.StatusConfirmed},
			2: {ID: 2, Status: domain.StatusCompleted},
			3: {ID: 3, Status: domain.StatusCancelled},
		},
	}
	txMgr := &fakeTxManager{}
	return NewService(serviceRepo, bookingRepo, txMgr, nopLogger{}), serviceRepo, txMgr
}

func TestCreate_Unattached(t *testing.T) {
	svc, _, _ := newFixture()

	resp, err := svc.Create(context.Background(), &models.CreateServiceRequest{
		Title:       "Фотосессия",
		Description: "30 минут после игры",
		Price:       1500,
	})
	require.NoError(t, err)

	assert.Equal(t, "Фотосессия", resp.Title)
	assert.Nil(t, resp.BookingID)
}

func TestCreate_AttachedToActiveBooking(t *testing.T) {
	svc, _, _ := newFixture()

	resp, err := svc.Create(context.Background(), &models.CreateServiceRequest{
		Title:     "Видеосъемка",
		Price:     2000,
		BookingID: ptr.Ptr(int64(1)),
	})
	require.NoError(t, err)

	require.NotNil(t, resp.BookingID)
	assert.Equal(t, int64(1), *resp.BookingID)
}

func TestCreate_TerminalBookingRejected(t *testing.T) {
	svc, _, _ := newFixture()

	for _, bookingID := range []int64{2, 3} {
		_, err := svc.Create(context.Background(), &models.CreateServiceRequest{
			Title:     "Фотосессия",
			Price:     1500,
			BookingID: ptr.Ptr(bookingID),
		})
		assert.ErrorIs(t, err, ErrBookingTerminal)
	}
}

func TestCreate_BookingNotFound(t *testing.T) {
	svc, _, _ := newFixture()

	_, err := svc.Create(context.Background(), &models.CreateServiceRequest{
		Title:     "Фотосессия",
		Price:     1500,
		BookingID: ptr.Ptr(int64(99)),
	})
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestCreate_Validation(t *testing.T) {
	svc, _, _ := newFixture()

	_, err := svc.Create(context.Background(), &models.CreateServiceRequest{Price: 100})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Create(context.Background(), &models.CreateServiceRequest{Title: "x", Price: -1})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdate_AttachLater(t *testing.T) {
	svc, repo, _ := newFixture()

	created, err := svc.Create(context.Background(), &models.CreateServiceRequest{
		Title: "Фотосессия",
		Price: 1500,
	})
	require.NoError(t, err)

	resp, err := svc.Update(context.Background(), created.ID, &models.UpdateServiceRequest{
		BookingID:    ptr.Ptr(int64(1)),
		SetBookingID: true,
	})
	require.NoError(t, err)

	require.NotNil(t, resp.BookingID)
	assert.Equal(t, int64(1), *resp.BookingID)
	require.NotNil(t, repo.services[created.ID].BookingID)
}

func TestUpdate_Detach(t *testing.T) {
	svc, repo, _ := newFixture()

	created, err := svc.Create(context.Background(), &models.CreateServiceRequest{
		Title:     "Фотосессия",
		Price:     1500,
		BookingID: ptr.Ptr(int64(1)),
	})
	require.NoError(t, err)

	resp, err := svc.Update(context.Background(), created.ID, &models.UpdateServiceRequest{
		SetBookingID: true,
	})
	require.NoError(t, err)

	assert.Nil(t, resp.BookingID)
	assert.Nil(t, repo.services[created.ID].BookingID)
}

func TestUpdate_AttachToTerminalRejected(t *testing.T) {
	svc, _, _ := newFixture()

	created, err := svc.Create(context.Background(), &models.CreateServiceRequest{
		Title: "Фотосессия",
		Price: 1500,
	})
	require.NoError(t, err)

	_, err = svc.Update(context.Background(), created.ID, &models.UpdateServiceRequest{
		BookingID:    ptr.Ptr(int64(2)),
		SetBookingID: true,
	})
	assert.ErrorIs(t, err, ErrBookingTerminal)
}

func TestUpdate_FieldsWithoutTouchingBinding(t *testing.T) {
	svc, _, _ := newFixture()

	created, err := svc.Create(context.Background(), &models.CreateServiceRequest{
		Title:     "Фотосессия",
		Price:     1500,
		BookingID: ptr.Ptr(int64(1)),
	})
	require.NoError(t, err)

	resp, err := svc.Update(context.Background(), created.ID, &models.UpdateServiceRequest{
		Price: ptr.Ptr(int64(1800)),
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1800), resp.Price)
	require.NotNil(t, resp.BookingID)
	assert.Equal(t, int64(1), *resp.BookingID)
}

func TestUpdate_ServiceNotFound(t *testing.T) {
	svc, _, _ := newFixture()

	_, err := svc.Update(context.Background(), 99, &models.UpdateServiceRequest{
		Price: ptr.Ptr(int64(100)),
	})
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestAttachRunsInTransaction(t *testing.T) {
	// Проверка статуса бронирования и запись идут одной транзакцией:
	// бронирование не может стать терминальным между проверкой и привязкой
	svc, _, txMgr := newFixture()

	created, err := svc.Create(context.Background(), &models.CreateServiceRequest{
		Title:     "Фотосессия",
		Price:     1500,
		BookingID: ptr.Ptr(int64(1)),
	})
	require.NoError(t, err)
	assert.Equal(t, 1, txMgr.calls)

	_, err = svc.Update(context.Background(), created.ID, &models.UpdateServiceRequest{
		BookingID:    ptr.Ptr(int64(1)),
		SetBookingID: true,
	})
	require.NoError(t, err)
	assert.Equal(t, 2, txMgr.calls)
}

func TestBusyOnContention(t *testing.T) {
	svc, _, txMgr := newFixture()
	txMgr.err = fmt.Errorf("%w: after 3 attempts", txmanager.ErrRetriesExceeded)

	_, err := svc.Create(context.Background(), &models.CreateServiceRequest{
		Title: "Фотосессия",
		Price: 1500,
	})
	assert.ErrorIs(t, err, ErrBusy)

	_, err = svc.Update(context.Background(), 1, &models.UpdateServiceRequest{
		Price: ptr.Ptr(int64(100)),
	})
	assert.ErrorIs(t, err, ErrBusy)
}
