package payments

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blackrooms/BR-ReservationService/internal/domain"
	"github.com/blackrooms/BR-ReservationService/internal/events"
	bookingStorage "github.com/blackrooms/BR-ReservationService/internal/infra/storage/booking"
	"github.com/blackrooms/BR-ReservationService/internal/service/payments/models"
)

type fakeBookingRepo struct {
	bookings map[int64]*domain.Booking
}

func (f *fakeBookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, bookingStorage.ErrBookingNotFound
	}
	copied := *b
	return &copied, nil
}

func (f *fakeBookingRepo) UpdateStatus(_ context.Context, id int64, status domain.BookingStatus) error {
	f.bookings[id].Status = status
	return nil
}

type fakePaymentRepo struct {
	payments []*domain.Payment
	nextID   int64
}

func (f *fakePaymentRepo) Create(_ context.Context, p *domain.Payment) (*domain.Payment, error) {
	f.nextID++
	created := *p
	created.ID = f.nextID
	created.CreatedAt = time.Now()
	f.payments = append(f.payments, &created)
	return &created, nil
}

func (f *fakePaymentRepo) SumByBookingID(_ context.Context, bookingID int64) (int64, error) {
	var total int64
	for _, p := range f.payments {
		if p.BookingID == bookingID {
			total += p.Amount
		}
	}
	return total, nil
}

func (f *fakePaymentRepo) ListByBookingID(_ context.Context, bookingID int64) ([]*domain.Payment, error) {
	var result []*domain.Payment
	for _, p := range f.payments {
		if p.BookingID == bookingID {
			result = append(result, p)
		}
	}
	return result, nil
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakePublisher struct {
	published []events.BookingEvent
}

func (f *fakePublisher) PublishAsync(event events.BookingEvent) {
	f.published = append(f.published, event)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newFixture(status domain.BookingStatus) (*Service, *fakeBookingRepo, *fakePaymentRepo, *fakePublisher) {
	bookingRepo := &fakeBookingRepo{
		bookings: map[int64]*domain.Booking{
			1: {ID: 1, ClientID: 10, ScheduleID: 5, Status: status, QuestPrice: 2500},
		},
	}
	paymentRepo := &fakePaymentRepo{}
	publisher := &fakePublisher{}
	svc := NewService(bookingRepo, paymentRepo, fakeTxManager{}, publisher, nopLogger{})
	return svc, bookingRepo, paymentRepo, publisher
}

func paymentRequest(amount int64) *models.RecordPaymentRequest {
	return &models.RecordPaymentRequest{
		BookingID: 1,
		Method:    "card",
		Amount:    amount,
		Date:      time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
	}
}

func TestRecordPayment_PartialKeepsConfirmed(t *testing.T) {
	svc, repo, _, publisher := newFixture(domain.StatusConfirmed)

	resp, err := svc.RecordPayment(context.Background(), paymentRequest(1000))
	require.NoError(t, err)

	assert.Equal(t, int64(1000), resp.TotalPaid)
	assert.Equal(t, "confirmed", resp.BookingStatus)
	assert.Equal(t, domain.StatusConfirmed, repo.bookings[1].Status)
	assert.Empty(t, publisher.published)
}

func TestRecordPayment_ThresholdTriggersPaid(t *testing.T) {
	svc, repo, _, publisher := newFixture(domain.StatusConfirmed)

	_, err := svc.RecordPayment(context.Background(), paymentRequest(1000))
	require.NoError(t, err)

	resp, err := svc.RecordPayment(context.Background(), paymentRequest(1500))
	require.NoError(t, err)

	assert.Equal(t, int64(2500), resp.TotalPaid)
	assert.Equal(t, "paid", resp.BookingStatus)
	assert.Equal(t, domain.StatusPaid, repo.bookings[1].Status)

	require.Len(t, publisher.published, 1)
	assert.Equal(t, events.EventBookingPaid, publisher.published[0].Type)
}

func TestRecordPayment_OverpaymentTriggersPaid(t *testing.T) {
	svc, repo, _, _ := newFixture(domain.StatusConfirmed)

	resp, err := svc.RecordPayment(context.Background(), paymentRequest(3000))
	require.NoError(t, err)

	assert.Equal(t, "paid", resp.BookingStatus)
	assert.Equal(t, domain.StatusPaid, repo.bookings[1].Status)
}

func TestRecordPayment_PaidBookingStaysPaid(t *testing.T) {
	// Доплата к уже оплаченному бронированию допустима и не меняет статус
	svc, repo, _, publisher := newFixture(domain.StatusPaid)

	resp, err := svc.RecordPayment(context.Background(), paymentRequest(500))
	require.NoError(t, err)

	assert.Equal(t, "paid", resp.BookingStatus)
	assert.Equal(t, domain.StatusPaid, repo.bookings[1].Status)
	assert.Empty(t, publisher.published)
}

func TestRecordPayment_WrongStatus(t *testing.T) {
	for _, status := range []domain.BookingStatus{
		domain.StatusRequested, domain.StatusCompleted, domain.StatusCancelled,
	} {
		t.Run(string(status), func(t *testing.T) {
			svc, _, paymentRepo, _ := newFixture(status)

			_, err := svc.RecordPayment(context.Background(), paymentRequest(1000))
			assert.ErrorIs(t, err, ErrPaymentNotAllowed)
			assert.Empty(t, paymentRepo.payments)
		})
	}
}

func TestRecordPayment_BookingNotFound(t *testing.T) {
	svc, _, _, _ := newFixture(domain.StatusConfirmed)

	req := paymentRequest(1000)
	req.BookingID = 99

	_, err := svc.RecordPayment(context.Background(), req)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestListByBooking(t *testing.T) {
	svc, _, _, _ := newFixture(domain.StatusConfirmed)

	_, err := svc.RecordPayment(context.Background(), paymentRequest(1000))
	require.NoError(t, err)
	_, err = svc.RecordPayment(context.Background(), paymentRequest(700))
	require.NoError(t, err)

	resp, err := svc.ListByBooking(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.BookingID)
	assert.Equal(t, int64(2500), resp.QuestPrice)
	assert.Equal(t, int64(1700), resp.TotalPaid)
	assert.Equal(t, "confirmed", resp.BookingStatus)

	require.Len(t, resp.Payments, 2)
	assert.Equal(t, int64(1000), resp.Payments[0].Amount)
	assert.Equal(t, int64(700), resp.Payments[1].Amount)
}

func TestListByBooking_Empty(t *testing.T) {
	svc, _, _, _ := newFixture(domain.StatusConfirmed)

	resp, err := svc.ListByBooking(context.Background(), 1)
	require.NoError(t, err)

	assert.Zero(t, resp.TotalPaid)
	assert.Empty(t, resp.Payments)
}

func TestListByBooking_BookingNotFound(t *testing.T) {
	svc, _, _, _ := newFixture(domain.StatusConfirmed)

	_, err := svc.ListByBooking(context.Background(), 99)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestRecordPayment_Validation(t *testing.T) {
	svc, _, _, _ := newFixture(domain.StatusConfirmed)

	_, err := svc.RecordPayment(context.Background(), paymentRequest(0))
	assert.ErrorIs(t, err, ErrInvalidInput)

	req := paymentRequest(1000)
	req.Method = ""
	_, err = svc.RecordPayment(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)

	req = paymentRequest(1000)
	req.Date = time.Time{}
	_, err = svc.RecordPayment(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
