package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/JMP-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/JMP-BookingService/internal/infra/storage/booking"
	"github.com/m04kA/JMP-BookingService/internal/service/bookings/models"
	"github.com/m04kA/JMP-BookingService/pkg/ptr"
	"github.com/m04kA/JMP-BookingService/pkg/types"
)

type fakeBookingRepo struct {
	bookings map[int64]*domain.Booking
}

func newFakeBookingRepo(bookings ...*domain.Booking) *fakeBookingRepo {
	repo := &fakeBookingRepo{bookings: map[int64]*domain.Booking{}}
	for _, b := range bookings {
		copied := *b
		repo.bookings[b.ID] = &copied
	}
	return repo
}

func (r *fakeBookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	b, ok := r.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	copied := *b
	return &copied, nil
}

func (r *fakeBookingRepo) List(_ context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	var result []*domain.Booking
	for _, b := range r.bookings {
		if filter.Type != nil && b.Type != *filter.Type {
			continue
		}
		if filter.Status != nil && b.BookingStatus != *filter.Status {
			continue
		}
		if !filter.IncludeCancelled && b.BookingStatus == domain.StatusCancelled {
			continue
		}
		copied := *b
		result = append(result, &copied)
	}
	return result, nil
}

func (r *fakeBookingRepo) Count(ctx context.Context, filter domain.BookingsFilter) (int64, error) {
	bookings, _ := r.List(ctx, filter)
	return int64(len(bookings)), nil
}

func (r *fakeBookingRepo) Cancel(_ context.Context, id int64, reason *string) error {
	b, ok := r.bookings[id]
	if !ok || !b.CanBeCancelled() {
		return bookingRepo.ErrBookingNotFound
	}
	b.BookingStatus = domain.StatusCancelled
	b.CancellationReason = reason
	cancelledAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	b.CancelledAt = &cancelledAt
	return nil
}

func (r *fakeBookingRepo) UpdateStatuses(_ context.Context, id int64, bookingStatus *domain.BookingStatus, paymentStatus *domain.PaymentStatus, waiverStatus *domain.WaiverStatus) error {
	b, ok := r.bookings[id]
	if !ok {
		return bookingRepo.ErrBookingNotFound
	}
	if bookingStatus != nil {
		b.BookingStatus = *bookingStatus
	}
	if paymentStatus != nil {
		b.PaymentStatus = *paymentStatus
	}
	if waiverStatus != nil {
		b.WaiverStatus = *waiverStatus
	}
	return nil
}

type nopLogger struct{}

func (l *nopLogger) Info(string, ...interface{})  {}
func (l *nopLogger) Warn(string, ...interface{})  {}
func (l *nopLogger) Error(string, ...interface{}) {}

func sessionBooking(id int64, status domain.BookingStatus) *domain.Booking {
	startTime, _ := types.NewTimeStringFromString("10:00")
	return &domain.Booking{
		ID:              id,
		Reference:       "ref-1",
		Type:            domain.TypeSession,
		Name:            "Rahul Mehta",
		Email:           "rahul@example.com",
		Phone:           "+91 98200 12345",
		Date:            time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
		StartTime:       startTime,
		DurationMinutes: 60,
		Adults:          2,
		Subtotal:        decimal.NewFromInt(1798),
		GST:             decimal.RequireFromString("323.64"),
		TotalAmount:     decimal.RequireFromString("2121.64"),
		BookingStatus:   status,
		PaymentStatus:   domain.PaymentPending,
		WaiverStatus:    domain.WaiverPending,
		CreatedAt:       time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC),
		UpdatedAt:       time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC),
	}
}

func TestGetByID_FormatsDate(t *testing.T) {
	svc := NewService(newFakeBookingRepo(sessionBooking(1, domain.StatusConfirmed)), &nopLogger{})

	resp, err := svc.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "2026-03-15", resp.Date)
	assert.Equal(t, string(domain.StatusConfirmed), resp.BookingStatus)
}

func TestGetByID_NotFound(t *testing.T) {
	svc := NewService(newFakeBookingRepo(), &nopLogger{})

	_, err := svc.GetByID(context.Background(), 42)
	require.ErrorIs(t, err, ErrBookingNotFound)
}

func TestList_ExcludesCancelledByDefault(t *testing.T) {
	repo := newFakeBookingRepo(
		sessionBooking(1, domain.StatusConfirmed),
		sessionBooking(2, domain.StatusCancelled),
	)
	svc := NewService(repo, &nopLogger{})

	resp, err := svc.List(context.Background(), &models.ListBookingsRequest{})
	require.NoError(t, err)
	require.Len(t, resp.Bookings, 1)
	assert.Equal(t, int64(1), resp.Bookings[0].ID)
	assert.Equal(t, uint64(domain.DefaultPageLimit), resp.Limit)
}

func TestList_UnknownStatusFilter(t *testing.T) {
	svc := NewService(newFakeBookingRepo(), &nopLogger{})

	_, err := svc.List(context.Background(), &models.ListBookingsRequest{
		Status: ptr.Ptr("SORT_OF_DONE"),
	})
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestCancel_ConfirmedBooking(t *testing.T) {
	repo := newFakeBookingRepo(sessionBooking(1, domain.StatusConfirmed))
	svc := NewService(repo, &nopLogger{})

	err := svc.Cancel(context.Background(), 1, &models.CancelBookingRequest{
		CancellationReason: ptr.Ptr("rain forecast"),
	})
	require.NoError(t, err)

	resp, err := svc.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusCancelled), resp.BookingStatus)
	require.NotNil(t, resp.CancellationReason)
	assert.Equal(t, "rain forecast", *resp.CancellationReason)
	require.NotNil(t, resp.CancelledAt)
}

func TestCancel_TerminalStatuses(t *testing.T) {
	for _, status := range []domain.BookingStatus{domain.StatusCancelled, domain.StatusCompleted} {
		t.Run(string(status), func(t *testing.T) {
			repo := newFakeBookingRepo(sessionBooking(1, status))
			svc := NewService(repo, &nopLogger{})

			err := svc.Cancel(context.Background(), 1, &models.CancelBookingRequest{})
			require.ErrorIs(t, err, ErrCannotCancel)
		})
	}
}

func TestCancel_NotFound(t *testing.T) {
	svc := NewService(newFakeBookingRepo(), &nopLogger{})

	err := svc.Cancel(context.Background(), 7, &models.CancelBookingRequest{})
	require.ErrorIs(t, err, ErrBookingNotFound)
}

func TestUpdateStatus_ValidTransition(t *testing.T) {
	repo := newFakeBookingRepo(sessionBooking(1, domain.StatusConfirmed))
	svc := NewService(repo, &nopLogger{})

	resp, err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{
		BookingStatus: ptr.Ptr(string(domain.StatusCompleted)),
		PaymentStatus: ptr.Ptr(string(domain.PaymentPaid)),
	})
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusCompleted), resp.BookingStatus)
	assert.Equal(t, string(domain.PaymentPaid), resp.PaymentStatus)
}

func TestUpdateStatus_InvalidTransition(t *testing.T) {
	repo := newFakeBookingRepo(sessionBooking(1, domain.StatusCompleted))
	svc := NewService(repo, &nopLogger{})

	_, err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{
		BookingStatus: ptr.Ptr(string(domain.StatusConfirmed)),
	})
	require.ErrorIs(t, err, ErrInvalidStatusTransition)
}

func TestUpdateStatus_RequiresAtLeastOneStatus(t *testing.T) {
	repo := newFakeBookingRepo(sessionBooking(1, domain.StatusConfirmed))
	svc := NewService(repo, &nopLogger{})

	_, err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{})
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdateStatus_UnknownPaymentStatus(t *testing.T) {
	repo := newFakeBookingRepo(sessionBooking(1, domain.StatusConfirmed))
	svc := NewService(repo, &nopLogger{})

	_, err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{
		PaymentStatus: ptr.Ptr("MAYBE"),
	})
	require.ErrorIs(t, err, ErrInvalidInput)
}
