package create_party_booking

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/JMP-BookingService/internal/domain"
	"github.com/m04kA/JMP-BookingService/internal/pricing"
	"github.com/m04kA/JMP-BookingService/pkg/types"
)

type fakeBookingRepo struct {
	created []*domain.Booking
}

func (r *fakeBookingRepo) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	stored := *booking
	stored.ID = int64(len(r.created) + 1)
	stored.CreatedAt = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	stored.UpdatedAt = stored.CreatedAt
	r.created = append(r.created, &stored)
	return &stored, nil
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

type nopLogger struct{}

func (l *nopLogger) Info(string, ...interface{})  {}
func (l *nopLogger) Warn(string, ...interface{})  {}
func (l *nopLogger) Error(string, ...interface{}) {}

func newTestUseCase(bookingRepo *fakeBookingRepo) *UseCase {
	uc := NewUseCase(bookingRepo, pricing.NewEngine(), &nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)}
	return uc
}

func validRequest() *Request {
	startTime, _ := types.NewTimeStringFromString("14:00")
	return &Request{
		Name:         "Priya Sharma",
		Email:        "priya@example.com",
		Phone:        "+91 98100 45678",
		Date:         time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC),
		StartTime:    startTime,
		Participants: 8,
		Spectators:   12,
	}
}

func TestExecute_CreatesPartyBooking(t *testing.T) {
	bookingRepo := &fakeBookingRepo{}
	uc := newTestUseCase(bookingRepo)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	// 8*1500 + 2 платных зрителя * 100 = 12200; GST 18% = 2196; депозит 50%
	assert.True(t, decimal.NewFromInt(12200).Equal(resp.Subtotal), "subtotal: %s", resp.Subtotal)
	assert.True(t, decimal.NewFromInt(2196).Equal(resp.GST), "gst: %s", resp.GST)
	assert.True(t, decimal.NewFromInt(14396).Equal(resp.TotalAmount), "total: %s", resp.TotalAmount)
	assert.True(t, decimal.NewFromInt(7198).Equal(resp.DepositAmount), "deposit: %s", resp.DepositAmount)

	assert.Equal(t, string(domain.TypeParty), resp.Type)
	assert.Equal(t, string(domain.StatusPending), resp.BookingStatus)
	assert.Equal(t, domain.PartyDurationMinutes, resp.DurationMinutes)
	assert.NotEmpty(t, resp.Reference)
	require.NotNil(t, resp.QRPayload)

	require.Len(t, bookingRepo.created, 1)
	stored := bookingRepo.created[0]
	require.NotNil(t, stored.DepositAmount)
	assert.True(t, decimal.NewFromInt(7198).Equal(*stored.DepositAmount))
	assert.Equal(t, 8, stored.Adults)
}

func TestExecute_FreeSpectatorsNotCharged(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{})

	req := validRequest()
	req.Spectators = 10

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	// Первые 10 зрителей бесплатны: 8*1500 = 12000
	assert.True(t, decimal.NewFromInt(12000).Equal(resp.Subtotal), "subtotal: %s", resp.Subtotal)
}

func TestExecute_Validation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(req *Request)
		wantErr error
	}{
		{
			name:    "no participants",
			mutate:  func(req *Request) { req.Participants = 0 },
			wantErr: ErrInvalidInput,
		},
		{
			name:    "negative spectators",
			mutate:  func(req *Request) { req.Spectators = -1 },
			wantErr: ErrInvalidInput,
		},
		{
			name:    "empty name",
			mutate:  func(req *Request) { req.Name = "" },
			wantErr: ErrInvalidInput,
		},
		{
			name: "date in the past",
			mutate: func(req *Request) {
				req.Date = time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
			},
			wantErr: ErrInvalidDate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := newTestUseCase(&fakeBookingRepo{})

			req := validRequest()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}
