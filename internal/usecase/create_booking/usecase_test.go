package create_booking

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/JMP-BookingService/internal/domain"
	voucherRepo "github.com/m04kA/JMP-BookingService/internal/infra/storage/voucher"
	"github.com/m04kA/JMP-BookingService/internal/pricing"
	"github.com/m04kA/JMP-BookingService/pkg/ptr"
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

type fakeVoucherRepo struct {
	vouchers     map[string]*domain.Voucher
	redeemFail   bool
	redeemCalled int
}

func (r *fakeVoucherRepo) GetByCode(_ context.Context, code string) (*domain.Voucher, error) {
	v, ok := r.vouchers[code]
	if !ok {
		return nil, voucherRepo.ErrVoucherNotFound
	}
	copied := *v
	return &copied, nil
}

func (r *fakeVoucherRepo) RedeemIfEligible(_ context.Context, code string, _ time.Time) error {
	r.redeemCalled++
	if r.redeemFail {
		return voucherRepo.ErrNotEligible
	}
	if _, ok := r.vouchers[code]; !ok {
		return voucherRepo.ErrNotEligible
	}
	return nil
}

type fakeRatesProvider struct{}

func (p *fakeRatesProvider) Current(_ context.Context) (domain.PricingRates, bool, error) {
	return domain.DefaultPricingRates(), true, nil
}

type fakeTxManager struct{}

func (m *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
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

func newTestUseCase(bookingRepo *fakeBookingRepo, vouchers *fakeVoucherRepo) *UseCase {
	uc := NewUseCase(
		bookingRepo,
		vouchers,
		&fakeRatesProvider{},
		pricing.NewEngine(),
		&fakeTxManager{},
		&nopLogger{},
	)
	uc.timeProvider = &fixedTimeProvider{now: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)}
	return uc
}

func validRequest() *Request {
	startTime, _ := types.NewTimeStringFromString("10:00")
	return &Request{
		Name:            "Rahul Mehta",
		Email:           "Rahul.Mehta@Example.com",
		Phone:           "+91 98200 12345",
		Date:            time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
		StartTime:       startTime,
		DurationMinutes: 60,
		Adults:          2,
		Kids:            1,
		Spectators:      2,
	}
}

func TestExecute_CreatesSessionBooking(t *testing.T) {
	bookingRepo := &fakeBookingRepo{}
	uc := newTestUseCase(bookingRepo, &fakeVoucherRepo{})

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	// 2*899 + 1*500 + 2*150 = 2598; GST 18% = 467.64
	assert.True(t, decimal.NewFromInt(2598).Equal(resp.Subtotal), "subtotal: %s", resp.Subtotal)
	assert.True(t, decimal.RequireFromString("467.64").Equal(resp.GST), "gst: %s", resp.GST)
	assert.True(t, decimal.RequireFromString("3065.64").Equal(resp.TotalAmount), "total: %s", resp.TotalAmount)

	assert.Equal(t, string(domain.TypeSession), resp.Type)
	assert.Equal(t, string(domain.StatusConfirmed), resp.BookingStatus)
	assert.Equal(t, string(domain.PaymentPending), resp.PaymentStatus)
	assert.Equal(t, "rahul.mehta@example.com", resp.Email)
	assert.NotEmpty(t, resp.Reference)
	require.NotNil(t, resp.QRPayload)
	assert.Contains(t, *resp.QRPayload, resp.Reference)

	require.Len(t, bookingRepo.created, 1)
}

func TestExecute_AppliesVoucherAndRedeems(t *testing.T) {
	bookingRepo := &fakeBookingRepo{}
	vouchers := &fakeVoucherRepo{vouchers: map[string]*domain.Voucher{
		"WELCOME10": {
			ID:            1,
			Code:          "WELCOME10",
			IsActive:      true,
			DiscountType:  domain.DiscountPercentage,
			DiscountValue: decimal.NewFromInt(10),
		},
	}}
	uc := newTestUseCase(bookingRepo, vouchers)

	req := validRequest()
	req.VoucherCode = ptr.Ptr("welcome10")

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	// 10% от subtotal 2598 = 259.80
	assert.True(t, decimal.RequireFromString("259.8").Equal(resp.DiscountAmount), "discount: %s", resp.DiscountAmount)
	assert.True(t, decimal.RequireFromString("2805.84").Equal(resp.TotalAmount), "total: %s", resp.TotalAmount)
	require.NotNil(t, resp.VoucherCode)
	assert.Equal(t, "WELCOME10", *resp.VoucherCode)
	assert.Nil(t, resp.VoucherRejectionReason)
	assert.Equal(t, 1, vouchers.redeemCalled)
}

func TestExecute_RejectedVoucherStillBooks(t *testing.T) {
	bookingRepo := &fakeBookingRepo{}
	vouchers := &fakeVoucherRepo{vouchers: map[string]*domain.Voucher{}}
	uc := newTestUseCase(bookingRepo, vouchers)

	req := validRequest()
	req.VoucherCode = ptr.Ptr("MISSING")

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.True(t, resp.DiscountAmount.IsZero())
	assert.Nil(t, resp.VoucherCode)
	require.NotNil(t, resp.VoucherRejectionReason)
	assert.Equal(t, "NOT_FOUND", *resp.VoucherRejectionReason)
	assert.Equal(t, 0, vouchers.redeemCalled, "rejected voucher must not be redeemed")
	require.Len(t, bookingRepo.created, 1)
}

func TestExecute_VoucherNoLongerEligibleAtCommit(t *testing.T) {
	bookingRepo := &fakeBookingRepo{}
	vouchers := &fakeVoucherRepo{
		vouchers: map[string]*domain.Voucher{
			"LAST1": {
				ID:            2,
				Code:          "LAST1",
				IsActive:      true,
				DiscountType:  domain.DiscountFixed,
				DiscountValue: decimal.NewFromInt(100),
			},
		},
		redeemFail: true,
	}
	uc := newTestUseCase(bookingRepo, vouchers)

	req := validRequest()
	req.VoucherCode = ptr.Ptr("LAST1")

	_, err := uc.Execute(context.Background(), req)
	require.ErrorIs(t, err, ErrVoucherNoLongerEligible)
	assert.Equal(t, 1, vouchers.redeemCalled)
}

func TestExecute_Validation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(req *Request)
		wantErr error
	}{
		{
			name:    "empty name",
			mutate:  func(req *Request) { req.Name = "  " },
			wantErr: ErrInvalidInput,
		},
		{
			name:    "invalid email",
			mutate:  func(req *Request) { req.Email = "not-an-email" },
			wantErr: ErrInvalidInput,
		},
		{
			name:    "empty phone",
			mutate:  func(req *Request) { req.Phone = "" },
			wantErr: ErrInvalidInput,
		},
		{
			name:    "unrecognized duration",
			mutate:  func(req *Request) { req.DurationMinutes = 90 },
			wantErr: ErrInvalidInput,
		},
		{
			name: "spectators only",
			mutate: func(req *Request) {
				req.Adults = 0
				req.Kids = 0
				req.Spectators = 3
			},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "negative kids",
			mutate:  func(req *Request) { req.Kids = -1 },
			wantErr: ErrInvalidInput,
		},
		{
			name: "date in the past",
			mutate: func(req *Request) {
				req.Date = time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC)
			},
			wantErr: ErrInvalidDate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := newTestUseCase(&fakeBookingRepo{}, &fakeVoucherRepo{})

			req := validRequest()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}
