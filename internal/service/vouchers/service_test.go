package vouchers

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
	"github.com/m04kA/JMP-BookingService/internal/service/vouchers/models"
	"github.com/m04kA/JMP-BookingService/pkg/ptr"
)

type fakeVoucherRepo struct {
	vouchers map[string]*domain.Voucher
	nextID   int64
}

func newFakeVoucherRepo() *fakeVoucherRepo {
	return &fakeVoucherRepo{vouchers: map[string]*domain.Voucher{}}
}

func (r *fakeVoucherRepo) Create(_ context.Context, voucher *domain.Voucher) (*domain.Voucher, error) {
	if _, ok := r.vouchers[voucher.Code]; ok {
		return nil, voucherRepo.ErrCodeAlreadyExists
	}
	r.nextID++
	stored := *voucher
	stored.ID = r.nextID
	stored.CreatedAt = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	stored.UpdatedAt = stored.CreatedAt
	r.vouchers[stored.Code] = &stored
	copied := stored
	return &copied, nil
}

func (r *fakeVoucherRepo) GetByCode(_ context.Context, code string) (*domain.Voucher, error) {
	v, ok := r.vouchers[domain.NormalizeVoucherCode(code)]
	if !ok {
		return nil, voucherRepo.ErrVoucherNotFound
	}
	copied := *v
	return &copied, nil
}

func (r *fakeVoucherRepo) List(_ context.Context, isActive *bool, limit, offset uint64) ([]*domain.Voucher, error) {
	var result []*domain.Voucher
	for _, v := range r.vouchers {
		if isActive != nil && v.IsActive != *isActive {
			continue
		}
		copied := *v
		result = append(result, &copied)
	}
	return result, nil
}

func (r *fakeVoucherRepo) Count(_ context.Context, isActive *bool) (int64, error) {
	vouchers, _ := r.List(context.Background(), isActive, 0, 0)
	return int64(len(vouchers)), nil
}

func (r *fakeVoucherRepo) Update(_ context.Context, code string, update voucherRepo.VoucherUpdate) (*domain.Voucher, error) {
	v, ok := r.vouchers[domain.NormalizeVoucherCode(code)]
	if !ok {
		return nil, voucherRepo.ErrVoucherNotFound
	}
	if update.IsActive != nil {
		v.IsActive = *update.IsActive
	}
	if update.DiscountType != nil {
		v.DiscountType = *update.DiscountType
	}
	if update.DiscountValue != nil {
		v.DiscountValue = *update.DiscountValue
	}
	copied := *v
	return &copied, nil
}

func (r *fakeVoucherRepo) Delete(_ context.Context, code string) error {
	normalized := domain.NormalizeVoucherCode(code)
	if _, ok := r.vouchers[normalized]; !ok {
		return voucherRepo.ErrVoucherNotFound
	}
	delete(r.vouchers, normalized)
	return nil
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

func newTestService(repo *fakeVoucherRepo) *Service {
	svc := NewService(repo, pricing.NewEngine(), &nopLogger{})
	svc.timeProvider = &fixedTimeProvider{now: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
	return svc
}

func TestCreate_NormalizesCode(t *testing.T) {
	svc := newTestService(newFakeVoucherRepo())

	resp, err := svc.Create(context.Background(), &models.CreateVoucherRequest{
		Code:          "  summer20 ",
		DiscountType:  "PERCENTAGE",
		DiscountValue: decimal.NewFromInt(20),
	})
	require.NoError(t, err)
	assert.Equal(t, "SUMMER20", resp.Code)
	assert.True(t, resp.IsActive)
}

func TestCreate_DuplicateCode(t *testing.T) {
	repo := newFakeVoucherRepo()
	svc := newTestService(repo)

	req := &models.CreateVoucherRequest{
		Code:          "REPEAT",
		DiscountType:  "FIXED",
		DiscountValue: decimal.NewFromInt(100),
	}

	_, err := svc.Create(context.Background(), req)
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), req)
	require.ErrorIs(t, err, ErrCodeAlreadyExists)
}

func TestCreate_Validation(t *testing.T) {
	tests := []struct {
		name string
		req  *models.CreateVoucherRequest
	}{
		{
			name: "empty code",
			req: &models.CreateVoucherRequest{
				Code:          "   ",
				DiscountType:  "FIXED",
				DiscountValue: decimal.NewFromInt(50),
			},
		},
		{
			name: "unknown discount type",
			req: &models.CreateVoucherRequest{
				Code:          "BAD",
				DiscountType:  "BOGOF",
				DiscountValue: decimal.NewFromInt(50),
			},
		},
		{
			name: "percentage over 100",
			req: &models.CreateVoucherRequest{
				Code:          "BIG",
				DiscountType:  "PERCENTAGE",
				DiscountValue: decimal.NewFromInt(150),
			},
		},
		{
			name: "negative value",
			req: &models.CreateVoucherRequest{
				Code:          "NEG",
				DiscountType:  "FIXED",
				DiscountValue: decimal.NewFromInt(-10),
			},
		},
		{
			name: "non-positive usage limit",
			req: &models.CreateVoucherRequest{
				Code:          "LIMITED",
				DiscountType:  "FIXED",
				DiscountValue: decimal.NewFromInt(10),
				UsageLimit:    ptr.Ptr(int64(0)),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestService(newFakeVoucherRepo())
			_, err := svc.Create(context.Background(), tt.req)
			require.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestValidate_UnknownCodeIsRejectionNotError(t *testing.T) {
	svc := newTestService(newFakeVoucherRepo())

	resp, err := svc.Validate(context.Background(), &models.ValidateVoucherRequest{
		Code:        "GHOST",
		OrderAmount: decimal.NewFromInt(1000),
	})
	require.NoError(t, err)
	assert.False(t, resp.Valid)
	require.NotNil(t, resp.RejectionReason)
	assert.Equal(t, "NOT_FOUND", *resp.RejectionReason)
}

func TestValidate_ComputesDiscount(t *testing.T) {
	repo := newFakeVoucherRepo()
	svc := newTestService(repo)

	_, err := svc.Create(context.Background(), &models.CreateVoucherRequest{
		Code:          "TEN",
		DiscountType:  "PERCENTAGE",
		DiscountValue: decimal.NewFromInt(10),
	})
	require.NoError(t, err)

	resp, err := svc.Validate(context.Background(), &models.ValidateVoucherRequest{
		Code:        "ten",
		OrderAmount: decimal.NewFromInt(2500),
	})
	require.NoError(t, err)
	assert.True(t, resp.Valid)
	require.NotNil(t, resp.DiscountAmount)
	assert.True(t, decimal.NewFromInt(250).Equal(*resp.DiscountAmount), "discount: %s", resp.DiscountAmount)
}

func TestValidate_BelowMinimum(t *testing.T) {
	repo := newFakeVoucherRepo()
	svc := newTestService(repo)

	_, err := svc.Create(context.Background(), &models.CreateVoucherRequest{
		Code:           "MIN500",
		DiscountType:   "FIXED",
		DiscountValue:  decimal.NewFromInt(100),
		MinOrderAmount: ptr.Ptr(decimal.NewFromInt(500)),
	})
	require.NoError(t, err)

	resp, err := svc.Validate(context.Background(), &models.ValidateVoucherRequest{
		Code:        "MIN500",
		OrderAmount: decimal.NewFromInt(499),
	})
	require.NoError(t, err)
	assert.False(t, resp.Valid)
	require.NotNil(t, resp.RejectionReason)
	assert.Equal(t, "BELOW_MINIMUM", *resp.RejectionReason)
}

func TestValidate_ExpiredVoucher(t *testing.T) {
	repo := newFakeVoucherRepo()
	svc := newTestService(repo)

	_, err := svc.Create(context.Background(), &models.CreateVoucherRequest{
		Code:          "OLD",
		DiscountType:  "FIXED",
		DiscountValue: decimal.NewFromInt(100),
		ExpiryDate:    ptr.Ptr(time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)),
	})
	require.NoError(t, err)

	resp, err := svc.Validate(context.Background(), &models.ValidateVoucherRequest{
		Code:        "OLD",
		OrderAmount: decimal.NewFromInt(1000),
	})
	require.NoError(t, err)
	assert.False(t, resp.Valid)
	require.NotNil(t, resp.RejectionReason)
	assert.Equal(t, "EXPIRED", *resp.RejectionReason)
}

func TestDelete_NotFound(t *testing.T) {
	svc := newTestService(newFakeVoucherRepo())
	err := svc.Delete(context.Background(), "NOPE")
	require.ErrorIs(t, err, ErrVoucherNotFound)
}

func TestUpdate_TogglesActive(t *testing.T) {
	repo := newFakeVoucherRepo()
	svc := newTestService(repo)

	_, err := svc.Create(context.Background(), &models.CreateVoucherRequest{
		Code:          "TOGGLE",
		DiscountType:  "FIXED",
		DiscountValue: decimal.NewFromInt(50),
	})
	require.NoError(t, err)

	resp, err := svc.Update(context.Background(), "TOGGLE", &models.UpdateVoucherRequest{
		IsActive: ptr.Ptr(false),
	})
	require.NoError(t, err)
	assert.False(t, resp.IsActive)
}
