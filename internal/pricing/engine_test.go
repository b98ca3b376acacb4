package pricing

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/JMP-BookingService/internal/domain"
	"github.com/m04kA/JMP-BookingService/pkg/ptr"
)

var testNow = time.Date(2025, 10, 15, 12, 0, 0, 0, time.UTC)

func testRates() domain.PricingRates {
	return domain.PricingRates{
		AdultRate:     decimal.NewFromInt(899),
		ChildRate:     decimal.NewFromInt(500),
		SpectatorRate: decimal.NewFromInt(150),
		ExtraHourRate: decimal.NewFromInt(500),
		GSTRate:       decimal.RequireFromString("0.18"),
	}
}

// staticLookup возвращает один и тот же voucher для любого кода
func staticLookup(v *domain.Voucher) VoucherLookup {
	return func(ctx context.Context, code string) (*domain.Voucher, error) {
		return v, nil
	}
}

// noLookup используется в тестах без voucher - падает при вызове
func noLookup(t *testing.T) VoucherLookup {
	return func(ctx context.Context, code string) (*domain.Voucher, error) {
		t.Fatalf("unexpected voucher lookup for code %q", code)
		return nil, nil
	}
}

func activeVoucher() *domain.Voucher {
	return &domain.Voucher{
		ID:            1,
		Code:          "SAVE10",
		IsActive:      true,
		DiscountType:  domain.DiscountPercentage,
		DiscountValue: decimal.NewFromInt(10),
	}
}

func TestQuote_BaseSession(t *testing.T) {
	engine := NewEngine()

	quote, err := engine.Quote(context.Background(), QuoteRequest{
		Adults:          2,
		Kids:            1,
		Spectators:      0,
		DurationMinutes: 60,
	}, testRates(), testNow, noLookup(t))

	require.NoError(t, err)
	assert.True(t, quote.Subtotal.Equal(decimal.NewFromInt(2298)), "subtotal = %s", quote.Subtotal)
	assert.True(t, quote.GST.Equal(decimal.RequireFromString("413.64")), "gst = %s", quote.GST)
	assert.True(t, quote.TotalAmount.Equal(decimal.RequireFromString("2711.64")), "total = %s", quote.TotalAmount)
	assert.True(t, quote.DiscountAmount.IsZero())
	assert.Nil(t, quote.VoucherApplied)
	assert.Nil(t, quote.RejectionReason)
}

func TestQuote_ExtendedSessionSurcharge(t *testing.T) {
	engine := NewEngine()

	// Доплата за второй час берётся с участников (adults + kids), не со зрителей
	quote, err := engine.Quote(context.Background(), QuoteRequest{
		Adults:          2,
		Kids:            1,
		Spectators:      0,
		DurationMinutes: 120,
	}, testRates(), testNow, noLookup(t))

	require.NoError(t, err)
	assert.True(t, quote.Subtotal.Equal(decimal.NewFromInt(3798)), "subtotal = %s", quote.Subtotal)
	assert.True(t, quote.GST.Equal(decimal.RequireFromString("683.64")), "gst = %s", quote.GST)
	assert.True(t, quote.TotalAmount.Equal(decimal.RequireFromString("4481.64")), "total = %s", quote.TotalAmount)
}

func TestQuote_PercentageVoucher(t *testing.T) {
	engine := NewEngine()

	voucher := activeVoucher()
	voucher.MinOrderAmount = ptr.Ptr(decimal.NewFromInt(1000))

	quote, err := engine.Quote(context.Background(), QuoteRequest{
		Adults:          2,
		Kids:            1,
		DurationMinutes: 60,
		VoucherCode:     ptr.Ptr("save10"),
	}, testRates(), testNow, staticLookup(voucher))

	require.NoError(t, err)
	require.NotNil(t, quote.VoucherApplied)
	assert.Equal(t, "SAVE10", *quote.VoucherApplied)
	assert.Nil(t, quote.RejectionReason)
	assert.True(t, quote.DiscountAmount.Equal(decimal.RequireFromString("229.8")), "discount = %s", quote.DiscountAmount)
	assert.True(t, quote.TotalAmount.Equal(decimal.RequireFromString("2481.84")), "total = %s", quote.TotalAmount)
}

func TestQuote_FixedVoucherClampedToTotal(t *testing.T) {
	engine := NewEngine()

	voucher := activeVoucher()
	voucher.DiscountType = domain.DiscountFixed
	voucher.DiscountValue = decimal.NewFromInt(5000)

	quote, err := engine.Quote(context.Background(), QuoteRequest{
		Adults:          2,
		Kids:            1,
		DurationMinutes: 60,
		VoucherCode:     ptr.Ptr("SAVE10"),
	}, testRates(), testNow, staticLookup(voucher))

	require.NoError(t, err)
	require.NotNil(t, quote.VoucherApplied)
	// Скидка не может превышать сумму до скидки - итог ровно ноль
	assert.True(t, quote.DiscountAmount.Equal(decimal.RequireFromString("2711.64")), "discount = %s", quote.DiscountAmount)
	assert.True(t, quote.TotalAmount.IsZero(), "total = %s", quote.TotalAmount)
}

func TestQuote_VoucherRejections(t *testing.T) {
	engine := NewEngine()

	expired := testNow.Add(-24 * time.Hour)
	future := testNow.Add(24 * time.Hour)

	tests := []struct {
		name    string
		voucher *domain.Voucher
		want    RejectionReason
	}{
		{
			name:    "not found",
			voucher: nil,
			want:    RejectionNotFound,
		},
		{
			name: "inactive",
			voucher: func() *domain.Voucher {
				v := activeVoucher()
				v.IsActive = false
				return v
			}(),
			want: RejectionInactive,
		},
		{
			name: "expired",
			voucher: func() *domain.Voucher {
				v := activeVoucher()
				v.ExpiryDate = &expired
				return v
			}(),
			want: RejectionExpired,
		},
		{
			name: "usage limit reached",
			voucher: func() *domain.Voucher {
				v := activeVoucher()
				v.UsageLimit = ptr.Ptr(int64(5))
				v.UsedCount = 5
				return v
			}(),
			want: RejectionLimitReached,
		},
		{
			name: "below minimum order",
			voucher: func() *domain.Voucher {
				v := activeVoucher()
				v.MinOrderAmount = ptr.Ptr(decimal.NewFromInt(10000))
				return v
			}(),
			want: RejectionBelowMinimum,
		},
		{
			// Порядок проверок фиксированный: inactive раньше expired
			name: "inactive and expired reports inactive",
			voucher: func() *domain.Voucher {
				v := activeVoucher()
				v.IsActive = false
				v.ExpiryDate = &expired
				return v
			}(),
			want: RejectionInactive,
		},
		{
			// expired раньше limit_reached
			name: "expired and exhausted reports expired",
			voucher: func() *domain.Voucher {
				v := activeVoucher()
				v.ExpiryDate = &expired
				v.UsageLimit = ptr.Ptr(int64(5))
				v.UsedCount = 5
				return v
			}(),
			want: RejectionExpired,
		},
		{
			name: "future expiry is not expired",
			voucher: func() *domain.Voucher {
				v := activeVoucher()
				v.ExpiryDate = &future
				v.UsageLimit = ptr.Ptr(int64(5))
				v.UsedCount = 5
				return v
			}(),
			want: RejectionLimitReached,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			quote, err := engine.Quote(context.Background(), QuoteRequest{
				Adults:          2,
				Kids:            1,
				DurationMinutes: 60,
				VoucherCode:     ptr.Ptr("SAVE10"),
			}, testRates(), testNow, staticLookup(tt.voucher))

			require.NoError(t, err)
			require.NotNil(t, quote.RejectionReason)
			assert.Equal(t, tt.want, *quote.RejectionReason)
			assert.Nil(t, quote.VoucherApplied)

			// Отклонённый voucher не меняет сумму
			assert.True(t, quote.DiscountAmount.IsZero())
			assert.True(t, quote.TotalAmount.Equal(decimal.RequireFromString("2711.64")), "total = %s", quote.TotalAmount)
		})
	}
}

func TestQuote_InvalidInput(t *testing.T) {
	engine := NewEngine()

	tests := []struct {
		name string
		req  QuoteRequest
	}{
		{"negative adults", QuoteRequest{Adults: -1, DurationMinutes: 60}},
		{"negative kids", QuoteRequest{Kids: -1, DurationMinutes: 60}},
		{"negative spectators", QuoteRequest{Spectators: -3, DurationMinutes: 60}},
		{"zero duration", QuoteRequest{Adults: 1, DurationMinutes: 0}},
		{"unrecognized duration", QuoteRequest{Adults: 1, DurationMinutes: 90}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			quote, err := engine.Quote(context.Background(), tt.req, testRates(), testNow, noLookup(t))
			require.ErrorIs(t, err, ErrInvalidInput)
			assert.Nil(t, quote)
		})
	}
}

func TestQuote_Determinism(t *testing.T) {
	engine := NewEngine()

	voucher := activeVoucher()
	req := QuoteRequest{
		Adults:          3,
		Kids:            2,
		Spectators:      1,
		DurationMinutes: 120,
		VoucherCode:     ptr.Ptr("SAVE10"),
	}

	first, err := engine.Quote(context.Background(), req, testRates(), testNow, staticLookup(voucher))
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		quote, err := engine.Quote(context.Background(), req, testRates(), testNow, staticLookup(voucher))
		require.NoError(t, err)
		assert.True(t, quote.Subtotal.Equal(first.Subtotal))
		assert.True(t, quote.GST.Equal(first.GST))
		assert.True(t, quote.DiscountAmount.Equal(first.DiscountAmount))
		assert.True(t, quote.TotalAmount.Equal(first.TotalAmount))
	}
}

func TestQuote_SubtotalMonotonicity(t *testing.T) {
	engine := NewEngine()

	base := QuoteRequest{Adults: 2, Kids: 1, Spectators: 1, DurationMinutes: 60}

	baseQuote, err := engine.Quote(context.Background(), base, testRates(), testNow, noLookup(t))
	require.NoError(t, err)

	// Увеличение любого количества гостей не уменьшает subtotal
	variants := []QuoteRequest{
		{Adults: 3, Kids: 1, Spectators: 1, DurationMinutes: 60},
		{Adults: 2, Kids: 2, Spectators: 1, DurationMinutes: 60},
		{Adults: 2, Kids: 1, Spectators: 2, DurationMinutes: 60},
	}

	for _, v := range variants {
		quote, err := engine.Quote(context.Background(), v, testRates(), testNow, noLookup(t))
		require.NoError(t, err)
		assert.True(t, quote.Subtotal.GreaterThanOrEqual(baseQuote.Subtotal),
			"subtotal %s < base %s", quote.Subtotal, baseQuote.Subtotal)
	}
}

func TestQuote_NonNegativity(t *testing.T) {
	engine := NewEngine()

	// FIXED скидки разного размера никогда не уводят сумму в минус
	for _, value := range []int64{0, 100, 2298, 2711, 2712, 100000} {
		voucher := activeVoucher()
		voucher.DiscountType = domain.DiscountFixed
		voucher.DiscountValue = decimal.NewFromInt(value)

		quote, err := engine.Quote(context.Background(), QuoteRequest{
			Adults:          2,
			Kids:            1,
			DurationMinutes: 60,
			VoucherCode:     ptr.Ptr("SAVE10"),
		}, testRates(), testNow, staticLookup(voucher))

		require.NoError(t, err)
		assert.True(t, quote.DiscountAmount.GreaterThanOrEqual(decimal.Zero))
		assert.True(t, quote.TotalAmount.GreaterThanOrEqual(decimal.Zero),
			"value=%d total=%s", value, quote.TotalAmount)
		assert.True(t, quote.DiscountAmount.LessThanOrEqual(quote.Subtotal.Add(quote.GST)))
	}
}

func TestQuote_ZeroGuests(t *testing.T) {
	engine := NewEngine()

	quote, err := engine.Quote(context.Background(), QuoteRequest{
		DurationMinutes: 60,
	}, testRates(), testNow, noLookup(t))

	require.NoError(t, err)
	assert.True(t, quote.Subtotal.IsZero())
	assert.True(t, quote.TotalAmount.IsZero())
}

func TestQuote_BlankVoucherCodeIgnored(t *testing.T) {
	engine := NewEngine()

	quote, err := engine.Quote(context.Background(), QuoteRequest{
		Adults:          1,
		DurationMinutes: 60,
		VoucherCode:     ptr.Ptr("   "),
	}, testRates(), testNow, noLookup(t))

	require.NoError(t, err)
	assert.Nil(t, quote.VoucherApplied)
	assert.Nil(t, quote.RejectionReason)
}

func TestQuoteParty_FreeSpectators(t *testing.T) {
	engine := NewEngine()
	rates := domain.DefaultPartyPricingRates()

	tests := []struct {
		name         string
		participants int
		spectators   int
		wantSubtotal string
		wantTotal    string
		wantDeposit  string
	}{
		{
			// 8*1500 = 12000, зрители в пределах бесплатных
			name:         "spectators within free allowance",
			participants: 8,
			spectators:   10,
			wantSubtotal: "12000",
			wantTotal:    "14160",
			wantDeposit:  "7080",
		},
		{
			// 8*1500 + 5*100 = 12500
			name:         "chargeable spectators beyond allowance",
			participants: 8,
			spectators:   15,
			wantSubtotal: "12500",
			wantTotal:    "14750",
			wantDeposit:  "7375",
		},
		{
			name:         "no spectators",
			participants: 10,
			spectators:   0,
			wantSubtotal: "15000",
			wantTotal:    "17700",
			wantDeposit:  "8850",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			quote, err := engine.QuoteParty(PartyQuoteRequest{
				Participants: tt.participants,
				Spectators:   tt.spectators,
			}, rates)

			require.NoError(t, err)
			assert.True(t, quote.Subtotal.Equal(decimal.RequireFromString(tt.wantSubtotal)), "subtotal = %s", quote.Subtotal)
			assert.True(t, quote.TotalAmount.Equal(decimal.RequireFromString(tt.wantTotal)), "total = %s", quote.TotalAmount)
			assert.True(t, quote.DepositAmount.Equal(decimal.RequireFromString(tt.wantDeposit)), "deposit = %s", quote.DepositAmount)
		})
	}
}

func TestQuoteParty_InvalidInput(t *testing.T) {
	engine := NewEngine()

	_, err := engine.QuoteParty(PartyQuoteRequest{Participants: -1}, domain.DefaultPartyPricingRates())
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = engine.QuoteParty(PartyQuoteRequest{Participants: 5, Spectators: -1}, domain.DefaultPartyPricingRates())
	require.ErrorIs(t, err, ErrInvalidInput)
}
