package rates

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/JMP-BookingService/internal/domain"
	ratesRepo "github.com/m04kA/JMP-BookingService/internal/infra/storage/rates"
	"github.com/m04kA/JMP-BookingService/internal/service/rates/models"
)

type fakeRatesRepo struct {
	rates *domain.PricingRates
}

func (r *fakeRatesRepo) Get(_ context.Context) (*domain.PricingRates, error) {
	if r.rates == nil {
		return nil, ratesRepo.ErrRatesNotFound
	}
	copied := *r.rates
	return &copied, nil
}

func (r *fakeRatesRepo) Upsert(_ context.Context, rates *domain.PricingRates) (*domain.PricingRates, error) {
	stored := *rates
	stored.ID = 1
	stored.UpdatedAt = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	r.rates = &stored
	copied := stored
	return &copied, nil
}

type nopLogger struct{}

func (l *nopLogger) Info(string, ...interface{})  {}
func (l *nopLogger) Warn(string, ...interface{})  {}
func (l *nopLogger) Error(string, ...interface{}) {}

func TestGet_FallsBackToDefaults(t *testing.T) {
	svc := NewService(&fakeRatesRepo{}, &nopLogger{})

	resp, err := svc.Get(context.Background())
	require.NoError(t, err)
	assert.True(t, resp.IsDefault)
	assert.True(t, decimal.NewFromInt(domain.DefaultAdultRate).Equal(resp.AdultRate))
	assert.True(t, decimal.RequireFromString("0.18").Equal(resp.GSTRate), "gst: %s", resp.GSTRate)
	assert.Nil(t, resp.UpdatedAt)
}

func TestUpdate_ThenGetReturnsSaved(t *testing.T) {
	svc := NewService(&fakeRatesRepo{}, &nopLogger{})

	req := &models.UpdateRatesRequest{
		AdultRate:     decimal.NewFromInt(999),
		ChildRate:     decimal.NewFromInt(550),
		SpectatorRate: decimal.NewFromInt(200),
		ExtraHourRate: decimal.NewFromInt(600),
		GSTRate:       decimal.RequireFromString("0.18"),
	}

	updated, err := svc.Update(context.Background(), req)
	require.NoError(t, err)
	assert.False(t, updated.IsDefault)
	require.NotNil(t, updated.UpdatedAt)

	resp, err := svc.Get(context.Background())
	require.NoError(t, err)
	assert.False(t, resp.IsDefault)
	assert.True(t, decimal.NewFromInt(999).Equal(resp.AdultRate))
}

func TestUpdate_Validation(t *testing.T) {
	valid := func() *models.UpdateRatesRequest {
		return &models.UpdateRatesRequest{
			AdultRate:     decimal.NewFromInt(899),
			ChildRate:     decimal.NewFromInt(500),
			SpectatorRate: decimal.NewFromInt(150),
			ExtraHourRate: decimal.NewFromInt(500),
			GSTRate:       decimal.RequireFromString("0.18"),
		}
	}

	tests := []struct {
		name   string
		mutate func(req *models.UpdateRatesRequest)
	}{
		{
			name:   "negative adult rate",
			mutate: func(req *models.UpdateRatesRequest) { req.AdultRate = decimal.NewFromInt(-1) },
		},
		{
			name:   "negative gst",
			mutate: func(req *models.UpdateRatesRequest) { req.GSTRate = decimal.RequireFromString("-0.01") },
		},
		{
			name: "gst given as percent instead of fraction",
			mutate: func(req *models.UpdateRatesRequest) {
				req.GSTRate = decimal.NewFromInt(18)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewService(&fakeRatesRepo{}, &nopLogger{})

			req := valid()
			tt.mutate(req)

			_, err := svc.Update(context.Background(), req)
			require.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
