package rates

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/m04kA/JMP-BookingService/internal/domain"
	ratesRepo "github.com/m04kA/JMP-BookingService/internal/infra/storage/rates"
	"github.com/m04kA/JMP-BookingService/internal/service/rates/models"
)

var one = decimal.NewFromInt(1)

// Service сервис тарифов сессий
// Пока админ не сохранил свои тарифы, отдаёт встроенные дефолтные значения
type Service struct {
	ratesRepo RatesRepository
	logger    Logger
}

// NewService создает новый экземпляр сервиса тарифов
func NewService(ratesRepo RatesRepository, logger Logger) *Service {
	return &Service{
		ratesRepo: ratesRepo,
		logger:    logger,
	}
}

// Get возвращает актуальные тарифы сессий
func (s *Service) Get(ctx context.Context) (*models.RatesResponse, error) {
	rates, isDefault, err := s.Current(ctx)
	if err != nil {
		return nil, err
	}
	return models.FromDomainRates(rates, isDefault), nil
}

// Current возвращает тарифы в доменном виде для pricing engine
// Второе возвращаемое значение показывает, используются ли дефолтные тарифы
func (s *Service) Current(ctx context.Context) (domain.PricingRates, bool, error) {
	rates, err := s.ratesRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, ratesRepo.ErrRatesNotFound) {
			return domain.DefaultPricingRates(), true, nil
		}
		s.logger.Error("Current: repository error: %v", err)
		return domain.PricingRates{}, false, fmt.Errorf("%w: Current - repository error: %v", ErrInternal, err)
	}
	return *rates, false, nil
}

// Update сохраняет тарифы сессий
func (s *Service) Update(ctx context.Context, req *models.UpdateRatesRequest) (*models.RatesResponse, error) {
	s.logger.Info("Update: updating pricing rates")

	if err := validateUpdateRequest(req); err != nil {
		s.logger.Warn("Update: validation failed: %v", err)
		return nil, err
	}

	rates := &domain.PricingRates{
		AdultRate:     req.AdultRate,
		ChildRate:     req.ChildRate,
		SpectatorRate: req.SpectatorRate,
		ExtraHourRate: req.ExtraHourRate,
		GSTRate:       req.GSTRate,
	}

	saved, err := s.ratesRepo.Upsert(ctx, rates)
	if err != nil {
		s.logger.Error("Update: repository error: %v", err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated pricing rates id=%d", saved.ID)
	return models.FromDomainRates(*saved, false), nil
}

// validateUpdateRequest валидирует тарифы перед сохранением
func validateUpdateRequest(req *models.UpdateRatesRequest) error {
	named := []struct {
		name  string
		value decimal.Decimal
	}{
		{"adultRate", req.AdultRate},
		{"childRate", req.ChildRate},
		{"spectatorRate", req.SpectatorRate},
		{"extraHourRate", req.ExtraHourRate},
	}
	for _, rate := range named {
		if rate.value.IsNegative() {
			return fmt.Errorf("%w: %s must be non-negative", ErrInvalidInput, rate.name)
		}
	}

	// GST хранится долей: 0.18, а не 18
	if req.GSTRate.IsNegative() || req.GSTRate.GreaterThanOrEqual(one) {
		return fmt.Errorf("%w: gstRate must be a fraction in [0, 1)", ErrInvalidInput)
	}

	return nil
}
