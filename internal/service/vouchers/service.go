package vouchers

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/m04kA/JMP-BookingService/internal/domain"
	voucherRepo "github.com/m04kA/JMP-BookingService/internal/infra/storage/voucher"
	"github.com/m04kA/JMP-BookingService/internal/service/vouchers/models"
)

var oneHundred = decimal.NewFromInt(100)

// Service сервис для работы с vouchers
type Service struct {
	voucherRepo  VoucherRepository
	engine       PricingEngine
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса vouchers
func NewService(voucherRepo VoucherRepository, engine PricingEngine, logger Logger) *Service {
	return &Service{
		voucherRepo:  voucherRepo,
		engine:       engine,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Create создает новый voucher
// Код нормализуется в верхний регистр, уникальность проверяет БД
func (s *Service) Create(ctx context.Context, req *models.CreateVoucherRequest) (*models.VoucherResponse, error) {
	s.logger.Info("Create: creating voucher code=%s", req.Code)

	if err := validateCreateRequest(req); err != nil {
		s.logger.Warn("Create: validation failed for code=%s: %v", req.Code, err)
		return nil, err
	}

	voucher := &domain.Voucher{
		Code:           domain.NormalizeVoucherCode(req.Code),
		Description:    req.Description,
		IsActive:       true,
		DiscountType:   domain.DiscountType(req.DiscountType),
		DiscountValue:  req.DiscountValue,
		MinOrderAmount: req.MinOrderAmount,
		ExpiryDate:     req.ExpiryDate,
		UsageLimit:     req.UsageLimit,
	}

	created, err := s.voucherRepo.Create(ctx, voucher)
	if err != nil {
		if errors.Is(err, voucherRepo.ErrCodeAlreadyExists) {
			s.logger.Warn("Create: voucher code=%s already exists", voucher.Code)
			return nil, ErrCodeAlreadyExists
		}
		s.logger.Error("Create: repository error for code=%s: %v", voucher.Code, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created voucher id=%d code=%s", created.ID, created.Code)
	return models.FromDomainVoucher(created), nil
}

// GetByCode получает voucher по коду
func (s *Service) GetByCode(ctx context.Context, code string) (*models.VoucherResponse, error) {
	s.logger.Info("GetByCode: fetching voucher code=%s", code)

	voucher, err := s.voucherRepo.GetByCode(ctx, code)
	if err != nil {
		if errors.Is(err, voucherRepo.ErrVoucherNotFound) {
			s.logger.Warn("GetByCode: voucher code=%s not found", code)
			return nil, ErrVoucherNotFound
		}
		s.logger.Error("GetByCode: repository error for code=%s: %v", code, err)
		return nil, fmt.Errorf("%w: GetByCode - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainVoucher(voucher), nil
}

// List получает список vouchers с опциональной фильтрацией по активности
func (s *Service) List(ctx context.Context, req *models.ListVouchersRequest) (*models.VoucherListResponse, error) {
	s.logger.Info("List: fetching vouchers, limit=%d, offset=%d", req.Limit, req.Offset)

	if req.Limit == 0 || req.Limit > domain.MaxPageLimit {
		req.Limit = domain.DefaultPageLimit
	}

	vouchers, err := s.voucherRepo.List(ctx, req.IsActive, req.Limit, req.Offset)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	total, err := s.voucherRepo.Count(ctx, req.IsActive)
	if err != nil {
		s.logger.Error("List: count error: %v", err)
		return nil, fmt.Errorf("%w: List - count error: %v", ErrInternal, err)
	}

	return models.FromDomainVoucherList(vouchers, total, req.Limit, req.Offset), nil
}

// Update обновляет voucher по коду
func (s *Service) Update(ctx context.Context, code string, req *models.UpdateVoucherRequest) (*models.VoucherResponse, error) {
	s.logger.Info("Update: updating voucher code=%s", code)

	if err := validateUpdateRequest(req); err != nil {
		s.logger.Warn("Update: validation failed for code=%s: %v", code, err)
		return nil, err
	}

	update := voucherRepo.VoucherUpdate{
		Description:    req.Description,
		IsActive:       req.IsActive,
		DiscountValue:  req.DiscountValue,
		MinOrderAmount: req.MinOrderAmount,
		ExpiryDate:     req.ExpiryDate,
		UsageLimit:     req.UsageLimit,
	}
	if req.DiscountType != nil {
		discountType := domain.DiscountType(*req.DiscountType)
		update.DiscountType = &discountType
	}

	updated, err := s.voucherRepo.Update(ctx, code, update)
	if err != nil {
		if errors.Is(err, voucherRepo.ErrVoucherNotFound) {
			s.logger.Warn("Update: voucher code=%s not found", code)
			return nil, ErrVoucherNotFound
		}
		s.logger.Error("Update: repository error for code=%s: %v", code, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated voucher code=%s", updated.Code)
	return models.FromDomainVoucher(updated), nil
}

// Delete удаляет voucher по коду
func (s *Service) Delete(ctx context.Context, code string) error {
	s.logger.Info("Delete: deleting voucher code=%s", code)

	if err := s.voucherRepo.Delete(ctx, code); err != nil {
		if errors.Is(err, voucherRepo.ErrVoucherNotFound) {
			s.logger.Warn("Delete: voucher code=%s not found", code)
			return ErrVoucherNotFound
		}
		s.logger.Error("Delete: repository error for code=%s: %v", code, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted voucher code=%s", code)
	return nil
}

// Validate проверяет voucher против суммы заказа
// Отказ не является ошибкой: ответ содержит причину, по которой voucher
// не применим, чтобы портал показал пользователю точное сообщение
func (s *Service) Validate(ctx context.Context, req *models.ValidateVoucherRequest) (*models.ValidateVoucherResponse, error) {
	code := domain.NormalizeVoucherCode(req.Code)
	s.logger.Info("Validate: validating voucher code=%s against amount=%s", code, req.OrderAmount)

	if code == "" {
		return nil, fmt.Errorf("%w: voucher code is required", ErrInvalidInput)
	}
	if req.OrderAmount.IsNegative() {
		return nil, fmt.Errorf("%w: order amount must be non-negative", ErrInvalidInput)
	}

	voucher, err := s.voucherRepo.GetByCode(ctx, code)
	if err != nil && !errors.Is(err, voucherRepo.ErrVoucherNotFound) {
		s.logger.Error("Validate: repository error for code=%s: %v", code, err)
		return nil, fmt.Errorf("%w: Validate - repository error: %v", ErrInternal, err)
	}

	discount, reason := s.engine.ValidateVoucher(voucher, req.OrderAmount, s.timeProvider.Now())
	if reason != nil {
		reasonStr := string(*reason)
		s.logger.Info("Validate: voucher code=%s rejected: %s", code, reasonStr)
		return &models.ValidateVoucherResponse{
			Valid:           false,
			Code:            code,
			RejectionReason: &reasonStr,
		}, nil
	}

	discountType := string(voucher.DiscountType)
	s.logger.Info("Validate: voucher code=%s valid, discount=%s", code, discount)
	return &models.ValidateVoucherResponse{
		Valid:          true,
		Code:           code,
		DiscountType:   &discountType,
		DiscountValue:  &voucher.DiscountValue,
		DiscountAmount: &discount,
	}, nil
}

// validateCreateRequest валидирует запрос создания voucher
func validateCreateRequest(req *models.CreateVoucherRequest) error {
	code := domain.NormalizeVoucherCode(req.Code)
	if code == "" {
		return fmt.Errorf("%w: code is required", ErrInvalidInput)
	}
	if len(code) > domain.MaxVoucherCodeLength {
		return fmt.Errorf("%w: code is too long", ErrInvalidInput)
	}
	if !domain.DiscountType(req.DiscountType).IsValid() {
		return fmt.Errorf("%w: unknown discount type: %s", ErrInvalidInput, req.DiscountType)
	}
	if err := validateDiscountValue(domain.DiscountType(req.DiscountType), req.DiscountValue); err != nil {
		return err
	}
	if req.MinOrderAmount != nil && req.MinOrderAmount.IsNegative() {
		return fmt.Errorf("%w: minOrderAmount must be non-negative", ErrInvalidInput)
	}
	if req.UsageLimit != nil && *req.UsageLimit <= 0 {
		return fmt.Errorf("%w: usageLimit must be positive", ErrInvalidInput)
	}
	if req.Description != nil && len(*req.Description) > domain.MaxVoucherDescriptionLength {
		return fmt.Errorf("%w: description is too long", ErrInvalidInput)
	}
	return nil
}

// validateUpdateRequest валидирует запрос обновления voucher
func validateUpdateRequest(req *models.UpdateVoucherRequest) error {
	if req.DiscountType != nil && !domain.DiscountType(*req.DiscountType).IsValid() {
		return fmt.Errorf("%w: unknown discount type: %s", ErrInvalidInput, *req.DiscountType)
	}
	if req.DiscountValue != nil {
		// Тип может не меняться - проверяем только общие ограничения
		if req.DiscountValue.IsNegative() {
			return fmt.Errorf("%w: discountValue must be non-negative", ErrInvalidInput)
		}
		if req.DiscountType != nil {
			if err := validateDiscountValue(domain.DiscountType(*req.DiscountType), *req.DiscountValue); err != nil {
				return err
			}
		}
	}
	if req.MinOrderAmount != nil && req.MinOrderAmount.IsNegative() {
		return fmt.Errorf("%w: minOrderAmount must be non-negative", ErrInvalidInput)
	}
	if req.UsageLimit != nil && *req.UsageLimit <= 0 {
		return fmt.Errorf("%w: usageLimit must be positive", ErrInvalidInput)
	}
	return nil
}

// validateDiscountValue проверяет значение скидки с учетом её типа
func validateDiscountValue(discountType domain.DiscountType, value decimal.Decimal) error {
	if value.IsNegative() {
		return fmt.Errorf("%w: discountValue must be non-negative", ErrInvalidInput)
	}
	if discountType == domain.DiscountPercentage && value.GreaterThan(oneHundred) {
		return fmt.Errorf("%w: percentage discount cannot exceed 100", ErrInvalidInput)
	}
	return nil
}
