package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/JMP-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/JMP-BookingService/internal/infra/storage/booking"
	"github.com/m04kA/JMP-BookingService/internal/service/bookings/models"
)

// Service сервис для работы с бронированиями
type Service struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d", id)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBooking(booking), nil
}

// List получает бронирования с фильтрацией и пагинацией
// Фильтры: тип, статус, дата, поиск по имени/email/телефону
func (s *Service) List(ctx context.Context, req *models.ListBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("List: fetching bookings, limit=%d, offset=%d", req.Limit, req.Offset)

	if req.Limit == 0 || req.Limit > domain.MaxPageLimit {
		req.Limit = domain.DefaultPageLimit
	}

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	bookings, err := s.bookingRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	total, err := s.bookingRepo.Count(ctx, filter)
	if err != nil {
		s.logger.Error("List: count error: %v", err)
		return nil, fmt.Errorf("%w: List - count error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d of %d bookings", len(bookings), total)
	return models.FromDomainBookingList(bookings, total, req.Limit, req.Offset), nil
}

// Cancel отменяет бронирование
// Отменить можно только бронирование в статусе PENDING или CONFIRMED
func (s *Service) Cancel(ctx context.Context, id int64, req *models.CancelBookingRequest) error {
	s.logger.Info("Cancel: cancelling booking id=%d", id)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%d not found", id)
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", id, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if !booking.CanBeCancelled() {
		s.logger.Warn("Cancel: booking id=%d cannot be cancelled, status=%s", id, booking.BookingStatus)
		return ErrCannotCancel
	}

	if err := s.bookingRepo.Cancel(ctx, id, req.CancellationReason); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			// Статус успел измениться между чтением и отменой
			s.logger.Warn("Cancel: booking id=%d no longer cancellable", id)
			return ErrCannotCancel
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", id, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled booking id=%d", id)
	return nil
}

// UpdateStatus обновляет статусы бронирования (booking/payment/waiver)
// Переходы booking_status валидируются по domain.ValidBookingStatusTransitions
func (s *Service) UpdateStatus(ctx context.Context, id int64, req *models.UpdateStatusRequest) (*models.BookingResponse, error) {
	s.logger.Info("UpdateStatus: updating booking id=%d", id)

	if req.BookingStatus == nil && req.PaymentStatus == nil && req.WaiverStatus == nil {
		return nil, fmt.Errorf("%w: at least one status must be provided", ErrInvalidInput)
	}

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("UpdateStatus: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("UpdateStatus: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	var bookingStatus *domain.BookingStatus
	if req.BookingStatus != nil {
		status, err := models.ToDomainBookingStatus(*req.BookingStatus)
		if err != nil {
			s.logger.Warn("UpdateStatus: invalid booking status=%s for id=%d", *req.BookingStatus, id)
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		if !booking.CanTransitionTo(status) {
			s.logger.Warn("UpdateStatus: invalid transition %s -> %s for booking id=%d",
				booking.BookingStatus, status, id)
			return nil, ErrInvalidStatusTransition
		}
		bookingStatus = &status
	}

	var paymentStatus *domain.PaymentStatus
	if req.PaymentStatus != nil {
		status, err := models.ToDomainPaymentStatus(*req.PaymentStatus)
		if err != nil {
			s.logger.Warn("UpdateStatus: invalid payment status=%s for id=%d", *req.PaymentStatus, id)
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		paymentStatus = &status
	}

	var waiverStatus *domain.WaiverStatus
	if req.WaiverStatus != nil {
		status, err := models.ToDomainWaiverStatus(*req.WaiverStatus)
		if err != nil {
			s.logger.Warn("UpdateStatus: invalid waiver status=%s for id=%d", *req.WaiverStatus, id)
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		waiverStatus = &status
	}

	if err := s.bookingRepo.UpdateStatuses(ctx, id, bookingStatus, paymentStatus, waiverStatus); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		s.logger.Error("UpdateStatus: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	updated, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("UpdateStatus: failed to reload booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateStatus - reload error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateStatus: successfully updated booking id=%d", id)
	return models.FromDomainBooking(updated), nil
}
