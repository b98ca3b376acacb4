package create_party_booking

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/JMP-BookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if len(req.Name) > domain.MaxNameLength {
		return fmt.Errorf("%w: name is too long", ErrInvalidInput)
	}

	trimmedEmail := strings.TrimSpace(req.Email)
	if trimmedEmail == "" {
		return fmt.Errorf("%w: email is required", ErrInvalidInput)
	}
	at := strings.Index(trimmedEmail, "@")
	if at <= 0 || at == len(trimmedEmail)-1 {
		return fmt.Errorf("%w: invalid email format", ErrInvalidInput)
	}

	if strings.TrimSpace(req.Phone) == "" {
		return fmt.Errorf("%w: phone is required", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}
	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	if req.Participants < 1 {
		return fmt.Errorf("%w: at least one participant is required", ErrInvalidInput)
	}
	if req.Spectators < 0 {
		return fmt.Errorf("%w: spectators must be non-negative", ErrInvalidInput)
	}
	if req.Participants+req.Spectators > domain.MaxGuestsPerBooking {
		return fmt.Errorf("%w: too many guests, maximum is %d", ErrInvalidInput, domain.MaxGuestsPerBooking)
	}

	return nil
}

// validateDate проверяет, что дата бронирования не в прошлом
func validateDate(bookingDate time.Time, now time.Time) error {
	dateOnly := time.Date(bookingDate.Year(), bookingDate.Month(), bookingDate.Day(), 0, 0, 0, 0, bookingDate.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if dateOnly.Before(nowOnly) {
		return ErrInvalidDate
	}
	return nil
}

// normalizeEmail приводит email к нижнему регистру для хранения
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
