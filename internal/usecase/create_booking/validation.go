package create_booking

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

	if err := validateEmail(req.Email); err != nil {
		return err
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

	if !domain.IsRecognizedDuration(req.DurationMinutes) {
		return fmt.Errorf("%w: unrecognized duration %d minutes", ErrInvalidInput, req.DurationMinutes)
	}

	if req.Adults < 0 || req.Kids < 0 || req.Spectators < 0 {
		return fmt.Errorf("%w: guest counts must be non-negative", ErrInvalidInput)
	}

	// Зрители без участников не бронируют сессию
	if req.Adults+req.Kids < 1 {
		return fmt.Errorf("%w: at least one participating guest is required", ErrInvalidInput)
	}

	if req.Adults+req.Kids+req.Spectators > domain.MaxGuestsPerBooking {
		return fmt.Errorf("%w: too many guests, maximum is %d", ErrInvalidInput, domain.MaxGuestsPerBooking)
	}

	return nil
}

// validateEmail проверяет минимально разумный формат email
func validateEmail(email string) error {
	trimmed := strings.TrimSpace(email)
	if trimmed == "" {
		return fmt.Errorf("%w: email is required", ErrInvalidInput)
	}
	at := strings.Index(trimmed, "@")
	if at <= 0 || at == len(trimmed)-1 {
		return fmt.Errorf("%w: invalid email format", ErrInvalidInput)
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
