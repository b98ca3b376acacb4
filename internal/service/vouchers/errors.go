package vouchers

import "errors"

var (
	// ErrVoucherNotFound возвращается, когда voucher не найден
	ErrVoucherNotFound = errors.New("vouchers.service: voucher not found")

	// ErrCodeAlreadyExists возвращается при создании voucher с существующим кодом
	ErrCodeAlreadyExists = errors.New("vouchers.service: voucher code already exists")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("vouchers.service: invalid input")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("vouchers.service: internal error")
)
