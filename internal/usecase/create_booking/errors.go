package create_booking

import "errors"

var (
	// ErrInvalidDate возвращается при дате бронирования в прошлом
	ErrInvalidDate = errors.New("create_booking: invalid booking date")

	// ErrVoucherNoLongerEligible возвращается, когда voucher прошел проверку
	// при расчете, но перестал быть применимым к моменту коммита транзакции
	ErrVoucherNoLongerEligible = errors.New("create_booking: voucher is no longer eligible")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
