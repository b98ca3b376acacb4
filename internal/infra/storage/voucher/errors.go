package voucher

import "errors"

var (
	// ErrVoucherNotFound возвращается, когда voucher не найден
	ErrVoucherNotFound = errors.New("voucher.repository: voucher not found")

	// ErrCodeAlreadyExists возвращается при попытке создать voucher с существующим кодом
	ErrCodeAlreadyExists = errors.New("voucher.repository: voucher code already exists")

	// ErrNotEligible возвращается, когда условное погашение не прошло:
	// voucher неактивен, истёк или лимит использований исчерпан на момент записи
	ErrNotEligible = errors.New("voucher.repository: voucher is not eligible for redemption")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("voucher.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("voucher.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("voucher.repository: failed to scan row")
)
