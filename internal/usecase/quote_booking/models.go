package quote_booking

import (
	"github.com/shopspring/decimal"
)

// Request модель запроса расчета стоимости сессии
type Request struct {
	Adults          int
	Kids            int
	Spectators      int
	DurationMinutes int
	VoucherCode     *string
}

// PartyRequest модель запроса расчета стоимости party
type PartyRequest struct {
	Participants int
	Spectators   int
}

// Response результат расчета стоимости
// Отклоненный voucher не считается ошибкой: quote возвращается без
// скидки с указанием причины отказа
type Response struct {
	Subtotal       decimal.Decimal
	GST            decimal.Decimal
	DiscountAmount decimal.Decimal
	TotalAmount    decimal.Decimal

	VoucherApplied         *string
	VoucherRejectionReason *string
}

// PartyResponse результат расчета стоимости party
type PartyResponse struct {
	Subtotal      decimal.Decimal
	GST           decimal.Decimal
	TotalAmount   decimal.Decimal
	DepositAmount decimal.Decimal
}
