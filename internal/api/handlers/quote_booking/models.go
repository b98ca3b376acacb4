package quote_booking

import (
	"github.com/shopspring/decimal"

	quoteBooking "github.com/m04kA/JMP-BookingService/internal/usecase/quote_booking"
)

// QuoteRequest HTTP request model
type QuoteRequest struct {
	Adults          int     `json:"adults"`
	Kids            int     `json:"kids"`
	Spectators      int     `json:"spectators"`
	DurationMinutes int     `json:"durationMinutes"` // 60 или 120
	VoucherCode     *string `json:"voucherCode,omitempty"`
}

// PartyQuoteRequest HTTP request model
type PartyQuoteRequest struct {
	Participants int `json:"participants"`
	Spectators   int `json:"spectators"`
}

// QuoteResponse HTTP response model
type QuoteResponse struct {
	Subtotal       decimal.Decimal `json:"subtotal"`
	GST            decimal.Decimal `json:"gst"`
	DiscountAmount decimal.Decimal `json:"discountAmount"`
	TotalAmount    decimal.Decimal `json:"totalAmount"`

	VoucherApplied         *string `json:"voucherApplied,omitempty"`
	VoucherRejectionReason *string `json:"voucherRejectionReason,omitempty"`
}

// PartyQuoteResponse HTTP response model
type PartyQuoteResponse struct {
	Subtotal      decimal.Decimal `json:"subtotal"`
	GST           decimal.Decimal `json:"gst"`
	TotalAmount   decimal.Decimal `json:"totalAmount"`
	DepositAmount decimal.Decimal `json:"depositAmount"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *QuoteRequest) ToUseCaseRequest() *quoteBooking.Request {
	return &quoteBooking.Request{
		Adults:          r.Adults,
		Kids:            r.Kids,
		Spectators:      r.Spectators,
		DurationMinutes: r.DurationMinutes,
		VoucherCode:     r.VoucherCode,
	}
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *PartyQuoteRequest) ToUseCaseRequest() *quoteBooking.PartyRequest {
	return &quoteBooking.PartyRequest{
		Participants: r.Participants,
		Spectators:   r.Spectators,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *quoteBooking.Response) *QuoteResponse {
	return &QuoteResponse{
		Subtotal:               resp.Subtotal,
		GST:                    resp.GST,
		DiscountAmount:         resp.DiscountAmount,
		TotalAmount:            resp.TotalAmount,
		VoucherApplied:         resp.VoucherApplied,
		VoucherRejectionReason: resp.VoucherRejectionReason,
	}
}

// FromUseCasePartyResponse конвертирует ответ use case в HTTP response
func FromUseCasePartyResponse(resp *quoteBooking.PartyResponse) *PartyQuoteResponse {
	return &PartyQuoteResponse{
		Subtotal:      resp.Subtotal,
		GST:           resp.GST,
		TotalAmount:   resp.TotalAmount,
		DepositAmount: resp.DepositAmount,
	}
}
