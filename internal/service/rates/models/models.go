package models

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/JMP-BookingService/internal/domain"
)

// UpdateRatesRequest модель запроса обновления тарифов
type UpdateRatesRequest struct {
	AdultRate     decimal.Decimal
	ChildRate     decimal.Decimal
	SpectatorRate decimal.Decimal
	ExtraHourRate decimal.Decimal
	GSTRate       decimal.Decimal
}

// RatesResponse актуальные тарифы сессий
// IsDefault=true означает, что админ ещё не сохранял свои тарифы
type RatesResponse struct {
	AdultRate     decimal.Decimal `json:"adultRate"`
	ChildRate     decimal.Decimal `json:"childRate"`
	SpectatorRate decimal.Decimal `json:"spectatorRate"`
	ExtraHourRate decimal.Decimal `json:"extraHourRate"`
	GSTRate       decimal.Decimal `json:"gstRate"`
	IsDefault     bool            `json:"isDefault"`
	UpdatedAt     *time.Time      `json:"updatedAt,omitempty"`
}

// FromDomainRates конвертирует domain.PricingRates в ответ сервиса
func FromDomainRates(r domain.PricingRates, isDefault bool) *RatesResponse {
	resp := &RatesResponse{
		AdultRate:     r.AdultRate,
		ChildRate:     r.ChildRate,
		SpectatorRate: r.SpectatorRate,
		ExtraHourRate: r.ExtraHourRate,
		GSTRate:       r.GSTRate,
		IsDefault:     isDefault,
	}
	if !isDefault && !r.UpdatedAt.IsZero() {
		updatedAt := r.UpdatedAt
		resp.UpdatedAt = &updatedAt
	}
	return resp
}
