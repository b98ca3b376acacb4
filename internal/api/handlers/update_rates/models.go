package update_rates

import (
	"github.com/shopspring/decimal"

	"github.com/m04kA/JMP-BookingService/internal/service/rates/models"
)

// UpdateRatesRequest HTTP request model
// GST передается долей: 0.18, а не 18
type UpdateRatesRequest struct {
	AdultRate     decimal.Decimal `json:"adultRate"`
	ChildRate     decimal.Decimal `json:"childRate"`
	SpectatorRate decimal.Decimal `json:"spectatorRate"`
	ExtraHourRate decimal.Decimal `json:"extraHourRate"`
	GSTRate       decimal.Decimal `json:"gstRate"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpdateRatesRequest) ToServiceRequest() *models.UpdateRatesRequest {
	return &models.UpdateRatesRequest{
		AdultRate:     r.AdultRate,
		ChildRate:     r.ChildRate,
		SpectatorRate: r.SpectatorRate,
		ExtraHourRate: r.ExtraHourRate,
		GSTRate:       r.GSTRate,
	}
}
