package update_booking_status

import (
	"github.com/m04kA/JMP-BookingService/internal/service/bookings/models"
)

// UpdateStatusRequest HTTP request model
// nil-поля не изменяются
type UpdateStatusRequest struct {
	BookingStatus *string `json:"bookingStatus,omitempty"`
	PaymentStatus *string `json:"paymentStatus,omitempty"`
	WaiverStatus  *string `json:"waiverStatus,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpdateStatusRequest) ToServiceRequest() *models.UpdateStatusRequest {
	return &models.UpdateStatusRequest{
		BookingStatus: r.BookingStatus,
		PaymentStatus: r.PaymentStatus,
		WaiverStatus:  r.WaiverStatus,
	}
}
