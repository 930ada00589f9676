package request

type PaymentMethodRequest struct {
	PaymentMethodID string `json:"payment_method_id" binding:"required"`
}
