package response

import (
	"nagoyameshi/internal/usecase/commands"

	"github.com/jinzhu/copier"
)

type PaymentMethodResponse struct {
	ID       string `json:"id"`
	Brand    string `json:"brand"`
	Last4    string `json:"last4"`
	ExpMonth int64  `json:"exp_month"`
	ExpYear  int64  `json:"exp_year"`
}

type SubscriptionResponse struct {
	// nil when the customer has no default card on file
	PaymentMethod *PaymentMethodResponse `json:"payment_method"`
}

func FromPaymentMethod(pm *commands.PaymentMethodSummary) (SubscriptionResponse, error) {
	if pm == nil {
		return SubscriptionResponse{}, nil
	}
	var res PaymentMethodResponse
	if err := copier.Copy(&res, pm); err != nil {
		return SubscriptionResponse{}, err
	}
	return SubscriptionResponse{PaymentMethod: &res}, nil
}
