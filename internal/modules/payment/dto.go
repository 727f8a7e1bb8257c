package payment

type CreatePaymentIntentRequest struct {
	Amount        float64           `json:"amount" binding:"required,gt=0"`
	Currency      string            `json:"currency" binding:"required"`
	Metadata      map[string]string `json:"metadata"`
	CustomerEmail string            `json:"customerEmail" binding:"omitempty,email"`
}

type CreatePaymentIntentResponse struct {
	ClientSecret    string `json:"clientSecret"`
	PaymentIntentID string `json:"paymentIntentId"`
}
