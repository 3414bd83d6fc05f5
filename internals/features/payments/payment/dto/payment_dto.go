package dto

type CreatePaymentRequest struct {
	Amount      float64 `json:"amount"`
	Type        string  `json:"type"`
	ProviderRef string  `json:"providerRef"`
}

type TopUpRequest struct {
	Amount float64 `json:"amount"`
}
