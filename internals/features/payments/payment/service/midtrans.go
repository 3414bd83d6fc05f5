package service

import (
	"fmt"

	midtrans "github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/coreapi"
)

// Verifier answers whether an external payment reference has settled.
// The payment controller depends on this interface, not on the SDK.
type Verifier interface {
	IsSettled(providerRef string) (bool, error)
}

// MidtransVerifier checks transaction status against the Midtrans Core
// API. One call per payment, no retry.
type MidtransVerifier struct {
	client coreapi.Client
}

func NewMidtransVerifier(serverKey string) *MidtransVerifier {
	v := &MidtransVerifier{}
	v.client.New(serverKey, midtrans.Sandbox)
	return v
}

func (v *MidtransVerifier) IsSettled(providerRef string) (bool, error) {
	resp, err := v.client.CheckTransaction(providerRef)
	if err != nil {
		return false, fmt.Errorf("midtrans check transaction: %w", err)
	}
	switch resp.TransactionStatus {
	case "capture", "settlement":
		return true, nil
	}
	return false, nil
}
