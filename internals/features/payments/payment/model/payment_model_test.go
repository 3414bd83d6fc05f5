package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreditsForTopup(t *testing.T) {
	assert.Equal(t, 5, CreditsForTopup(TypeCreditTopup, 50))
	assert.Equal(t, 5, CreditsForTopup(TypeCreditTopup, 59.99))
	assert.Equal(t, 0, CreditsForTopup(TypeCreditTopup, 9.99))
	assert.Equal(t, 0, CreditsForTopup(TypeCreditTopup, 0))
	assert.Equal(t, 0, CreditsForTopup(TypeCreditTopup, -50))

	// Only top-ups earn credits.
	assert.Equal(t, 0, CreditsForTopup(TypeReport, 50))
	assert.Equal(t, 0, CreditsForTopup(TypeSubscription, 50))
}

// Two top-ups of 50 stay independent: each earns its own 5 credits,
// they are never merged into one balance row.
func TestTopupsAreIndependent(t *testing.T) {
	first := PaymentModel{Type: TypeCreditTopup, Amount: 50, Credits: CreditsForTopup(TypeCreditTopup, 50)}
	second := PaymentModel{Type: TypeCreditTopup, Amount: 50, Credits: CreditsForTopup(TypeCreditTopup, 50)}

	assert.Equal(t, 5, first.Credits)
	assert.Equal(t, 5, second.Credits)
}

func TestIsValidType(t *testing.T) {
	assert.True(t, IsValidType(TypeReport))
	assert.True(t, IsValidType(TypeSubscription))
	assert.True(t, IsValidType(TypeCreditTopup))
	assert.False(t, IsValidType("refund"))
	assert.False(t, IsValidType(""))
}
