package validator

import (
	"testing"

	domainerrors "canteen/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type line struct {
	MenuItemID string `json:"menuItemId" validate:"required"`
	Quantity   int    `json:"quantity" validate:"min=1"`
}

type checkout struct {
	Items         []line `json:"items" validate:"required,min=1,dive"`
	PaymentMethod string `json:"paymentMethod" validate:"required,oneof=gpay phonepe paytm other"`
	Email         string `json:"email" validate:"omitempty,email"`
}

func TestValidator_Validate(t *testing.T) {
	v := New()

	require.NoError(t, v.Validate(&checkout{
		Items:         []line{{MenuItemID: "m1", Quantity: 2}},
		PaymentMethod: "gpay",
	}))

	err := v.Validate(&checkout{
		Items:         []line{{Quantity: 0}},
		PaymentMethod: "cash",
		Email:         "not-an-email",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Contains(t, appErr.Details(), "items[0].menuItemId is required")
	assert.Contains(t, appErr.Details(), "items[0].quantity must be at least 1")
	assert.Contains(t, appErr.Details(), "paymentMethod must be one of [gpay phonepe paytm other]")
	assert.Contains(t, appErr.Details(), "email must be a valid email address")
}
