package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type lineRequest struct {
	ProductID string `json:"productId" validate:"required,uuid"`
	Quantity  int    `json:"quantity" validate:"gte=0"`
}

type orderRequest struct {
	BranchID     string        `json:"branchId" validate:"required,uuid"`
	Products     []lineRequest `json:"products" validate:"required,min=1,dive"`
	DeliveryDate string        `json:"deliveryDate" validate:"required,datetime=2006-01-02"`
}

func TestRequestValidator_Validate(t *testing.T) {
	v := New()

	tests := []struct {
		name     string
		input    orderRequest
		contains []string
	}{
		{
			name: "valid request",
			input: orderRequest{
				BranchID:     "5b0c7f4e-3d0a-4b3f-9a57-2f6f7d9a1c11",
				Products:     []lineRequest{{ProductID: "0e7b1c44-55a1-4f73-8d55-6f1a1f0d2b22", Quantity: 2}},
				DeliveryDate: "2024-03-05",
			},
		},
		{
			name:     "missing fields use json names",
			input:    orderRequest{},
			contains: []string{"branchId is required", "products is required", "deliveryDate is required"},
		},
		{
			name: "nested line errors",
			input: orderRequest{
				BranchID:     "not-a-uuid",
				Products:     []lineRequest{{ProductID: "x", Quantity: -1}},
				DeliveryDate: "05/03/2024",
			},
			contains: []string{
				"branchId must be a valid UUID",
				"products[0].productId must be a valid UUID",
				"products[0].quantity must be greater than or equal to 0",
				"deliveryDate must match the date layout 2006-01-02",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.input)
			if len(tt.contains) == 0 {
				require.NoError(t, err)

				return
			}

			require.Error(t, err)
			for _, msg := range tt.contains {
				assert.Contains(t, err.Error(), msg)
			}
		})
	}
}
