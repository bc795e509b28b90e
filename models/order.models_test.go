package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func validOrder() Order {
	return Order{
		Customer: Customer{
			FirstName: "Asha",
			LastName:  "Verma",
			Email:     "asha@example.com",
			Phone:     "9876543210",
			Address:   "12 MG Road",
			City:      "Pune",
			State:     "Maharashtra",
			Pincode:   "411001",
		},
		Items: []OrderItem{
			{ProductID: primitive.NewObjectID(), Name: "Charger", Price: 500, Quantity: 2, Image: "a.jpg"},
			{ProductID: primitive.NewObjectID(), Name: "Case", Price: 1000, Quantity: 1, Image: "b.jpg"},
		},
		TotalAmount:   2000,
		PaymentMethod: PaymentMethodCOD,
	}
}

func TestOrderValidateAccepts(t *testing.T) {
	order := validOrder()
	require.NoError(t, order.Validate())
}

func TestOrderValidateRequiresCustomerFields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Order)
	}{
		{"firstName", func(o *Order) { o.Customer.FirstName = "" }},
		{"lastName", func(o *Order) { o.Customer.LastName = "" }},
		{"email", func(o *Order) { o.Customer.Email = "" }},
		{"phone", func(o *Order) { o.Customer.Phone = "" }},
		{"address", func(o *Order) { o.Customer.Address = "  " }},
		{"city", func(o *Order) { o.Customer.City = "" }},
		{"state", func(o *Order) { o.Customer.State = "" }},
		{"pincode", func(o *Order) { o.Customer.Pincode = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			order := validOrder()
			tt.mutate(&order)

			err := order.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrValidation)
			assert.Contains(t, err.Error(), tt.name)
		})
	}
}

func TestOrderValidateRejectsEmptyItems(t *testing.T) {
	order := validOrder()
	order.Items = nil
	order.TotalAmount = 0

	assert.ErrorIs(t, order.Validate(), ErrValidation)
}

func TestOrderValidateRejectsZeroQuantity(t *testing.T) {
	order := validOrder()
	order.Items[0].Quantity = 0

	assert.ErrorIs(t, order.Validate(), ErrValidation)
}

func TestOrderValidateRecomputesTotal(t *testing.T) {
	order := validOrder()
	order.TotalAmount = 1500

	err := order.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestValidStatus(t *testing.T) {
	for _, s := range []string{StatusPending, StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled} {
		assert.True(t, ValidStatus(s), s)
	}
	assert.False(t, ValidStatus("Paid"))
	assert.False(t, ValidStatus("pending"))
	assert.False(t, ValidStatus(""))
}

func TestValidPaymentStatus(t *testing.T) {
	for _, s := range []string{PaymentPending, PaymentPaid, PaymentFailed} {
		assert.True(t, ValidPaymentStatus(s), s)
	}
	assert.False(t, ValidPaymentStatus("Shipped"))
	assert.False(t, ValidPaymentStatus(""))
}
