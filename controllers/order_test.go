package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"mobistore/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Placement requests that fail validation are rejected before any store
// access, so a zero-value controller is enough for these tests.

func checkoutBody(t *testing.T, mutate func(*models.Order)) *bytes.Reader {
	t.Helper()
	order := models.Order{
		Customer: models.Customer{
			FirstName: "Asha",
			LastName:  "Verma",
			Email:     "asha@example.com",
			Phone:     "9876543210",
			Address:   "12 MG Road",
			City:      "Pune",
			State:     "Maharashtra",
			Pincode:   "411001",
		},
		Items: []models.OrderItem{
			{ProductID: primitive.NewObjectID(), Name: "Charger", Price: 500, Quantity: 2, Image: "a.jpg"},
		},
		TotalAmount:   1000,
		PaymentMethod: models.PaymentMethodCOD,
	}
	if mutate != nil {
		mutate(&order)
	}
	body, err := json.Marshal(order)
	require.NoError(t, err)
	return bytes.NewReader(body)
}

func TestPlaceOrderRejectsIncompleteProfile(t *testing.T) {
	oc := &OrderController{}

	r := httptest.NewRequest("POST", "/orders", checkoutBody(t, func(o *models.Order) {
		o.Customer.Pincode = ""
	}))
	w := httptest.NewRecorder()

	oc.PlaceOrder(w, r)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "pincode")
}

func TestPlaceOrderRejectsEmptyItems(t *testing.T) {
	oc := &OrderController{}

	r := httptest.NewRequest("POST", "/orders", checkoutBody(t, func(o *models.Order) {
		o.Items = nil
		o.TotalAmount = 0
	}))
	w := httptest.NewRecorder()

	oc.PlaceOrder(w, r)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPlaceOrderRejectsTotalMismatch(t *testing.T) {
	oc := &OrderController{}

	r := httptest.NewRequest("POST", "/orders", checkoutBody(t, func(o *models.Order) {
		o.TotalAmount = 750
	}))
	w := httptest.NewRecorder()

	oc.PlaceOrder(w, r)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "total amount")
}

func TestPlaceOrderRejectsUnknownPaymentMethod(t *testing.T) {
	oc := &OrderController{}

	r := httptest.NewRequest("POST", "/orders", checkoutBody(t, func(o *models.Order) {
		o.PaymentMethod = "UPI"
	}))
	w := httptest.NewRecorder()

	oc.PlaceOrder(w, r)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "payment method")
}

func TestPlaceOrderRejectsMalformedBody(t *testing.T) {
	oc := &OrderController{}

	r := httptest.NewRequest("POST", "/orders", bytes.NewReader([]byte("{")))
	w := httptest.NewRecorder()

	oc.PlaceOrder(w, r)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateStatusRejectsUnknownStatus(t *testing.T) {
	oc := &OrderController{}

	r := httptest.NewRequest("PUT", "/orders/1/status",
		bytes.NewReader([]byte(`{"status":"Teleported"}`)))
	w := httptest.NewRecorder()

	oc.UpdateStatus(w, r)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid status")
}

func TestUpdatePaymentStatusRejectsUnknownStatus(t *testing.T) {
	oc := &OrderController{}

	r := httptest.NewRequest("PUT", "/orders/1/payment",
		bytes.NewReader([]byte(`{"paymentStatus":"Refunded"}`)))
	w := httptest.NewRecorder()

	oc.UpdatePaymentStatus(w, r)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCartViewPricesInclusive(t *testing.T) {
	cart := models.Cart{Items: []models.CartItem{
		{ProductID: primitive.NewObjectID(), Price: 500, Quantity: 2},
		{ProductID: primitive.NewObjectID(), Price: 1000, Quantity: 1},
	}}

	view := cartView(cart)
	summary, ok := view["summary"].(models.CartSummary)
	require.True(t, ok)
	assert.Equal(t, 2000.0, summary.Total)
	assert.InDelta(t, 2000*18.0/118.0, summary.Tax, 0.001)
}
