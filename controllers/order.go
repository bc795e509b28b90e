package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"regexp"
	"strings"
	"time"

	"mobistore/models"
	"mobistore/utils"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// OrderController handles checkout and order lifecycle requests.
type OrderController struct {
	Collection   *mongo.Collection
	EmailService *utils.EmailService
}

// NewOrderController creates a new OrderController.
func NewOrderController(client *mongo.Client, emailService *utils.EmailService) *OrderController {
	return &OrderController{
		Collection:   client.Database(utils.DatabaseName).Collection("orders"),
		EmailService: emailService,
	}
}

// PlaceOrder persists a checkout submission. Guest checkout is allowed; the
// embedded shipping profile identifies the customer. The submitted total is
// validated against the line items and stock is not decremented.
func (oc *OrderController) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	var order models.Order
	if err := json.NewDecoder(r.Body).Decode(&order); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid input")
		return
	}
	if err := order.Validate(); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	order.ID = primitive.NilObjectID
	order.Status = models.StatusPending
	order.PaymentStatus = models.PaymentPending
	switch strings.ToUpper(order.PaymentMethod) {
	case "", models.PaymentMethodCOD:
		order.PaymentMethod = models.PaymentMethodCOD
	case models.PaymentMethodOnline:
		order.PaymentMethod = models.PaymentMethodOnline
		// Demo gateway: online payments settle immediately.
		order.PaymentStatus = models.PaymentPaid
	default:
		respondError(w, http.StatusBadRequest, "Invalid payment method")
		return
	}
	order.CreatedAt = time.Now()

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()
	result, err := oc.Collection.InsertOne(ctx, order)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Order creation failed")
		return
	}
	order.ID = result.InsertedID.(primitive.ObjectID)

	go func(order models.Order) {
		if err := oc.EmailService.SendOrderConfirmationEmail(order.Customer.Email, order); err != nil {
			log.Error().Err(err).Str("email", order.Customer.Email).Msg("failed to send order confirmation")
		}
	}(order)

	respondJSON(w, http.StatusCreated, map[string]interface{}{
		"success": true,
		"orderId": order.ID.Hex(),
	})
}

// GetOrders returns every order, newest first (admin view).
func (oc *OrderController) GetOrders(w http.ResponseWriter, r *http.Request) {
	oc.listOrders(w, r, bson.M{})
}

// MyOrders returns the session user's orders, matching the checkout email
// case-insensitively.
func (oc *OrderController) MyOrders(w http.ResponseWriter, r *http.Request) {
	claims, ok := requestUser(r)
	if !ok {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	filter := bson.M{"customer.email": bson.M{
		"$regex":   "^" + regexp.QuoteMeta(claims.Email) + "$",
		"$options": "i",
	}}
	oc.listOrders(w, r, filter)
}

func (oc *OrderController) listOrders(w http.ResponseWriter, r *http.Request, filter bson.M) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := oc.Collection.Find(ctx, filter, opts)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to retrieve orders")
		return
	}
	defer cursor.Close(ctx)

	orders := []models.Order{}
	if err := cursor.All(ctx, &orders); err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to retrieve orders")
		return
	}
	respondJSON(w, http.StatusOK, orders)
}

// GetOrder returns one order by id. Public: the order-success page looks the
// order up right after checkout.
func (oc *OrderController) GetOrder(w http.ResponseWriter, r *http.Request) {
	params := mux.Vars(r)
	id, err := primitive.ObjectIDFromHex(params["id"])
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid order ID")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()
	var order models.Order
	err = oc.Collection.FindOne(ctx, bson.M{"_id": id}).Decode(&order)
	if errors.Is(err, mongo.ErrNoDocuments) {
		respondError(w, http.StatusNotFound, "Order not found")
		return
	}
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to retrieve order")
		return
	}
	respondJSON(w, http.StatusOK, order)
}

// UpdateStatus overwrites the fulfillment status (admin only). Any valid
// status may be set from any prior value; the policy lives in setOrderField
// so a transition table can be introduced without touching callers.
func (oc *OrderController) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid input")
		return
	}
	if !models.ValidStatus(req.Status) {
		respondError(w, http.StatusBadRequest, "Invalid status")
		return
	}
	oc.setOrderField(w, r, "status", req.Status)
}

// UpdatePaymentStatus records payment settlement (admin only).
func (oc *OrderController) UpdatePaymentStatus(w http.ResponseWriter, r *http.Request) {
	var req struct {
		PaymentStatus string `json:"paymentStatus"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid input")
		return
	}
	if !models.ValidPaymentStatus(req.PaymentStatus) {
		respondError(w, http.StatusBadRequest, "Invalid payment status")
		return
	}
	oc.setOrderField(w, r, "payment_status", req.PaymentStatus)
}

// setOrderField is the single point through which order status fields
// change.
func (oc *OrderController) setOrderField(w http.ResponseWriter, r *http.Request, field, value string) {
	params := mux.Vars(r)
	id, err := primitive.ObjectIDFromHex(params["id"])
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid order ID")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated models.Order
	err = oc.Collection.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{field: value}},
		opts,
	).Decode(&updated)
	if errors.Is(err, mongo.ErrNoDocuments) {
		respondError(w, http.StatusNotFound, "Order not found")
		return
	}
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to update order")
		return
	}
	respondJSON(w, http.StatusOK, updated)
}
