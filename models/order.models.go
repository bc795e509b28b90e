package models

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrValidation marks order placement rejections. Wrapping errors carry the
// offending field.
var ErrValidation = errors.New("validation failed")

// Fulfillment statuses. The transition graph is total: an admin may set any
// valid status from any prior value.
const (
	StatusPending    = "Pending"
	StatusProcessing = "Processing"
	StatusShipped    = "Shipped"
	StatusDelivered  = "Delivered"
	StatusCancelled  = "Cancelled"
)

// Payment statuses, tracked separately from fulfillment.
const (
	PaymentPending = "Pending"
	PaymentPaid    = "Paid"
	PaymentFailed  = "Failed"
)

// Payment methods.
const (
	PaymentMethodCOD    = "COD"
	PaymentMethodOnline = "ONLINE"
)

// Customer is the shipping profile embedded in an order. Every field is
// required at placement.
type Customer struct {
	FirstName string `bson:"first_name" json:"firstName"`
	LastName  string `bson:"last_name" json:"lastName"`
	Email     string `bson:"email" json:"email"`
	Phone     string `bson:"phone" json:"phone"`
	Address   string `bson:"address" json:"address"`
	City      string `bson:"city" json:"city"`
	State     string `bson:"state" json:"state"`
	Pincode   string `bson:"pincode" json:"pincode"`
}

// OrderItem is a frozen product snapshot, not a live join to Product.
type OrderItem struct {
	ProductID primitive.ObjectID `bson:"product_id" json:"productId"`
	Name      string             `bson:"name" json:"name"`
	Price     float64            `bson:"price" json:"price"`
	Quantity  int                `bson:"quantity" json:"quantity"`
	Image     string             `bson:"image" json:"image"`
}

// Order is created once at checkout and never deleted. Only its status
// fields mutate afterwards.
type Order struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Customer      Customer           `bson:"customer" json:"customer"`
	Items         []OrderItem        `bson:"items" json:"items"`
	TotalAmount   float64            `bson:"total_amount" json:"totalAmount"`
	Status        string             `bson:"status" json:"status"`
	PaymentStatus string             `bson:"payment_status" json:"paymentStatus"`
	PaymentMethod string             `bson:"payment_method" json:"paymentMethod"`
	CreatedAt     time.Time          `bson:"created_at" json:"createdAt"`
}

// ValidStatus reports whether s is a known fulfillment status.
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// ValidPaymentStatus reports whether s is a known payment status.
func ValidPaymentStatus(s string) bool {
	switch s {
	case PaymentPending, PaymentPaid, PaymentFailed:
		return true
	}
	return false
}

func (c Customer) requiredFields() [][2]string {
	return [][2]string{
		{"firstName", c.FirstName},
		{"lastName", c.LastName},
		{"email", c.Email},
		{"phone", c.Phone},
		{"address", c.Address},
		{"city", c.City},
		{"state", c.State},
		{"pincode", c.Pincode},
	}
}

// Validate checks the placement contract: a complete shipping profile, a
// non-empty item list with sane quantities, and a submitted total that
// matches the line items. The total is recomputed server-side rather than
// trusted from the client.
func (o *Order) Validate() error {
	for _, field := range o.Customer.requiredFields() {
		if strings.TrimSpace(field[1]) == "" {
			return fmt.Errorf("customer %s is required: %w", field[0], ErrValidation)
		}
	}
	if len(o.Items) == 0 {
		return fmt.Errorf("order has no items: %w", ErrValidation)
	}

	sum := 0.0
	for _, item := range o.Items {
		if item.Quantity < 1 {
			return fmt.Errorf("item %q has quantity %d: %w", item.Name, item.Quantity, ErrValidation)
		}
		sum += item.Price * float64(item.Quantity)
	}
	if math.Abs(sum-o.TotalAmount) > 0.01 {
		return fmt.Errorf("total amount %.2f does not match line items %.2f: %w", o.TotalAmount, sum, ErrValidation)
	}
	return nil
}
