package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// CartItem is a frozen snapshot of a product at the time it was added to the
// cart, independent of later edits to the live Product record.
type CartItem struct {
	ProductID primitive.ObjectID `bson:"product_id" json:"productId"`
	Name      string             `bson:"name" json:"name"`
	Price     float64            `bson:"price" json:"price"`
	Image     string             `bson:"image" json:"image"`
	Quantity  int                `bson:"quantity" json:"quantity"`
}

// Cart holds one user's line items. Invariant: one CartItem per distinct
// product id; repeated adds merge quantities.
type Cart struct {
	UserID string     `json:"userId"`
	Items  []CartItem `json:"items"`
}

// Add merges item into the cart. A quantity below 1 is treated as a quick-add
// of a single unit.
func (c *Cart) Add(item CartItem) {
	if item.Quantity < 1 {
		item.Quantity = 1
	}
	for i := range c.Items {
		if c.Items[i].ProductID == item.ProductID {
			c.Items[i].Quantity += item.Quantity
			return
		}
	}
	c.Items = append(c.Items, item)
}

// Remove deletes the matching item. Removing an absent product is a no-op.
func (c *Cart) Remove(productID primitive.ObjectID) {
	items := c.Items[:0]
	for _, item := range c.Items {
		if item.ProductID != productID {
			items = append(items, item)
		}
	}
	c.Items = items
}

// SetQuantity clamps quantity to a minimum of 1 and no-ops when the product
// is not in the cart.
func (c *Cart) SetQuantity(productID primitive.ObjectID, quantity int) {
	if quantity < 1 {
		quantity = 1
	}
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items[i].Quantity = quantity
			return
		}
	}
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.Items = nil
}

// Count is the badge count: the sum of quantities across all items.
func (c *Cart) Count() int {
	count := 0
	for _, item := range c.Items {
		count += item.Quantity
	}
	return count
}
