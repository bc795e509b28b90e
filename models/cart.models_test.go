package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func cartItem(id primitive.ObjectID, price float64, quantity int) CartItem {
	return CartItem{
		ProductID: id,
		Name:      "Case",
		Price:     price,
		Image:     "https://cdn.example.com/case.jpg",
		Quantity:  quantity,
	}
}

func TestCartAddMergesQuantities(t *testing.T) {
	id := primitive.NewObjectID()
	cart := Cart{}

	cart.Add(cartItem(id, 499, 2))
	cart.Add(cartItem(id, 499, 3))

	require.Len(t, cart.Items, 1)
	assert.Equal(t, 5, cart.Items[0].Quantity)
}

func TestCartAddDefaultsQuantityToOne(t *testing.T) {
	cart := Cart{}
	cart.Add(cartItem(primitive.NewObjectID(), 499, 0))

	require.Len(t, cart.Items, 1)
	assert.Equal(t, 1, cart.Items[0].Quantity)
}

func TestCartAddKeepsDistinctProducts(t *testing.T) {
	cart := Cart{}
	cart.Add(cartItem(primitive.NewObjectID(), 499, 1))
	cart.Add(cartItem(primitive.NewObjectID(), 999, 1))

	assert.Len(t, cart.Items, 2)
}

func TestCartRemoveIsIdempotent(t *testing.T) {
	id := primitive.NewObjectID()
	cart := Cart{}
	cart.Add(cartItem(id, 499, 2))

	cart.Remove(id)
	assert.Empty(t, cart.Items)

	// Second removal of the same id is a no-op.
	cart.Remove(id)
	assert.Empty(t, cart.Items)
}

func TestCartSetQuantityClampsToOne(t *testing.T) {
	id := primitive.NewObjectID()
	cart := Cart{}
	cart.Add(cartItem(id, 499, 3))

	cart.SetQuantity(id, 0)
	assert.Equal(t, 1, cart.Items[0].Quantity)

	cart.SetQuantity(id, 7)
	assert.Equal(t, 7, cart.Items[0].Quantity)
}

func TestCartSetQuantityIgnoresAbsentProduct(t *testing.T) {
	cart := Cart{}
	cart.Add(cartItem(primitive.NewObjectID(), 499, 2))

	cart.SetQuantity(primitive.NewObjectID(), 9)

	require.Len(t, cart.Items, 1)
	assert.Equal(t, 2, cart.Items[0].Quantity)
}

func TestCartClear(t *testing.T) {
	cart := Cart{}
	cart.Add(cartItem(primitive.NewObjectID(), 499, 2))

	cart.Clear()
	assert.Empty(t, cart.Items)
	assert.Zero(t, cart.Count())
}

func TestCartCountSumsQuantities(t *testing.T) {
	cart := Cart{}
	cart.Add(cartItem(primitive.NewObjectID(), 499, 2))
	cart.Add(cartItem(primitive.NewObjectID(), 999, 3))

	assert.Equal(t, 5, cart.Count())
}
