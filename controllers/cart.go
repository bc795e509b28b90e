package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"mobistore/models"

	"github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Tax convention, fixed once for the whole storefront: line prices are MRP
// and GST is back-calculated for display.
const taxPolicy = models.TaxInclusive

const cartKeyPrefix = "cart:"
const cartTTL = 30 * 24 * time.Hour

// CartController keeps per-user carts in Redis. The cart is a best-effort
// cache mirroring what the client holds: storage failures are logged and the
// request carries on, and a placed order never reads from it.
type CartController struct {
	Redis *redis.Client
}

// NewCartController creates a new CartController.
func NewCartController(rdb *redis.Client) *CartController {
	return &CartController{Redis: rdb}
}

func (cc *CartController) loadCart(ctx context.Context, userID string) models.Cart {
	cart := models.Cart{UserID: userID}
	data, err := cc.Redis.Get(ctx, cartKeyPrefix+userID).Result()
	if err != nil {
		if err != redis.Nil {
			log.Warn().Err(err).Str("user", userID).Msg("cart load failed")
		}
		return cart
	}
	if err := json.Unmarshal([]byte(data), &cart); err != nil {
		log.Warn().Err(err).Str("user", userID).Msg("cart decode failed")
	}
	cart.UserID = userID
	return cart
}

func (cc *CartController) saveCart(ctx context.Context, cart models.Cart) {
	data, err := json.Marshal(cart)
	if err == nil {
		err = cc.Redis.Set(ctx, cartKeyPrefix+cart.UserID, data, cartTTL).Err()
	}
	if err != nil {
		log.Warn().Err(err).Str("user", cart.UserID).Msg("cart save failed")
	}
}

// cartView is the response shape for every cart endpoint: the items plus
// the priced summary under the configured tax policy.
func cartView(cart models.Cart) map[string]interface{} {
	if cart.Items == nil {
		cart.Items = []models.CartItem{}
	}
	return map[string]interface{}{
		"items":   cart.Items,
		"summary": models.PriceCart(cart.Items, taxPolicy),
	}
}

// AddToCart adds a product snapshot to the user's cart, merging quantities
// on repeated adds of the same product.
func (cc *CartController) AddToCart(w http.ResponseWriter, r *http.Request) {
	claims, ok := requestUser(r)
	if !ok {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var item models.CartItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid input")
		return
	}
	if item.ProductID.IsZero() {
		respondError(w, http.StatusBadRequest, "Product ID is required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()
	cart := cc.loadCart(ctx, claims.UserID)
	cart.Add(item)
	cc.saveCart(ctx, cart)

	respondJSON(w, http.StatusOK, cartView(cart))
}

// GetCart retrieves the user's cart with its priced summary.
func (cc *CartController) GetCart(w http.ResponseWriter, r *http.Request) {
	claims, ok := requestUser(r)
	if !ok {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()
	cart := cc.loadCart(ctx, claims.UserID)

	respondJSON(w, http.StatusOK, cartView(cart))
}

// UpdateQuantity sets a line item quantity, clamped to a minimum of 1.
// Setting the quantity of a product not in the cart is a no-op.
func (cc *CartController) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	claims, ok := requestUser(r)
	if !ok {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	params := mux.Vars(r)
	productID, err := primitive.ObjectIDFromHex(params["product_id"])
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid product ID")
		return
	}

	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()
	cart := cc.loadCart(ctx, claims.UserID)
	cart.SetQuantity(productID, req.Quantity)
	cc.saveCart(ctx, cart)

	respondJSON(w, http.StatusOK, cartView(cart))
}

// RemoveFromCart removes a product from the user's cart. Removing an absent
// product succeeds.
func (cc *CartController) RemoveFromCart(w http.ResponseWriter, r *http.Request) {
	claims, ok := requestUser(r)
	if !ok {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	params := mux.Vars(r)
	productID, err := primitive.ObjectIDFromHex(params["product_id"])
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid product ID")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()
	cart := cc.loadCart(ctx, claims.UserID)
	cart.Remove(productID)
	cc.saveCart(ctx, cart)

	respondJSON(w, http.StatusOK, cartView(cart))
}

// ClearCart empties the user's cart, e.g. after a successful checkout.
func (cc *CartController) ClearCart(w http.ResponseWriter, r *http.Request) {
	claims, ok := requestUser(r)
	if !ok {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()
	if err := cc.Redis.Del(ctx, cartKeyPrefix+claims.UserID).Err(); err != nil {
		log.Warn().Err(err).Str("user", claims.UserID).Msg("cart clear failed")
	}

	respondJSON(w, http.StatusOK, cartView(models.Cart{UserID: claims.UserID}))
}
