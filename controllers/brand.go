package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"mobistore/models"
	"mobistore/utils"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// BrandController manages the brand tiles shown on the homepage.
type BrandController struct {
	Collection *mongo.Collection
}

// NewBrandController creates a new BrandController.
func NewBrandController(client *mongo.Client) *BrandController {
	return &BrandController{
		Collection: client.Database(utils.DatabaseName).Collection("brands"),
	}
}

// GetBrands retrieves all brands, newest first.
func (bc *BrandController) GetBrands(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := bc.Collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to fetch brands")
		return
	}
	defer cursor.Close(ctx)

	brands := []models.Brand{}
	if err := cursor.All(ctx, &brands); err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to fetch brands")
		return
	}
	respondJSON(w, http.StatusOK, brands)
}

// CreateBrand adds a new brand (admin only). The slug is generated from the
// name.
func (bc *BrandController) CreateBrand(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name string `json:"name"`
		Logo string `json:"logo"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid input")
		return
	}
	if req.Name == "" {
		respondError(w, http.StatusBadRequest, "Name is required")
		return
	}

	brand := models.Brand{
		Name:      req.Name,
		Slug:      models.Slugify(req.Name),
		Logo:      req.Logo,
		CreatedAt: time.Now(),
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()
	result, err := bc.Collection.InsertOne(ctx, brand)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to add brand")
		return
	}
	brand.ID = result.InsertedID.(primitive.ObjectID)
	respondJSON(w, http.StatusCreated, brand)
}

// DeleteBrand removes a brand (admin only).
func (bc *BrandController) DeleteBrand(w http.ResponseWriter, r *http.Request) {
	params := mux.Vars(r)
	id, err := primitive.ObjectIDFromHex(params["id"])
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid brand ID")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()
	if _, err := bc.Collection.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to delete brand")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Brand deleted"})
}
