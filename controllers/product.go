package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
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

// ProductController handles catalog requests.
type ProductController struct {
	Collection *mongo.Collection
}

// NewProductController creates a new ProductController.
func NewProductController(client *mongo.Client) *ProductController {
	return &ProductController{
		Collection: client.Database(utils.DatabaseName).Collection("products"),
	}
}

// productInput lets inStock default to true when the field is absent.
type productInput struct {
	models.Product
	InStock *bool `json:"inStock"`
}

func (in productInput) toProduct() models.Product {
	product := in.Product
	product.InStock = in.InStock == nil || *in.InStock
	if product.Rating == 0 {
		product.Rating = models.DefaultRating
	}
	product.CreatedAt = time.Now()
	return product
}

// GetProducts retrieves the catalog, optionally narrowed by category, brand
// or a case-insensitive name search.
func (pc *ProductController) GetProducts(w http.ResponseWriter, r *http.Request) {
	filter := bson.M{}
	query := r.URL.Query()
	if v := query.Get("category"); v != "" {
		filter["category"] = v
	}
	if v := query.Get("brand"); v != "" {
		filter["brand"] = v
	}
	if v := query.Get("search"); v != "" {
		filter["name"] = bson.M{"$regex": v, "$options": "i"}
	}

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	cursor, err := pc.Collection.Find(ctx, filter)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Error fetching products")
		return
	}
	defer cursor.Close(ctx)

	products := []models.Product{}
	if err := cursor.All(ctx, &products); err != nil {
		respondError(w, http.StatusInternalServerError, "Error reading products")
		return
	}
	respondJSON(w, http.StatusOK, products)
}

// GetProductByID retrieves a single product by ID.
func (pc *ProductController) GetProductByID(w http.ResponseWriter, r *http.Request) {
	params := mux.Vars(r)
	id, err := primitive.ObjectIDFromHex(params["id"])
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid product ID")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var product models.Product
	if err := pc.Collection.FindOne(ctx, bson.M{"_id": id}).Decode(&product); err != nil {
		respondError(w, http.StatusNotFound, "Product not found")
		return
	}
	respondJSON(w, http.StatusOK, product)
}

// CreateProduct handles adding a new product (Admin only). A JSON array body
// reseeds the whole collection instead, replacing every product.
func (pc *ProductController) CreateProduct(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	trimmed := bytes.TrimLeft(body, " \t\r\n")
	if len(trimmed) > 0 && trimmed[0] == '[' {
		pc.seed(w, r, body)
		return
	}

	var input productInput
	if err := json.Unmarshal(body, &input); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid input")
		return
	}
	product := input.toProduct()
	if product.Name == "" || product.Price <= 0 {
		respondError(w, http.StatusBadRequest, "Name and a positive price are required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()
	result, err := pc.Collection.InsertOne(ctx, product)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Error creating product")
		return
	}

	respondJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "Product added successfully",
		"id":      result.InsertedID,
	})
}

// seed wipes the catalog and inserts the posted products.
func (pc *ProductController) seed(w http.ResponseWriter, r *http.Request, body []byte) {
	var inputs []productInput
	if err := json.Unmarshal(body, &inputs); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	docs := make([]interface{}, len(inputs))
	for i, input := range inputs {
		docs[i] = input.toProduct()
	}

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()
	if _, err := pc.Collection.DeleteMany(ctx, bson.M{}); err != nil {
		respondError(w, http.StatusInternalServerError, "Error seeding products")
		return
	}
	if len(docs) > 0 {
		if _, err := pc.Collection.InsertMany(ctx, docs); err != nil {
			respondError(w, http.StatusInternalServerError, "Error seeding products")
			return
		}
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Database seeded successfully"})
}

// UpdateProduct handles updating a product (Admin only). Edits are
// destructive overwrites of the stored document.
func (pc *ProductController) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	params := mux.Vars(r)
	id, err := primitive.ObjectIDFromHex(params["id"])
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid product ID")
		return
	}

	var input productInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid input")
		return
	}
	product := input.toProduct()
	product.ID = primitive.NilObjectID
	product.CreatedAt = time.Time{}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated models.Product
	err = pc.Collection.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": product},
		opts,
	).Decode(&updated)
	if errors.Is(err, mongo.ErrNoDocuments) {
		respondError(w, http.StatusNotFound, "Product not found")
		return
	}
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Error updating product")
		return
	}
	respondJSON(w, http.StatusOK, updated)
}

// DeleteProduct handles deleting a product (Admin only).
func (pc *ProductController) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	params := mux.Vars(r)
	id, err := primitive.ObjectIDFromHex(params["id"])
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid product ID")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()
	result, err := pc.Collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Error deleting product")
		return
	}
	if result.DeletedCount == 0 {
		respondError(w, http.StatusNotFound, "Product not found")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Product deleted"})
}
