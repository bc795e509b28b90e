package controllers

import (
	"context"
	"encoding/json"
	"errors"
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

// NavigationController manages the storefront header menu groups.
type NavigationController struct {
	Collection *mongo.Collection
}

// NewNavigationController creates a new NavigationController.
func NewNavigationController(client *mongo.Client) *NavigationController {
	return &NavigationController{
		Collection: client.Database(utils.DatabaseName).Collection("navigation"),
	}
}

// GetNavigation retrieves all menu groups.
func (nc *NavigationController) GetNavigation(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	cursor, err := nc.Collection.Find(ctx, bson.M{})
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to fetch navigation")
		return
	}
	defer cursor.Close(ctx)

	groups := []models.Navigation{}
	if err := cursor.All(ctx, &groups); err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to fetch navigation")
		return
	}
	respondJSON(w, http.StatusOK, groups)
}

// CreateNavigation adds a new menu group (admin only).
func (nc *NavigationController) CreateNavigation(w http.ResponseWriter, r *http.Request) {
	var group models.Navigation
	if err := json.NewDecoder(r.Body).Decode(&group); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid input")
		return
	}
	if group.Title == "" {
		respondError(w, http.StatusBadRequest, "Title is required")
		return
	}
	if !models.ValidNavType(group.Type) {
		respondError(w, http.StatusBadRequest, "Invalid navigation type")
		return
	}
	if group.Items == nil {
		group.Items = []string{}
	}
	group.ID = primitive.NilObjectID

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()
	result, err := nc.Collection.InsertOne(ctx, group)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to create item")
		return
	}
	group.ID = result.InsertedID.(primitive.ObjectID)
	respondJSON(w, http.StatusCreated, group)
}

// UpdateNavigation edits a menu group (admin only).
func (nc *NavigationController) UpdateNavigation(w http.ResponseWriter, r *http.Request) {
	params := mux.Vars(r)
	id, err := primitive.ObjectIDFromHex(params["id"])
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid navigation ID")
		return
	}

	var group models.Navigation
	if err := json.NewDecoder(r.Body).Decode(&group); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid input")
		return
	}
	if !models.ValidNavType(group.Type) {
		respondError(w, http.StatusBadRequest, "Invalid navigation type")
		return
	}
	if group.Items == nil {
		group.Items = []string{}
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated models.Navigation
	err = nc.Collection.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{
			"type":  group.Type,
			"title": group.Title,
			"items": group.Items,
			"image": group.Image,
		}},
		opts,
	).Decode(&updated)
	if errors.Is(err, mongo.ErrNoDocuments) {
		respondError(w, http.StatusNotFound, "Item not found")
		return
	}
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Update failed")
		return
	}
	respondJSON(w, http.StatusOK, updated)
}

// DeleteNavigation removes a menu group (admin only).
func (nc *NavigationController) DeleteNavigation(w http.ResponseWriter, r *http.Request) {
	params := mux.Vars(r)
	id, err := primitive.ObjectIDFromHex(params["id"])
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid navigation ID")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()
	if _, err := nc.Collection.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		respondError(w, http.StatusInternalServerError, "Delete failed")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Deleted"})
}
