package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"mobistore/models"
	"mobistore/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// PopupController manages the single promotional popup document.
type PopupController struct {
	Collection *mongo.Collection
}

// NewPopupController creates a new PopupController.
func NewPopupController(client *mongo.Client) *PopupController {
	return &PopupController{
		Collection: client.Database(utils.DatabaseName).Collection("popup"),
	}
}

// GetPopup returns the popup singleton, creating the default document on
// first read.
func (pc *PopupController) GetPopup(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var popup models.Popup
	err := pc.Collection.FindOne(ctx, bson.M{}).Decode(&popup)
	if errors.Is(err, mongo.ErrNoDocuments) {
		popup = models.DefaultPopup()
		result, insertErr := pc.Collection.InsertOne(ctx, popup)
		if insertErr != nil {
			respondError(w, http.StatusInternalServerError, "Fetch failed")
			return
		}
		popup.ID = result.InsertedID.(primitive.ObjectID)
	} else if err != nil {
		respondError(w, http.StatusInternalServerError, "Fetch failed")
		return
	}

	respondJSON(w, http.StatusOK, popup)
}

// UpdatePopup upserts the single popup document (admin only).
func (pc *PopupController) UpdatePopup(w http.ResponseWriter, r *http.Request) {
	var popup models.Popup
	if err := json.NewDecoder(r.Body).Decode(&popup); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)
	var updated models.Popup
	err := pc.Collection.FindOneAndUpdate(ctx,
		bson.M{},
		bson.M{"$set": bson.M{
			"title":      popup.Title,
			"subtitle":   popup.Subtitle,
			"image":      popup.Image,
			"link":       popup.Link,
			"is_active":  popup.IsActive,
			"updated_at": time.Now(),
		}},
		opts,
	).Decode(&updated)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Update failed")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{"success": true, "popup": updated})
}
