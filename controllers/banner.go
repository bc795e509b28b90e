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

// BannerController manages homepage hero banners.
type BannerController struct {
	Collection *mongo.Collection
}

// NewBannerController creates a new BannerController.
func NewBannerController(client *mongo.Client) *BannerController {
	return &BannerController{
		Collection: client.Database(utils.DatabaseName).Collection("banners"),
	}
}

// bannerInput lets active default to true when the field is absent.
type bannerInput struct {
	models.Banner
	Active *bool `json:"active"`
}

func (in bannerInput) toBanner() models.Banner {
	banner := in.Banner
	banner.Active = in.Active == nil || *in.Active
	if banner.Link == "" {
		banner.Link = models.DefaultBannerLink
	}
	return banner
}

// GetBanners retrieves all banners, newest first.
func (bc *BannerController) GetBanners(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := bc.Collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to fetch banners")
		return
	}
	defer cursor.Close(ctx)

	banners := []models.Banner{}
	if err := cursor.All(ctx, &banners); err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to fetch banners")
		return
	}
	respondJSON(w, http.StatusOK, banners)
}

// CreateBanner adds a new banner (admin only).
func (bc *BannerController) CreateBanner(w http.ResponseWriter, r *http.Request) {
	var input bannerInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid input")
		return
	}
	banner := input.toBanner()
	if banner.Title == "" || banner.Image == "" {
		respondError(w, http.StatusBadRequest, "Title and image are required")
		return
	}
	banner.CreatedAt = time.Now()

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()
	result, err := bc.Collection.InsertOne(ctx, banner)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to add banner")
		return
	}
	banner.ID = result.InsertedID.(primitive.ObjectID)
	respondJSON(w, http.StatusCreated, banner)
}

// UpdateBanner edits a banner (admin only).
func (bc *BannerController) UpdateBanner(w http.ResponseWriter, r *http.Request) {
	params := mux.Vars(r)
	id, err := primitive.ObjectIDFromHex(params["id"])
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid banner ID")
		return
	}

	var input bannerInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid input")
		return
	}
	banner := input.toBanner()

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated models.Banner
	err = bc.Collection.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{
			"title":    banner.Title,
			"subtitle": banner.Subtitle,
			"image":    banner.Image,
			"link":     banner.Link,
			"active":   banner.Active,
		}},
		opts,
	).Decode(&updated)
	if errors.Is(err, mongo.ErrNoDocuments) {
		respondError(w, http.StatusNotFound, "Banner not found")
		return
	}
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to update banner")
		return
	}
	respondJSON(w, http.StatusOK, updated)
}

// DeleteBanner removes a banner (admin only).
func (bc *BannerController) DeleteBanner(w http.ResponseWriter, r *http.Request) {
	params := mux.Vars(r)
	id, err := primitive.ObjectIDFromHex(params["id"])
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid banner ID")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()
	if _, err := bc.Collection.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to delete banner")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Banner deleted"})
}
