package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Popup is the single promotional popup document. There is exactly one;
// updates upsert it and IsActive is the master switch.
type Popup struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Title     string             `bson:"title" json:"title"`
	Subtitle  string             `bson:"subtitle" json:"subtitle"`
	Image     string             `bson:"image" json:"image"`
	Link      string             `bson:"link" json:"link"`
	IsActive  bool               `bson:"is_active" json:"isActive"`
	UpdatedAt time.Time          `bson:"updated_at,omitempty" json:"updatedAt,omitempty"`
}

// DefaultPopup is inserted the first time the popup is read.
func DefaultPopup() Popup {
	return Popup{
		Title:    "Huge Sale is Live!",
		Subtitle: "Get up to 50% OFF on all premium mobile accessories.",
		Link:     "/shop/all",
	}
}
