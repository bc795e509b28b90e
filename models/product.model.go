package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DefaultRating is assigned to products created without one.
const DefaultRating = 4.5

// Product represents a catalog product. Edits are destructive overwrites;
// there is no versioning.
type Product struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name        string             `bson:"name" json:"name"`
	Brand       string             `bson:"brand" json:"brand"`
	Category    string             `bson:"category" json:"category"`
	Price       float64            `bson:"price" json:"price"`
	Rating      float64            `bson:"rating" json:"rating"`
	Reviews     int                `bson:"reviews" json:"reviews"`
	Images      []string           `bson:"images" json:"images"`
	InStock     bool               `bson:"in_stock" json:"inStock"`
	Description string             `bson:"description" json:"description"`
	CreatedAt   time.Time          `bson:"created_at,omitempty" json:"createdAt,omitempty"`
}
