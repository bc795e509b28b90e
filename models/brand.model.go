package models

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Brand is a manufacturer tile shown on the homepage; products reference it
// by free-text brand name, the shop page by slug.
type Brand struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name      string             `bson:"name" json:"name"`
	Slug      string             `bson:"slug" json:"slug"`
	Logo      string             `bson:"logo" json:"logo"`
	CreatedAt time.Time          `bson:"created_at,omitempty" json:"createdAt,omitempty"`
}

// Slugify turns a brand name into its URL slug, e.g. "Nothing Phone" into
// "nothing-phone".
func Slugify(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), "-")
}
