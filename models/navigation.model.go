package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Navigation group types.
const (
	NavTypeDevice   = "device"
	NavTypeCategory = "category"
)

// Navigation is one menu group in the storefront header, e.g. the "Apple"
// device group with its model list.
type Navigation struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Type  string             `bson:"type" json:"type"`
	Title string             `bson:"title" json:"title"`
	Items []string           `bson:"items" json:"items"`
	Image string             `bson:"image,omitempty" json:"image,omitempty"`
}

// ValidNavType reports whether s is a known navigation group type.
func ValidNavType(s string) bool {
	return s == NavTypeDevice || s == NavTypeCategory
}
