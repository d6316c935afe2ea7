package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Cart holds one user's product references. The list may contain
// duplicates and ids that no longer resolve; there is no quantity field.
type Cart struct {
	ID       primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	User     primitive.ObjectID   `bson:"user" json:"user"`
	Products []primitive.ObjectID `bson:"products" json:"products"`
}
