package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// User is a registered account. Email is unique, enforced by a
// lookup-then-insert at signup (not transactional).
type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Username string             `bson:"username" json:"username"`
	Email    string             `bson:"email" json:"email"`
	Password string             `bson:"password" json:"password,omitempty"`
}
