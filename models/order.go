package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// OrderItem is one line of an order. Price is the client-submitted unit
// price at checkout time; it is not re-validated against the catalog.
type OrderItem struct {
	Product  primitive.ObjectID `bson:"product" json:"productId"`
	Price    float64            `bson:"price" json:"price"`
	Quantity int                `bson:"quantity" json:"quantity"`
}

// Order is immutable once placed.
type Order struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	User        primitive.ObjectID `bson:"user" json:"user"`
	Products    []OrderItem        `bson:"products" json:"products"`
	TotalAmount float64            `bson:"totalAmount" json:"totalAmount"`
}
