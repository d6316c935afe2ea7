package repositories

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"shopkart-backend/models"
)

type mongoCartRepository struct {
	collection *mongo.Collection
}

func NewCartRepository(db *mongo.Database) CartRepository {
	return &mongoCartRepository{collection: db.Collection("carts")}
}

func (r *mongoCartRepository) FindByUser(ctx context.Context, userID primitive.ObjectID) (*models.Cart, error) {
	var cart models.Cart
	err := r.collection.FindOne(ctx, bson.M{"user": userID}).Decode(&cart)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

// Save writes the whole products list back. Two concurrent saves for the
// same user overwrite each other; see the cart section of DESIGN.md.
func (r *mongoCartRepository) Save(ctx context.Context, cart *models.Cart) error {
	if cart.ID.IsZero() {
		res, err := r.collection.InsertOne(ctx, cart)
		if err != nil {
			return err
		}
		cart.ID = res.InsertedID.(primitive.ObjectID)
		return nil
	}

	_, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": cart.ID},
		bson.M{"$set": bson.M{"products": cart.Products}},
	)
	return err
}
