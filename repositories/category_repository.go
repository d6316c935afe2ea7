package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"shopkart-backend/models"
)

type mongoCategoryRepository struct {
	collection *mongo.Collection
}

func NewCategoryRepository(db *mongo.Database) CategoryRepository {
	return &mongoCategoryRepository{collection: db.Collection("categories")}
}

func (r *mongoCategoryRepository) All(ctx context.Context) ([]models.Category, error) {
	projection := options.Find().SetProjection(bson.M{"name": 1, "description": 1})
	cur, err := r.collection.Find(ctx, bson.M{}, projection)
	if err != nil {
		return nil, err
	}

	categories := []models.Category{}
	if err := cur.All(ctx, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *mongoCategoryRepository) Insert(ctx context.Context, category *models.Category) error {
	res, err := r.collection.InsertOne(ctx, category)
	if err != nil {
		return err
	}
	category.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}
