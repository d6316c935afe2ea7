// Package controllers holds the gin handlers, one controller per entity.
// Each controller is stateless and works only through the repository
// interfaces it is given.
package controllers

import (
	"context"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"shopkart-backend/middleware"
	"shopkart-backend/models"
	"shopkart-backend/repositories"
)

// callerID reads the authenticated user's id that the auth middleware
// placed in the context.
func callerID(c *gin.Context) (primitive.ObjectID, error) {
	return primitive.ObjectIDFromHex(c.GetString(middleware.ContextUserID))
}

// productsByID resolves a batch of product references into a lookup map.
func productsByID(ctx context.Context, products repositories.ProductRepository, ids []primitive.ObjectID) (map[primitive.ObjectID]models.Product, error) {
	resolved, err := products.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	byID := make(map[primitive.ObjectID]models.Product, len(resolved))
	for _, p := range resolved {
		byID[p.ID] = p
	}
	return byID, nil
}
