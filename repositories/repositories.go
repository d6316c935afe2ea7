// Package repositories gives each entity a small storage interface over the
// document store. Controllers depend on the interfaces only; the Mongo
// implementations are constructed once in main with the shared database
// handle.
package repositories

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"shopkart-backend/models"
)

// ErrNotFound is returned when a query matches no document.
var ErrNotFound = errors.New("document not found")

type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Insert(ctx context.Context, user *models.User) error
}

type CategoryRepository interface {
	// All returns every category projected to name and description.
	All(ctx context.Context) ([]models.Category, error)
	Insert(ctx context.Context, category *models.Category) error
}

// ProductUpdate is the editable field set for a product. Availability is
// deliberately absent: it can only be set at creation time.
type ProductUpdate struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Image       string  `json:"image"`
}

type ProductRepository interface {
	All(ctx context.Context) ([]models.Product, error)
	// FindByID returns the products matching the id; an empty slice is not
	// an error.
	FindByID(ctx context.Context, id primitive.ObjectID) ([]models.Product, error)
	// FindByIDs resolves a batch of references. Ids that match nothing are
	// simply absent from the result.
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Product, error)
	Insert(ctx context.Context, product *models.Product) error
	// Update replaces the editable fields and returns the updated document,
	// or ErrNotFound if the id matches nothing.
	Update(ctx context.Context, id primitive.ObjectID, fields ProductUpdate) (*models.Product, error)
	// Delete removes the product and returns the removed document, or
	// ErrNotFound if the id matches nothing.
	Delete(ctx context.Context, id primitive.ObjectID) (*models.Product, error)
}

type CartRepository interface {
	// FindByUser returns the user's cart, or ErrNotFound if none was ever
	// created.
	FindByUser(ctx context.Context, userID primitive.ObjectID) (*models.Cart, error)
	// Save inserts the cart when it has no id yet, otherwise rewrites its
	// products list.
	Save(ctx context.Context, cart *models.Cart) error
}

type OrderRepository interface {
	Insert(ctx context.Context, order *models.Order) error
	FindByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Order, error)
	// FindByIDForUser returns the order only when it belongs to userID;
	// otherwise ErrNotFound.
	FindByIDForUser(ctx context.Context, orderID, userID primitive.ObjectID) (*models.Order, error)
}

// Repositories bundles one repository per entity for wiring into the routes.
type Repositories struct {
	Users      UserRepository
	Categories CategoryRepository
	Products   ProductRepository
	Carts      CartRepository
	Orders     OrderRepository
}
