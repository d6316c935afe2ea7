package controllers_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"shopkart-backend/auth"
	"shopkart-backend/models"
	"shopkart-backend/repositories"
	"shopkart-backend/routes"
)

var testSecret = []byte("test-secret")

// ── in-memory repositories ───────────────────────────────────────────────

type fakeUserRepo struct {
	users []models.User
	err   error
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.users {
		if f.users[i].Email == email {
			return &f.users[i], nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (f *fakeUserRepo) Insert(_ context.Context, user *models.User) error {
	if f.err != nil {
		return f.err
	}
	user.ID = primitive.NewObjectID()
	f.users = append(f.users, *user)
	return nil
}

type fakeCategoryRepo struct {
	categories []models.Category
	err        error
}

func (f *fakeCategoryRepo) All(context.Context) ([]models.Category, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.categories, nil
}

func (f *fakeCategoryRepo) Insert(_ context.Context, category *models.Category) error {
	if f.err != nil {
		return f.err
	}
	category.ID = primitive.NewObjectID()
	f.categories = append(f.categories, *category)
	return nil
}

type fakeProductRepo struct {
	products []models.Product
	err      error
}

func (f *fakeProductRepo) All(context.Context) ([]models.Product, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.products, nil
}

func (f *fakeProductRepo) FindByID(_ context.Context, id primitive.ObjectID) ([]models.Product, error) {
	if f.err != nil {
		return nil, f.err
	}
	matches := []models.Product{}
	for _, p := range f.products {
		if p.ID == id {
			matches = append(matches, p)
		}
	}
	return matches, nil
}

func (f *fakeProductRepo) FindByIDs(_ context.Context, ids []primitive.ObjectID) ([]models.Product, error) {
	if f.err != nil {
		return nil, f.err
	}
	wanted := map[primitive.ObjectID]bool{}
	for _, id := range ids {
		wanted[id] = true
	}
	matches := []models.Product{}
	for _, p := range f.products {
		if wanted[p.ID] {
			matches = append(matches, p)
		}
	}
	return matches, nil
}

func (f *fakeProductRepo) Insert(_ context.Context, product *models.Product) error {
	if f.err != nil {
		return f.err
	}
	product.ID = primitive.NewObjectID()
	f.products = append(f.products, *product)
	return nil
}

func (f *fakeProductRepo) Update(_ context.Context, id primitive.ObjectID, fields repositories.ProductUpdate) (*models.Product, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.products {
		if f.products[i].ID == id {
			f.products[i].Name = fields.Name
			f.products[i].Description = fields.Description
			f.products[i].Price = fields.Price
			f.products[i].Category = fields.Category
			f.products[i].Image = fields.Image
			return &f.products[i], nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (f *fakeProductRepo) Delete(_ context.Context, id primitive.ObjectID) (*models.Product, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.products {
		if f.products[i].ID == id {
			deleted := f.products[i]
			f.products = append(f.products[:i], f.products[i+1:]...)
			return &deleted, nil
		}
	}
	return nil, repositories.ErrNotFound
}

type fakeCartRepo struct {
	carts map[primitive.ObjectID]*models.Cart
	err   error
}

func newFakeCartRepo() *fakeCartRepo {
	return &fakeCartRepo{carts: map[primitive.ObjectID]*models.Cart{}}
}

func (f *fakeCartRepo) FindByUser(_ context.Context, userID primitive.ObjectID) (*models.Cart, error) {
	if f.err != nil {
		return nil, f.err
	}
	cart, ok := f.carts[userID]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	copied := *cart
	copied.Products = append([]primitive.ObjectID{}, cart.Products...)
	return &copied, nil
}

func (f *fakeCartRepo) Save(_ context.Context, cart *models.Cart) error {
	if f.err != nil {
		return f.err
	}
	if cart.ID.IsZero() {
		cart.ID = primitive.NewObjectID()
	}
	stored := *cart
	stored.Products = append([]primitive.ObjectID{}, cart.Products...)
	f.carts[cart.User] = &stored
	return nil
}

type fakeOrderRepo struct {
	orders []models.Order
	err    error
}

func (f *fakeOrderRepo) Insert(_ context.Context, order *models.Order) error {
	if f.err != nil {
		return f.err
	}
	order.ID = primitive.NewObjectID()
	f.orders = append(f.orders, *order)
	return nil
}

func (f *fakeOrderRepo) FindByUser(_ context.Context, userID primitive.ObjectID) ([]models.Order, error) {
	if f.err != nil {
		return nil, f.err
	}
	orders := []models.Order{}
	for _, o := range f.orders {
		if o.User == userID {
			orders = append(orders, o)
		}
	}
	return orders, nil
}

func (f *fakeOrderRepo) FindByIDForUser(_ context.Context, orderID, userID primitive.ObjectID) (*models.Order, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.orders {
		if f.orders[i].ID == orderID && f.orders[i].User == userID {
			return &f.orders[i], nil
		}
	}
	return nil, repositories.ErrNotFound
}

// ── test server plumbing ─────────────────────────────────────────────────

type testEnv struct {
	router     *gin.Engine
	users      *fakeUserRepo
	categories *fakeCategoryRepo
	products   *fakeProductRepo
	carts      *fakeCartRepo
	orders     *fakeOrderRepo
}

func newTestEnv() *testEnv {
	gin.SetMode(gin.TestMode)

	env := &testEnv{
		users:      &fakeUserRepo{},
		categories: &fakeCategoryRepo{},
		products:   &fakeProductRepo{},
		carts:      newFakeCartRepo(),
		orders:     &fakeOrderRepo{},
	}

	repos := &repositories.Repositories{
		Users:      env.users,
		Categories: env.categories,
		Products:   env.products,
		Carts:      env.carts,
		Orders:     env.orders,
	}

	env.router = gin.New()
	routes.Setup(env.router, repos, testSecret)
	return env
}

func (env *testEnv) tokenFor(t *testing.T, userID primitive.ObjectID, username string) string {
	t.Helper()
	token, err := auth.GenerateToken(testSecret, userID.Hex(), username)
	require.NoError(t, err)
	return token
}

func (env *testEnv) do(method, path, token, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", token)
	}
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func decodeList(t *testing.T, w *httptest.ResponseRecorder) []interface{} {
	t.Helper()
	var body []interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func seedProduct(env *testEnv, name string, price float64) models.Product {
	p := models.Product{
		ID:           primitive.NewObjectID(),
		Name:         name,
		Description:  name + " description",
		Price:        price,
		Category:     "misc",
		Availability: true,
	}
	env.products.products = append(env.products.products, p)
	return p
}
