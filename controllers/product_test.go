package controllers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestProductList(t *testing.T) {
	env := newTestEnv()
	seedProduct(env, "keyboard", 49.9)
	seedProduct(env, "mouse", 19.9)

	w := env.do(http.MethodGet, "/product", "", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeList(t, w), 2)
}

func TestProductGetByID(t *testing.T) {
	env := newTestEnv()
	p := seedProduct(env, "keyboard", 49.9)

	w := env.do(http.MethodGet, "/product/"+p.ID.Hex(), "", "")

	assert.Equal(t, http.StatusOK, w.Code)
	matches := decodeList(t, w)
	require.Len(t, matches, 1)
	assert.Equal(t, "keyboard", matches[0].(map[string]interface{})["name"])
}

func TestProductGetByIDZeroMatchesIsStill200(t *testing.T) {
	env := newTestEnv()

	w := env.do(http.MethodGet, "/product/"+primitive.NewObjectID().Hex(), "", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeList(t, w), 0)
}

func TestProductCreateIsUnauthenticated(t *testing.T) {
	env := newTestEnv()

	w := env.do(http.MethodPost, "/product", "",
		`{"name":"keyboard","description":"clicky","price":49.9,"category":"peripherals","image":"kb.png","availability":true}`)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"message":"Product created successfully"}`, w.Body.String())
	require.Len(t, env.products.products, 1)
	assert.True(t, env.products.products[0].Availability)
}

func TestProductUpdateRequiresAuth(t *testing.T) {
	env := newTestEnv()
	p := seedProduct(env, "keyboard", 49.9)

	w := env.do(http.MethodPut, "/product/"+p.ID.Hex(), "", `{"name":"keyboard v2"}`)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestProductUpdateReturnsUpdatedDocument(t *testing.T) {
	env := newTestEnv()
	p := seedProduct(env, "keyboard", 49.9)
	token := env.tokenFor(t, primitive.NewObjectID(), "admin")

	w := env.do(http.MethodPut, "/product/"+p.ID.Hex(), token,
		`{"name":"keyboard v2","description":"clickier","price":59.9,"category":"peripherals","image":"kb2.png"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "keyboard v2", body["name"])
	assert.Equal(t, 59.9, body["price"])
	// Availability is not an editable field.
	assert.Equal(t, true, body["availability"])
}

func TestProductUpdateUnknownIDReturnsNull(t *testing.T) {
	env := newTestEnv()
	token := env.tokenFor(t, primitive.NewObjectID(), "admin")

	w := env.do(http.MethodPut, "/product/"+primitive.NewObjectID().Hex(), token, `{"name":"ghost"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "null", w.Body.String())
}

func TestProductDeleteReturnsDeletedDocument(t *testing.T) {
	env := newTestEnv()
	p := seedProduct(env, "keyboard", 49.9)
	token := env.tokenFor(t, primitive.NewObjectID(), "admin")

	w := env.do(http.MethodDelete, "/product/"+p.ID.Hex(), token, "")

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "Product deleted successfully", body["message"])
	deleted := body["deletedProduct"].(map[string]interface{})
	assert.Equal(t, p.ID.Hex(), deleted["id"])
	assert.Len(t, env.products.products, 0)
}

func TestProductDeleteUnknownIDReturnsNullDocument(t *testing.T) {
	env := newTestEnv()
	token := env.tokenFor(t, primitive.NewObjectID(), "admin")

	w := env.do(http.MethodDelete, "/product/"+primitive.NewObjectID().Hex(), token, "")

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "Product deleted successfully", body["message"])
	assert.Nil(t, body["deletedProduct"])
}
