package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"shopkart-backend/models"
	"shopkart-backend/repositories"
)

type ProductController struct {
	products repositories.ProductRepository
}

func NewProductController(products repositories.ProductRepository) *ProductController {
	return &ProductController{products: products}
}

// List returns every product.
//
//	@Summary	Get a list of products
//	@Tags		product
//	@Success	200	{array}		models.Product
//	@Failure	500	{object}	map[string]string
//	@Router		/product [get]
func (pc *ProductController) List(c *gin.Context) {
	products, err := pc.products.All(c.Request.Context())
	if err != nil {
		log.Println(err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "An error occurred"})
		return
	}
	c.JSON(http.StatusOK, products)
}

// GetByID returns the products matching an id. Zero matches is still 200
// with an empty array.
//
//	@Summary	Get a product by ID
//	@Tags		product
//	@Param		id	path	string	true	"product id"
//	@Success	200	{array}		models.Product
//	@Failure	500	{object}	map[string]string
//	@Router		/product/{id} [get]
func (pc *ProductController) GetByID(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "An error occurred"})
		return
	}

	products, err := pc.products.FindByID(c.Request.Context(), id)
	if err != nil {
		log.Println(err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "An error occurred"})
		return
	}
	c.JSON(http.StatusOK, products)
}

type productInput struct {
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	Price        float64 `json:"price"`
	Category     string  `json:"category"`
	Image        string  `json:"image"`
	Availability bool    `json:"availability"`
}

// Create persists a new product.
//
//	@Summary	Create a new product
//	@Tags		product
//	@Accept		json
//	@Param		body	body	controllers.productInput	true	"product attributes"
//	@Success	201	{object}	map[string]string
//	@Failure	500	{object}	map[string]string
//	@Router		/product [post]
func (pc *ProductController) Create(c *gin.Context) {
	var body productInput
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "An error occurred"})
		return
	}

	product := models.Product{
		Name:         body.Name,
		Description:  body.Description,
		Price:        body.Price,
		Category:     body.Category,
		Image:        body.Image,
		Availability: body.Availability,
	}
	if err := pc.products.Insert(c.Request.Context(), &product); err != nil {
		log.Println(err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "An error occurred"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Product created successfully"})
}

// Update replaces the editable fields of a product by id and returns the
// updated document, or null when the id matches nothing.
//
//	@Summary	Update a product by ID
//	@Tags		product
//	@Accept		json
//	@Param		id		path	string						true	"product id"
//	@Param		body	body	repositories.ProductUpdate	true	"editable fields"
//	@Success	200	{object}	models.Product
//	@Failure	500	{object}	map[string]string
//	@Security	BearerAuth
//	@Router		/product/{id} [put]
func (pc *ProductController) Update(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "An error occurred"})
		return
	}

	var fields repositories.ProductUpdate
	if err := c.ShouldBindJSON(&fields); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "An error occurred"})
		return
	}

	product, err := pc.products.Update(c.Request.Context(), id, fields)
	if errors.Is(err, repositories.ErrNotFound) {
		c.JSON(http.StatusOK, nil)
		return
	}
	if err != nil {
		log.Println(err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "An error occurred"})
		return
	}
	c.JSON(http.StatusOK, product)
}

// Delete removes a product by id and returns the removed document, or null
// when the id matches nothing.
//
//	@Summary	Delete a product by ID
//	@Tags		product
//	@Param		id	path	string	true	"product id"
//	@Success	200	{object}	map[string]interface{}
//	@Failure	500	{object}	map[string]string
//	@Security	BearerAuth
//	@Router		/product/{id} [delete]
func (pc *ProductController) Delete(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "An error occurred"})
		return
	}

	product, err := pc.products.Delete(c.Request.Context(), id)
	if errors.Is(err, repositories.ErrNotFound) {
		c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully", "deletedProduct": nil})
		return
	}
	if err != nil {
		log.Println(err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "An error occurred"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully", "deletedProduct": product})
}
