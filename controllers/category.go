package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"shopkart-backend/models"
	"shopkart-backend/repositories"
)

type CategoryController struct {
	categories repositories.CategoryRepository
}

func NewCategoryController(categories repositories.CategoryRepository) *CategoryController {
	return &CategoryController{categories: categories}
}

// List returns all categories projected to name and description.
//
//	@Summary	Get a list of categories
//	@Tags		category
//	@Success	200	{array}		models.Category
//	@Failure	500	{object}	map[string]string
//	@Router		/category [get]
func (cc *CategoryController) List(c *gin.Context) {
	categories, err := cc.categories.All(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to fetch categories"})
		return
	}
	c.JSON(http.StatusOK, categories)
}

type categoryInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Create persists a new category.
//
//	@Summary	Create a new category
//	@Tags		category
//	@Accept		json
//	@Param		body	body	controllers.categoryInput	true	"name and description"
//	@Success	201	{object}	map[string]string
//	@Failure	400	{object}	map[string]string
//	@Router		/category [post]
func (cc *CategoryController) Create(c *gin.Context) {
	var body categoryInput
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unable to create category"})
		return
	}

	category := models.Category{Name: body.Name, Description: body.Description}
	if err := cc.categories.Insert(c.Request.Context(), &category); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unable to create category"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Category created successfully"})
}
