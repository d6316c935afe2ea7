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

type CartController struct {
	carts    repositories.CartRepository
	products repositories.ProductRepository
}

func NewCartController(carts repositories.CartRepository, products repositories.ProductRepository) *CartController {
	return &CartController{carts: carts, products: products}
}

// expandedCart is the cart with product references resolved to full
// documents. References that no longer resolve are dropped; order and
// duplicates of the rest are preserved.
type expandedCart struct {
	ID       primitive.ObjectID `json:"id"`
	User     primitive.ObjectID `json:"user"`
	Products []models.Product   `json:"products"`
}

func (cc *CartController) expand(c *gin.Context, cart *models.Cart) (*expandedCart, error) {
	byID, err := productsByID(c.Request.Context(), cc.products, cart.Products)
	if err != nil {
		return nil, err
	}

	expanded := expandedCart{ID: cart.ID, User: cart.User, Products: []models.Product{}}
	for _, id := range cart.Products {
		if p, ok := byID[id]; ok {
			expanded.Products = append(expanded.Products, p)
		}
	}
	return &expanded, nil
}

// Get returns the caller's cart with products expanded, or null when the
// caller never added anything.
//
//	@Summary	Get user's cart
//	@Tags		cart
//	@Success	200	{object}	controllers.expandedCart
//	@Failure	500	{object}	map[string]string
//	@Security	BearerAuth
//	@Router		/cart [get]
func (cc *CartController) Get(c *gin.Context) {
	userID, err := callerID(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "An error occurred"})
		return
	}

	cart, err := cc.carts.FindByUser(c.Request.Context(), userID)
	if errors.Is(err, repositories.ErrNotFound) {
		c.JSON(http.StatusOK, nil)
		return
	}
	if err != nil {
		log.Println(err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "An error occurred"})
		return
	}

	expanded, err := cc.expand(c, cart)
	if err != nil {
		log.Println(err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "An error occurred"})
		return
	}
	c.JSON(http.StatusOK, expanded)
}

// Add appends a product reference to the caller's cart, creating the cart
// lazily on first use. No dedup and no quantity: adding twice appends
// twice. The read-modify-write here is not atomic; see DESIGN.md.
//
//	@Summary	Add a product to the cart
//	@Tags		cart
//	@Param		productId	path	string	true	"product id to add"
//	@Success	200	{object}	map[string]interface{}
//	@Failure	500	{object}	map[string]string
//	@Security	BearerAuth
//	@Router		/cart/add/{productId} [post]
func (cc *CartController) Add(c *gin.Context) {
	userID, err := callerID(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "An error occurred"})
		return
	}

	productID, err := primitive.ObjectIDFromHex(c.Param("productId"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "An error occurred"})
		return
	}

	cart, err := cc.carts.FindByUser(c.Request.Context(), userID)
	if errors.Is(err, repositories.ErrNotFound) {
		cart = &models.Cart{User: userID, Products: []primitive.ObjectID{}}
	} else if err != nil {
		log.Println(err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "An error occurred"})
		return
	}

	cart.Products = append(cart.Products, productID)
	if err := cc.carts.Save(c.Request.Context(), cart); err != nil {
		log.Println(err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "An error occurred"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Product added to cart", "cart": cart})
}

// Remove deletes every occurrence of the product from the caller's cart.
//
//	@Summary	Remove a product from the cart
//	@Tags		cart
//	@Param		productId	path	string	true	"product id to remove"
//	@Success	200	{object}	map[string]interface{}
//	@Failure	404	{object}	map[string]string	"no cart exists"
//	@Security	BearerAuth
//	@Router		/cart/remove/{productId} [delete]
func (cc *CartController) Remove(c *gin.Context) {
	userID, err := callerID(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "An error occurred"})
		return
	}

	productID, err := primitive.ObjectIDFromHex(c.Param("productId"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "An error occurred"})
		return
	}

	cart, err := cc.carts.FindByUser(c.Request.Context(), userID)
	if errors.Is(err, repositories.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Cart not found"})
		return
	}
	if err != nil {
		log.Println(err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "An error occurred"})
		return
	}

	kept := cart.Products[:0]
	for _, id := range cart.Products {
		if id != productID {
			kept = append(kept, id)
		}
	}
	cart.Products = kept

	if err := cc.carts.Save(c.Request.Context(), cart); err != nil {
		log.Println(err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "An error occurred"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Product removed from cart", "cart": cart})
}
