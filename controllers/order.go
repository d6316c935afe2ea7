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

type OrderController struct {
	orders   repositories.OrderRepository
	products repositories.ProductRepository
}

func NewOrderController(orders repositories.OrderRepository, products repositories.ProductRepository) *OrderController {
	return &OrderController{orders: orders, products: products}
}

type orderItemInput struct {
	ProductID string  `json:"productId"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

type placeOrderInput struct {
	Products []orderItemInput `json:"products"`
}

// expandedOrderItem keeps the submitted price and quantity; the product
// reference is resolved to the full document, or null when it no longer
// resolves.
type expandedOrderItem struct {
	Product  *models.Product `json:"product"`
	Price    float64         `json:"price"`
	Quantity int             `json:"quantity"`
}

type expandedOrder struct {
	ID          primitive.ObjectID  `json:"id"`
	User        primitive.ObjectID  `json:"user"`
	Products    []expandedOrderItem `json:"products"`
	TotalAmount float64             `json:"totalAmount"`
}

func (oc *OrderController) expand(c *gin.Context, orders []models.Order) ([]expandedOrder, error) {
	ids := []primitive.ObjectID{}
	for _, order := range orders {
		for _, item := range order.Products {
			ids = append(ids, item.Product)
		}
	}

	byID, err := productsByID(c.Request.Context(), oc.products, ids)
	if err != nil {
		return nil, err
	}

	expanded := make([]expandedOrder, 0, len(orders))
	for _, order := range orders {
		eo := expandedOrder{
			ID:          order.ID,
			User:        order.User,
			Products:    []expandedOrderItem{},
			TotalAmount: order.TotalAmount,
		}
		for _, item := range order.Products {
			ei := expandedOrderItem{Price: item.Price, Quantity: item.Quantity}
			if p, ok := byID[item.Product]; ok {
				ei.Product = &p
			}
			eo.Products = append(eo.Products, ei)
		}
		expanded = append(expanded, eo)
	}
	return expanded, nil
}

// Place creates an order from the submitted line items. The total is the
// sum of the submitted price times quantity; prices are client-trusted and
// not re-validated against the catalog.
//
//	@Summary	Place an order
//	@Tags		order
//	@Accept		json
//	@Param		body	body	controllers.placeOrderInput	true	"line items"
//	@Success	201	{object}	map[string]string
//	@Failure	400	{object}	map[string]string
//	@Security	BearerAuth
//	@Router		/order [post]
func (oc *OrderController) Place(c *gin.Context) {
	userID, err := callerID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unable to place the order"})
		return
	}

	var body placeOrderInput
	if err := c.ShouldBindJSON(&body); err != nil || body.Products == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unable to place the order"})
		return
	}

	items := make([]models.OrderItem, 0, len(body.Products))
	total := 0.0
	for _, in := range body.Products {
		productID, err := primitive.ObjectIDFromHex(in.ProductID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unable to place the order"})
			return
		}
		items = append(items, models.OrderItem{Product: productID, Price: in.Price, Quantity: in.Quantity})
		total += in.Price * float64(in.Quantity)
	}

	order := models.Order{User: userID, Products: items, TotalAmount: total}
	if err := oc.orders.Insert(c.Request.Context(), &order); err != nil {
		log.Println(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unable to place the order"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Order placed successfully"})
}

// History returns the caller's orders with product references expanded.
//
//	@Summary	Get order history
//	@Tags		order
//	@Success	200	{array}		controllers.expandedOrder
//	@Failure	500	{object}	map[string]string
//	@Security	BearerAuth
//	@Router		/order/history [get]
func (oc *OrderController) History(c *gin.Context) {
	userID, err := callerID(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to fetch order history"})
		return
	}

	orders, err := oc.orders.FindByUser(c.Request.Context(), userID)
	if err != nil {
		log.Println(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to fetch order history"})
		return
	}

	expanded, err := oc.expand(c, orders)
	if err != nil {
		log.Println(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to fetch order history"})
		return
	}
	c.JSON(http.StatusOK, expanded)
}

// GetByID returns one of the caller's orders. An order owned by another
// user is indistinguishable from a missing one: both are 404.
//
//	@Summary	Get order details by ID
//	@Tags		order
//	@Param		orderId	path	string	true	"order id"
//	@Success	200	{object}	controllers.expandedOrder
//	@Failure	404	{object}	map[string]string
//	@Security	BearerAuth
//	@Router		/order/{orderId} [get]
func (oc *OrderController) GetByID(c *gin.Context) {
	userID, err := callerID(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to fetch order details"})
		return
	}

	orderID, err := primitive.ObjectIDFromHex(c.Param("orderId"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to fetch order details"})
		return
	}

	order, err := oc.orders.FindByIDForUser(c.Request.Context(), orderID, userID)
	if errors.Is(err, repositories.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}
	if err != nil {
		log.Println(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to fetch order details"})
		return
	}

	expanded, err := oc.expand(c, []models.Order{*order})
	if err != nil {
		log.Println(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to fetch order details"})
		return
	}
	c.JSON(http.StatusOK, expanded[0])
}
