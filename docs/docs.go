// Package docs registers the swagger document served at /api-docs.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/": {
            "get": {
                "tags": ["home"],
                "summary": "Liveness message",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/user/signup": {
            "post": {
                "tags": ["user"],
                "summary": "Register a new user",
                "parameters": [{
                    "name": "body",
                    "in": "body",
                    "required": true,
                    "schema": {
                        "type": "object",
                        "properties": {
                            "username": {"type": "string"},
                            "email": {"type": "string", "format": "email"},
                            "password": {"type": "string", "format": "password"}
                        }
                    }
                }],
                "responses": {
                    "201": {"description": "User registered successfully"},
                    "401": {"description": "User already exists. Please login."},
                    "500": {"description": "An error occurred"}
                }
            }
        },
        "/user/login": {
            "post": {
                "tags": ["user"],
                "summary": "Log in a user",
                "parameters": [{
                    "name": "body",
                    "in": "body",
                    "required": true,
                    "schema": {
                        "type": "object",
                        "properties": {
                            "email": {"type": "string", "format": "email"},
                            "password": {"type": "string", "format": "password"}
                        }
                    }
                }],
                "responses": {
                    "200": {"description": "Logged in; returns a JWT token and the user document"},
                    "401": {"description": "User not found or incorrect password"},
                    "500": {"description": "An error occurred"}
                }
            }
        },
        "/category": {
            "get": {
                "tags": ["category"],
                "summary": "Get a list of categories",
                "responses": {
                    "200": {"description": "A list of categories"},
                    "500": {"description": "Unable to fetch categories"}
                }
            },
            "post": {
                "tags": ["category"],
                "summary": "Create a new category",
                "parameters": [{
                    "name": "body",
                    "in": "body",
                    "required": true,
                    "schema": {
                        "type": "object",
                        "properties": {
                            "name": {"type": "string"},
                            "description": {"type": "string"}
                        }
                    }
                }],
                "responses": {
                    "201": {"description": "Category created successfully"},
                    "400": {"description": "Unable to create category"}
                }
            }
        },
        "/product": {
            "get": {
                "tags": ["product"],
                "summary": "Get a list of products",
                "responses": {
                    "200": {"description": "A list of products"},
                    "500": {"description": "An error occurred"}
                }
            },
            "post": {
                "tags": ["product"],
                "summary": "Create a new product",
                "parameters": [{
                    "name": "body",
                    "in": "body",
                    "required": true,
                    "schema": {
                        "type": "object",
                        "properties": {
                            "name": {"type": "string"},
                            "description": {"type": "string"},
                            "price": {"type": "number"},
                            "category": {"type": "string"},
                            "image": {"type": "string"},
                            "availability": {"type": "boolean"}
                        }
                    }
                }],
                "responses": {
                    "201": {"description": "Product created successfully"},
                    "500": {"description": "An error occurred"}
                }
            }
        },
        "/product/{id}": {
            "get": {
                "tags": ["product"],
                "summary": "Get a product by ID",
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
                "responses": {
                    "200": {"description": "Products matching the id (possibly empty)"},
                    "500": {"description": "An error occurred"}
                }
            },
            "put": {
                "tags": ["product"],
                "summary": "Update a product by ID",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "object",
                            "properties": {
                                "name": {"type": "string"},
                                "description": {"type": "string"},
                                "price": {"type": "number"},
                                "category": {"type": "string"},
                                "image": {"type": "string"}
                            }
                        }
                    }
                ],
                "responses": {
                    "200": {"description": "Updated product, or null when the id is unknown"},
                    "500": {"description": "An error occurred"}
                }
            },
            "delete": {
                "tags": ["product"],
                "summary": "Delete a product by ID",
                "security": [{"BearerAuth": []}],
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
                "responses": {
                    "200": {"description": "Product deleted successfully"},
                    "500": {"description": "An error occurred"}
                }
            }
        },
        "/cart": {
            "get": {
                "tags": ["cart"],
                "summary": "Get user's cart",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "The cart with products expanded, or null"},
                    "500": {"description": "An error occurred"}
                }
            }
        },
        "/cart/add/{productId}": {
            "post": {
                "tags": ["cart"],
                "summary": "Add a product to the cart",
                "security": [{"BearerAuth": []}],
                "parameters": [{"name": "productId", "in": "path", "required": true, "type": "string"}],
                "responses": {
                    "200": {"description": "Product added to cart"},
                    "500": {"description": "An error occurred"}
                }
            }
        },
        "/cart/remove/{productId}": {
            "delete": {
                "tags": ["cart"],
                "summary": "Remove a product from the cart",
                "security": [{"BearerAuth": []}],
                "parameters": [{"name": "productId", "in": "path", "required": true, "type": "string"}],
                "responses": {
                    "200": {"description": "Product removed from cart"},
                    "404": {"description": "Cart not found"},
                    "500": {"description": "An error occurred"}
                }
            }
        },
        "/order": {
            "post": {
                "tags": ["order"],
                "summary": "Place an order",
                "security": [{"BearerAuth": []}],
                "parameters": [{
                    "name": "body",
                    "in": "body",
                    "required": true,
                    "schema": {
                        "type": "object",
                        "properties": {
                            "products": {
                                "type": "array",
                                "items": {
                                    "type": "object",
                                    "properties": {
                                        "productId": {"type": "string"},
                                        "price": {"type": "number"},
                                        "quantity": {"type": "number"}
                                    }
                                }
                            }
                        }
                    }
                }],
                "responses": {
                    "201": {"description": "Order placed successfully"},
                    "400": {"description": "Unable to place the order"}
                }
            }
        },
        "/order/history": {
            "get": {
                "tags": ["order"],
                "summary": "Get order history",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "Order history for the authenticated user"},
                    "500": {"description": "Unable to fetch order history"}
                }
            }
        },
        "/order/{orderId}": {
            "get": {
                "tags": ["order"],
                "summary": "Get order details by ID",
                "security": [{"BearerAuth": []}],
                "parameters": [{"name": "orderId", "in": "path", "required": true, "type": "string"}],
                "responses": {
                    "200": {"description": "Order details"},
                    "404": {"description": "Order not found"},
                    "500": {"description": "Unable to fetch order details"}
                }
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header",
            "description": "Raw signed token, without a Bearer prefix"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Shopkart API Documentation",
	Description:      "REST backend for the Shopkart e-commerce application",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
