package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"shopkart-backend/config"
	"shopkart-backend/database"
	"shopkart-backend/middleware"
	"shopkart-backend/repositories"
	"shopkart-backend/routes"
)

//	@title			Shopkart API Documentation
//	@version		1.0.0
//	@description	REST backend for the Shopkart e-commerce application

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization

func main() {
	cfg := config.Load()

	log.Println("Connecting to MongoDB at:", cfg.MongoURI)
	db, disconnect, err := database.Connect(cfg.MongoURI, cfg.DBName)
	if err != nil {
		log.Fatal(err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = disconnect(ctx)
	}()
	log.Println("Connected to db")

	repos := &repositories.Repositories{
		Users:      repositories.NewUserRepository(db),
		Categories: repositories.NewCategoryRepository(db),
		Products:   repositories.NewProductRepository(db),
		Carts:      repositories.NewCartRepository(db),
		Orders:     repositories.NewOrderRepository(db),
	}

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: false,
	}))

	// 100 requests per 15 minutes per client address.
	limiter := middleware.NewRateLimiter(100, 15*time.Minute)
	r.Use(limiter.Middleware())

	routes.Setup(r, repos, []byte(cfg.JWTSecret))

	log.Printf("Running on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
