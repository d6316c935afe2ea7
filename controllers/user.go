package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"shopkart-backend/auth"
	"shopkart-backend/models"
	"shopkart-backend/repositories"
)

type UserController struct {
	users  repositories.UserRepository
	secret []byte
}

func NewUserController(users repositories.UserRepository, secret []byte) *UserController {
	return &UserController{users: users, secret: secret}
}

type signupInput struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Signup registers a new user.
//
//	@Summary	Register a new user
//	@Tags		user
//	@Accept		json
//	@Param		body	body	controllers.signupInput	true	"username, email and password"
//	@Success	201	{object}	map[string]string
//	@Failure	401	{object}	map[string]string	"email already registered"
//	@Router		/user/signup [post]
func (uc *UserController) Signup(c *gin.Context) {
	var body signupInput
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "An error occurred"})
		return
	}

	// Lookup-then-insert; email uniqueness is best effort, not transactional.
	_, err := uc.users.FindByEmail(c.Request.Context(), body.Email)
	if err == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "User already exists Please Login !"})
		return
	}
	if !errors.Is(err, repositories.ErrNotFound) {
		log.Println(err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "An error occurred"})
		return
	}

	hashed, err := auth.HashPassword(body.Password)
	if err != nil {
		log.Println(err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "An error occurred"})
		return
	}

	user := models.User{
		Username: body.Username,
		Email:    body.Email,
		Password: hashed,
	}
	if err := uc.users.Insert(c.Request.Context(), &user); err != nil {
		log.Println(err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "An error occurred"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "User registered successfully"})
}

// Login authenticates a user and issues a signed token.
//
//	@Summary	Log in a user
//	@Tags		user
//	@Accept		json
//	@Param		body	body	controllers.loginInput	true	"email and password"
//	@Success	200	{object}	map[string]interface{}	"token, user document and message"
//	@Failure	401	{object}	map[string]string	"unknown email or wrong password"
//	@Router		/user/login [post]
func (uc *UserController) Login(c *gin.Context) {
	var body loginInput
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "An error occurred"})
		return
	}

	user, err := uc.users.FindByEmail(c.Request.Context(), body.Email)
	if errors.Is(err, repositories.ErrNotFound) {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "User not exists Please Signup First !"})
		return
	}
	if err != nil {
		log.Println(err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "An error occurred"})
		return
	}

	if !auth.CheckPassword(user.Password, body.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Incorrect Password Please Check Again !"})
		return
	}

	token, err := auth.GenerateToken(uc.secret, user.ID.Hex(), user.Username)
	if err != nil {
		log.Println(err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "An error occurred"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":   token,
		"user":    user,
		"message": "Logged In Successfully",
	})
}
