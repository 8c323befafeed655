package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"myfinances-be/internal/jwt"
	"myfinances-be/internal/models"
	"myfinances-be/internal/service"
)

type UserController struct {
	userService  service.UserService
	entryService service.EntryService
	jwtService   *jwt.JWTService
}

func NewUserController(userService service.UserService, entryService service.EntryService, jwtService *jwt.JWTService) *UserController {
	return &UserController{
		userService:  userService,
		entryService: entryService,
		jwtService:   jwtService,
	}
}

// Register handles POST /api/v1/users
func (uc *UserController) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	user, err := uc.userService.Register(req.Name, req.Email, req.Password)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, user)
}

// Authenticate handles POST /api/v1/users/authenticate
func (uc *UserController) Authenticate(c *gin.Context) {
	var req models.AuthenticateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	user, err := uc.userService.Authenticate(req.Email, req.Password)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	token, err := uc.jwtService.GenerateToken(user.ID, user.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to generate token",
		})
		return
	}

	c.JSON(http.StatusOK, models.AuthResponse{
		UserID:    user.ID,
		Name:      user.Name,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
		Token:     token,
	})
}

// Balance handles GET /api/v1/users/:id/balance
func (uc *UserController) Balance(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid user id",
		})
		return
	}

	user, err := uc.userService.FindByID(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
		})
		return
	}
	if user == nil {
		c.Status(http.StatusNotFound)
		return
	}

	balance, err := uc.entryService.BalanceByUser(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, balance)
}
