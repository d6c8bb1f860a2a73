package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"linkcut/internal/apperr"
	"linkcut/internal/models"
	"linkcut/internal/service"
)

type AuthController struct {
	authService service.AuthService
	log         *zap.Logger
}

func NewAuthController(authService service.AuthService, log *zap.Logger) *AuthController {
	return &AuthController{
		authService: authService,
		log:         log,
	}
}

// Login handles POST /auth/token - form-encoded credentials in, bearer
// token out. The failure message never reveals which field was wrong.
func (ac *AuthController) Login(c *gin.Context) {
	var form models.LoginForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"detail": "Username and password are required.",
		})
		return
	}

	response, err := ac.authService.Login(form.Username, form.Password)
	if err != nil {
		if errors.Is(err, apperr.ErrUnauthorized) {
			c.Header("WWW-Authenticate", "Bearer")
			c.JSON(http.StatusUnauthorized, gin.H{
				"detail": "Incorrect username or password",
			})
			return
		}
		ac.log.Error("error logging user in", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"detail": "Error logging in, try later.",
		})
		return
	}

	c.JSON(http.StatusOK, response)
}

// Register handles POST /auth/users/create. An authenticated caller is
// rejected: registration and an active session are mutually exclusive.
func (ac *AuthController) Register(c *gin.Context) {
	if currentUser(c) != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"detail": "You have to log out first to create new user.",
		})
		return
	}

	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"detail": "Invalid request body: " + err.Error(),
		})
		return
	}

	response, err := ac.authService.Register(&req)
	if err != nil {
		switch {
		case errors.Is(err, apperr.ErrConflict):
			c.JSON(http.StatusConflict, gin.H{
				"detail": "User with such username already exists. Try another one.",
			})
		case errors.Is(err, apperr.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{
				"detail": "Password must be at least 6 characters long, " +
					"must contain upper-, lowercase letters and numbers. " +
					`It must not contain "_,.<>?:[]()/\{}|"`,
			})
		default:
			ac.log.Error("error creating user", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{
				"detail": "Error creating user, try later.",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, response)
}
