package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"linkcut/internal/service"
)

type UserController struct {
	authService service.AuthService
	log         *zap.Logger
}

func NewUserController(authService service.AuthService, log *zap.Logger) *UserController {
	return &UserController{
		authService: authService,
		log:         log,
	}
}

// Status handles GET /user/status - the authenticated user's profile and
// owned URLs; 401 for anonymous callers.
func (uc *UserController) Status(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"detail": "Authentication credentials were not provided.",
		})
		return
	}

	response, err := uc.authService.UserStatus(user)
	if err != nil {
		uc.log.Error("error getting user status", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"detail": "Error getting user status, try later.",
		})
		return
	}

	c.JSON(http.StatusOK, response)
}
