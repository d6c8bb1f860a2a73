package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"linkcut/internal/apperr"
	"linkcut/internal/entities"
	"linkcut/internal/middleware"
)

// currentUser returns the authenticated user from the gin context, or nil
// for an anonymous caller.
func currentUser(c *gin.Context) *entities.User {
	if v, exists := c.Get(middleware.ContextUserKey); exists {
		if user, ok := v.(*entities.User); ok {
			return user
		}
	}
	return nil
}

// statusFromErr maps an error class to its HTTP status
func statusFromErr(err error) int {
	switch {
	case errors.Is(err, apperr.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperr.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, apperr.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, apperr.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, apperr.ErrUnauthorized):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}
