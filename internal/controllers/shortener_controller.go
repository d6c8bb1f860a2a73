package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"linkcut/internal/apperr"
	"linkcut/internal/models"
	"linkcut/internal/service"
)

type ShortenerController struct {
	urlService service.URLService
	log        *zap.Logger
}

func NewShortenerController(urlService service.URLService, log *zap.Logger) *ShortenerController {
	return &ShortenerController{
		urlService: urlService,
		log:        log,
	}
}

// CreateShortURL handles POST / - shortens an original URL. Returns 201
// for a new record, 200 when an equivalent record already existed.
func (sc *ShortenerController) CreateShortURL(c *gin.Context) {
	var req models.CreateURLRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"detail": "Invalid request body: " + err.Error(),
		})
		return
	}

	response, created, err := sc.urlService.Create(&req, currentUser(c))
	if err != nil {
		sc.log.Error("error creating url", zap.Error(err))
		if errors.Is(err, apperr.ErrConflict) {
			c.JSON(http.StatusConflict, gin.H{
				"detail": "Error saving url, try later.",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"detail": "Error saving url, try later.",
		})
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	c.JSON(status, response)
}

// Ping handles GET /ping - storage connectivity check
func (sc *ShortenerController) Ping(c *gin.Context) {
	if err := sc.urlService.Ping(); err != nil {
		sc.log.Error("database connection error", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"detail": "Database connection error, try later.",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"detail": "Database connection is successful.",
	})
}

// Redirect handles GET /:code - redirects to the original URL
func (sc *ShortenerController) Redirect(c *gin.Context) {
	shortCode := c.Param("code")

	originalURL, err := sc.urlService.Redirect(shortCode, c.GetHeader("User-Agent"), currentUser(c))
	if err != nil {
		sc.respondURLError(c, err, "error redirecting url")
		return
	}

	c.Redirect(http.StatusTemporaryRedirect, originalURL)
}

// Status handles GET /:code/status - usage statistics. Query params:
// full_info (0/1), max_result, offset.
func (sc *ShortenerController) Status(c *gin.Context) {
	shortCode := c.Param("code")

	fullInfo := c.Query("full_info") == "1"
	maxResult := queryInt(c, "max_result", 10)
	offset := queryInt(c, "offset", 0)

	stats, err := sc.urlService.Stats(shortCode, currentUser(c), fullInfo, maxResult, offset)
	if err != nil {
		sc.respondURLError(c, err, "error getting url status")
		return
	}

	c.JSON(http.StatusOK, stats)
}

// Update handles PUT /:code/update - changes URL visibility
func (sc *ShortenerController) Update(c *gin.Context) {
	shortCode := c.Param("code")

	var req models.UpdateURLRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"detail": "Invalid request body: " + err.Error(),
		})
		return
	}

	response, err := sc.urlService.UpdateType(shortCode, req.URLType, currentUser(c))
	if err != nil {
		sc.respondURLError(c, err, "error updating url")
		return
	}

	c.JSON(http.StatusOK, response)
}

// Delete handles DELETE /:code/delete - soft deletes a URL; 410 on success
func (sc *ShortenerController) Delete(c *gin.Context) {
	shortCode := c.Param("code")

	if err := sc.urlService.SoftDelete(shortCode, currentUser(c)); err != nil {
		sc.respondURLError(c, err, "error deleting url")
		return
	}

	c.JSON(http.StatusGone, gin.H{
		"detail": "Url deleted",
	})
}

// respondURLError translates a service error into the endpoint response
func (sc *ShortenerController) respondURLError(c *gin.Context, err error, msg string) {
	sc.log.Error(msg, zap.Error(err))

	switch statusFromErr(err) {
	case http.StatusNotFound:
		c.JSON(http.StatusNotFound, gin.H{
			"detail": "No such url in database.",
		})
	case http.StatusForbidden:
		c.JSON(http.StatusForbidden, gin.H{
			"detail": "The url is available for its creator only.",
		})
	case http.StatusBadRequest:
		c.JSON(http.StatusBadRequest, gin.H{
			"detail": err.Error(),
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"detail": "Error processing url, try later.",
		})
	}
}

func queryInt(c *gin.Context, key string, defaultValue int) int {
	if value := c.Query(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil && parsed >= 0 {
			return parsed
		}
	}
	return defaultValue
}
