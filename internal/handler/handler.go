// Package handler exposes the storefront helpers over HTTP.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/ayushvyasgit/storefront-utils/internal/config"
	apperrors "github.com/ayushvyasgit/storefront-utils/pkg/errors"
)

const version = "1.0.0"

type Handler struct {
	cfg *config.Config
	log zerolog.Logger
}

func New(cfg *config.Config, log zerolog.Logger) *Handler {
	return &Handler{cfg: cfg, log: log}
}

// Router builds the gin engine with all routes and middleware attached.
func (h *Handler) Router() *gin.Engine {
	r := gin.New()
	r.Use(requestID(), requestLogger(h.log), gin.Recovery())

	// Health check
	r.GET("/health", h.health)
	r.GET("/", h.index)

	v1 := r.Group("/api/v1")
	{
		v1.GET("/states", h.listStates)
		v1.GET("/states/grouped", h.groupedStates)
		v1.GET("/states/:name", h.getState)

		format := v1.Group("/format")
		format.GET("/price", h.formatPrice)
		format.GET("/date", h.formatDate)
		format.GET("/file-size", h.formatFileSize)
		format.GET("/phone", h.formatPhone)

		validate := v1.Group("/validate")
		validate.GET("/email", h.validateEmail)
		validate.GET("/phone", h.validatePhone)

		text := v1.Group("/text")
		text.GET("/slugify", h.slugify)
		text.GET("/truncate", h.truncate)

		v1.GET("/pricing/discount", h.discount)
		v1.POST("/cart/weight", h.cartWeight)
		v1.GET("/pagination", h.pagination)
		v1.GET("/random", h.random)
	}

	return r
}

func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": h.cfg.App.Name,
	})
}

func (h *Handler) index(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Storefront Utils API",
		"version": version,
	})
}

// respondError writes err as an AppError body. Errors that are not
// AppErrors are reported as internal.
func respondError(c *gin.Context, err error) {
	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		appErr = apperrors.InternalServer("internal error", err)
	}
	_ = c.Error(err)
	c.AbortWithStatusJSON(appErr.StatusCode, appErr)
}
