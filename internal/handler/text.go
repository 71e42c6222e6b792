package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/ayushvyasgit/storefront-utils/pkg/errors"
	"github.com/ayushvyasgit/storefront-utils/pkg/utils"
)

type slugQuery struct {
	Text  string `form:"text"`
	ASCII bool   `form:"ascii"`
}

type truncateQuery struct {
	Text   string `form:"text"`
	Length *int   `form:"length" binding:"required,gte=0"`
}

func (h *Handler) validateEmail(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"valid": utils.IsValidEmail(c.Query("email"))})
}

func (h *Handler) validatePhone(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"valid": utils.IsValidNigerianPhone(c.Query("phone"))})
}

func (h *Handler) slugify(c *gin.Context) {
	var q slugQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondError(c, apperrors.BadRequest("invalid slugify query", err))
		return
	}

	slugify := utils.Slugify
	if q.ASCII {
		slugify = utils.SlugifyASCII
	}
	c.JSON(http.StatusOK, gin.H{"slug": slugify(q.Text)})
}

func (h *Handler) truncate(c *gin.Context) {
	var q truncateQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondError(c, apperrors.BadRequest("invalid truncate query", err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"text": utils.Truncate(q.Text, *q.Length)})
}
