package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/ayushvyasgit/storefront-utils/pkg/errors"
	"github.com/ayushvyasgit/storefront-utils/pkg/utils"
)

type priceQuery struct {
	Amount *float64 `form:"amount" binding:"required"`
}

type dateQuery struct {
	Date string `form:"date" binding:"required"`
}

type fileSizeQuery struct {
	Bytes *int64 `form:"bytes" binding:"required"`
}

type phoneQuery struct {
	Phone string `form:"phone" binding:"required"`
}

func (h *Handler) formatPrice(c *gin.Context) {
	var q priceQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondError(c, apperrors.BadRequest("invalid price query", err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"formatted": utils.FormatPrice(*q.Amount)})
}

// formatDate renders the date in the configured time zone.
func (h *Handler) formatDate(c *gin.Context) {
	var q dateQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondError(c, apperrors.BadRequest("invalid date query", err))
		return
	}

	t, err := utils.ParseDate(q.Date)
	if err != nil {
		respondError(c, apperrors.BadRequest(utils.InvalidDate, err))
		return
	}
	t = t.In(h.cfg.Locale.Location)

	c.JSON(http.StatusOK, gin.H{
		"date":     utils.FormatDate(t),
		"dateTime": utils.FormatDateTime(t),
		"relative": utils.GetRelativeTime(t),
	})
}

func (h *Handler) formatFileSize(c *gin.Context) {
	var q fileSizeQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondError(c, apperrors.BadRequest("invalid file size query", err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"formatted": utils.FormatFileSize(*q.Bytes)})
}

func (h *Handler) formatPhone(c *gin.Context) {
	var q phoneQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondError(c, apperrors.BadRequest("invalid phone query", err))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"formatted": utils.FormatNigerianPhone(q.Phone),
		"valid":     utils.IsValidNigerianPhone(q.Phone),
	})
}
