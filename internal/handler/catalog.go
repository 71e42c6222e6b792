package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/ayushvyasgit/storefront-utils/pkg/errors"
	"github.com/ayushvyasgit/storefront-utils/pkg/utils"
)

type pageQuery struct {
	Page  int `form:"page"`
	Limit int `form:"limit"`
}

type paginationQuery struct {
	Page  int `form:"page"`
	Limit int `form:"limit"`
	Total int `form:"total"`
}

type discountQuery struct {
	Original   *float64 `form:"original" binding:"required"`
	Discounted *float64 `form:"discounted" binding:"required"`
}

type cartWeightRequest struct {
	Items []utils.CartLine `json:"items" binding:"required"`
}

type randomQuery struct {
	Length int `form:"length" binding:"gte=0,lte=256"`
}

func (h *Handler) listStates(c *gin.Context) {
	var q pageQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondError(c, apperrors.BadRequest("invalid page query", err))
		return
	}

	states := utils.NigerianStates()
	offset, page, limit := utils.Paginate(q.Page, q.Limit, h.cfg.Pagination.DefaultLimit, h.cfg.Pagination.MaxLimit)

	start := max(0, min(offset, len(states)))
	end := max(start, min(offset+limit, len(states)))

	c.JSON(http.StatusOK, gin.H{
		"data":       states[start:end],
		"pagination": utils.GetPaginationInfo(page, limit, len(states)),
	})
}

// groupedStates groups the state list by initial letter for jump lists.
func (h *Handler) groupedStates(c *gin.Context) {
	groups := utils.GroupBy(utils.NigerianStates(), func(s utils.NigerianState) string {
		return string(s)[:1]
	})
	c.JSON(http.StatusOK, gin.H{"data": groups})
}

func (h *Handler) getState(c *gin.Context) {
	state, err := utils.ParseNigerianState(c.Param("name"))
	if err != nil {
		respondError(c, apperrors.NotFound(err.Error()))
		return
	}
	c.JSON(http.StatusOK, gin.H{"state": state})
}

func (h *Handler) discount(c *gin.Context) {
	var q discountQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondError(c, apperrors.BadRequest("invalid discount query", err))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"percentage": utils.CalculateDiscountPercentage(*q.Original, *q.Discounted),
		"original":   utils.FormatPrice(*q.Original),
		"discounted": utils.FormatPrice(*q.Discounted),
	})
}

func (h *Handler) cartWeight(c *gin.Context) {
	var req cartWeightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperrors.BadRequest("invalid cart", err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"totalWeight": utils.CalculateTotalWeight(req.Items)})
}

func (h *Handler) pagination(c *gin.Context) {
	var q paginationQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondError(c, apperrors.BadRequest("invalid pagination query", err))
		return
	}

	c.JSON(http.StatusOK, utils.GetPaginationInfo(q.Page, q.Limit, q.Total))
}

func (h *Handler) random(c *gin.Context) {
	var q randomQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondError(c, apperrors.BadRequest("invalid random query", err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"value": utils.GenerateRandomString(q.Length)})
}
