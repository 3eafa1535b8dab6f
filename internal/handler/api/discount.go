package api

import (
	"net/http"

	reqdto "promo-engine/internal/handler/dto/request"
	resdto "promo-engine/internal/handler/dto/response"
	"promo-engine/internal/handler/httperr"
	"promo-engine/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type DiscountHandler struct {
	discountUseCase usecase.DiscountUseCase
}

func NewDiscountHandler(discountUseCase usecase.DiscountUseCase) *DiscountHandler {
	return &DiscountHandler{
		discountUseCase: discountUseCase,
	}
}

// @Summary Validate a discount code
// @Description Validate a single coupon code against an order and compute the discount amount
// @Tags discounts
// @Accept json
// @Produce json
// @Param request body reqdto.ValidateDiscountRequest true "Code and order context"
// @Success 200 {object} resdto.DiscountResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /discounts/validate [post]
func (h *DiscountHandler) Validate(c *gin.Context) {
	var req reqdto.ValidateDiscountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.discountUseCase.ValidateSingle(c.Request.Context(), req.Code, req.Order.ToInput())
	if err != nil {
		respondUseCaseError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.NewDiscountResponse(result))
}

// @Summary Validate stacked discount codes
// @Description Validate a chain of codes in order, each applied to the amount remaining after the previous ones
// @Tags discounts
// @Accept json
// @Produce json
// @Param request body reqdto.ValidateStackedRequest true "Codes and order context"
// @Success 200 {object} resdto.StackedDiscountResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /discounts/validate-stacked [post]
func (h *DiscountHandler) ValidateStacked(c *gin.Context) {
	var req reqdto.ValidateStackedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.discountUseCase.ValidateStacked(c.Request.Context(), req.Codes, req.Order.ToInput())
	if err != nil {
		respondUseCaseError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.NewStackedDiscountResponse(result))
}

// @Summary List automatic discounts for an order
// @Description Return every automatic discount the order currently qualifies for, highest priority first
// @Tags discounts
// @Accept json
// @Produce json
// @Param request body reqdto.AutomaticDiscountsRequest true "Order context"
// @Success 200 {object} resdto.DiscountListResponse
// @Failure 400 {object} httperr.Response
// @Router /discounts/automatic [post]
func (h *DiscountHandler) Automatic(c *gin.Context) {
	var req reqdto.AutomaticDiscountsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	results, err := h.discountUseCase.DiscoverAutomatic(c.Request.Context(), req.Order.ToInput())
	if err != nil {
		respondUseCaseError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.NewDiscountListResponse(results))
}

// @Summary Redeem a discount
// @Description Atomically advance the discount's usage counter; fails once the usage limit is reached
// @Tags discounts
// @Produce json
// @Param id path string true "Discount ID"
// @Success 204
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /discounts/{id}/redeem [post]
func (h *DiscountHandler) Redeem(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid discount ID", nil)
		return
	}

	if err := h.discountUseCase.MarkUsed(c.Request.Context(), id); err != nil {
		respondUseCaseError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
