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

type PromotionHandler struct {
	promotionUseCase usecase.PromotionUseCase
}

func NewPromotionHandler(promotionUseCase usecase.PromotionUseCase) *PromotionHandler {
	return &PromotionHandler{
		promotionUseCase: promotionUseCase,
	}
}

// @Summary Validate a promotion code
// @Description Validate a single promotion code against an order and compute the benefit
// @Tags promotions
// @Accept json
// @Produce json
// @Param request body reqdto.ValidatePromotionRequest true "Code and order context"
// @Success 200 {object} resdto.PromotionResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /promotions/validate [post]
func (h *PromotionHandler) Validate(c *gin.Context) {
	var req reqdto.ValidatePromotionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.promotionUseCase.ValidateSingle(c.Request.Context(), req.Code, req.Order.ToInput())
	if err != nil {
		respondUseCaseError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.NewPromotionResponse(result))
}

// @Summary List applicable promotions for an order
// @Description Return every promotion the order qualifies for, best first
// @Tags promotions
// @Accept json
// @Produce json
// @Param request body reqdto.ApplicablePromotionsRequest true "Order context"
// @Success 200 {object} resdto.PromotionListResponse
// @Failure 400 {object} httperr.Response
// @Router /promotions/applicable [post]
func (h *PromotionHandler) Applicable(c *gin.Context) {
	var req reqdto.ApplicablePromotionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	results, err := h.promotionUseCase.DiscoverApplicable(c.Request.Context(), req.Order.ToInput())
	if err != nil {
		respondUseCaseError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.NewPromotionListResponse(results))
}

// @Summary Redeem a promotion
// @Description Record one redemption for an order; resubmitting the same order is a no-op
// @Tags promotions
// @Accept json
// @Produce json
// @Param id path string true "Promotion ID"
// @Param request body reqdto.RedeemPromotionRequest true "Redemption details"
// @Success 200 {object} resdto.RedemptionResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /promotions/{id}/redeem [post]
func (h *PromotionHandler) Redeem(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid promotion ID", nil)
		return
	}

	var req reqdto.RedeemPromotionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	err = h.promotionUseCase.MarkUsed(c.Request.Context(), id, req.CustomerID, req.OrderID, req.DiscountApplied)
	if err != nil {
		respondUseCaseError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.RedemptionResponse{
		PromotionID: id,
		OrderID:     req.OrderID,
		Recorded:    true,
	})
}

// @Summary Customer usage count
// @Description Report how many times the customer has redeemed the promotion
// @Tags promotions
// @Produce json
// @Param id path string true "Promotion ID"
// @Param customerId path string true "Customer ID"
// @Success 200 {object} resdto.CustomerUsageResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /promotions/{id}/usage/{customerId} [get]
func (h *PromotionHandler) CustomerUsage(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid promotion ID", nil)
		return
	}
	customerID, err := uuid.Parse(c.Param("customerId"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid customer ID", nil)
		return
	}

	count, err := h.promotionUseCase.CustomerUsageCount(c.Request.Context(), id, customerID)
	if err != nil {
		respondUseCaseError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.CustomerUsageResponse{
		PromotionID: id,
		CustomerID:  customerID,
		UsageCount:  count,
	})
}
