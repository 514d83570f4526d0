package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"menulink/internal/models/db_models"
	"menulink/internal/models/request_models"
	"menulink/internal/services"
	"menulink/pkg/middleware"
	"menulink/pkg/utils"
)

type BillingController struct {
	billingService services.BillingServiceInterface
}

func NewBillingController(billingService services.BillingServiceInterface) *BillingController {
	return &BillingController{
		billingService: billingService,
	}
}

// The order endpoints keep the checkout client's wire contract:
// {success: true, ...} / {success: false, error: "..."} instead of the
// shared APIResponse envelope.
func respondOrderError(c *gin.Context, err error) {
	var code int
	var message string

	switch {
	case errors.Is(err, utils.ErrPlanNotFound):
		code, message = http.StatusNotFound, "Plan not found"
	case errors.Is(err, utils.ErrRestaurantNotFound):
		code, message = http.StatusNotFound, "Restaurant not found"
	case errors.Is(err, utils.ErrOrderNotFound):
		code, message = http.StatusNotFound, "Order not found"
	case errors.Is(err, utils.ErrInvalidSignature):
		code, message = http.StatusBadRequest, "Invalid signature"
	case errors.Is(err, utils.ErrPaymentReplayed):
		code, message = http.StatusConflict, "Payment already applied"
	case errors.Is(err, utils.ErrPlanMismatch):
		code, message = http.StatusBadRequest, "Order does not match the selected plan"
	case errors.Is(err, utils.ErrNotOwner):
		code, message = http.StatusForbidden, "Restaurant does not belong to this account"
	default:
		utils.Logger.WithError(err).Error("order endpoint failure")
		code, message = http.StatusInternalServerError, "Internal server error"
	}

	c.JSON(code, gin.H{"success": false, "error": message})
}

// CreateOrder godoc
// @Summary Create a payment order for a membership plan
// @Description Prices the plan and creates a gateway order when razorpay is configured
// @Tags Orders
// @Accept json
// @Produce json
// @Param request body request_models.CreateOrderRequest true "Create Order Request"
// @Security BearerAuth
// @Router /restaurants/order/create-one [post]
func (b *BillingController) CreateOrder(c *gin.Context) {

	var request request_models.CreateOrderRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request payload"})
		return
	}

	result, err := b.billingService.InitiateOrder(c.Request.Context(), request.PlanID)
	if err != nil {
		respondOrderError(c, err)
		return
	}

	if result.PaymentType == db_models.PaymentRazorpay {
		c.JSON(http.StatusOK, gin.H{"success": true, "razorpay": result.Razorpay})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "whatsapp": result.WhatsApp})
}

// VerifyOrder godoc
// @Summary Verify a gateway payment and activate the membership
// @Description Recomputes the payment signature and, on match, upgrades the restaurant's membership
// @Tags Orders
// @Accept json
// @Produce json
// @Param request body request_models.VerifyOrderRequest true "Verify Order Request"
// @Security BearerAuth
// @Router /restaurants/order/verify [post]
func (b *BillingController) VerifyOrder(c *gin.Context) {

	var request request_models.VerifyOrderRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request payload"})
		return
	}

	accountID, ok := middleware.AccountID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Unauthorized"})
		return
	}

	if err := b.billingService.VerifyPayment(c.Request.Context(), accountID, request); err != nil {
		respondOrderError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Membership activated or updated"})
}
