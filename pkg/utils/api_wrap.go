package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func traceID(c *gin.Context) string {
	if v, ok := c.Get("trace_id"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: traceID(c),
		Data:    data,
	})
}

func RespondCreated(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusCreated, APIResponse{
		Status:  "success",
		Code:    http.StatusCreated,
		Message: message,
		TraceID: traceID(c),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: traceID(c),
	})
}

// HandleServiceError translates sentinel service errors into the API
// envelope. Anything unrecognized is logged and surfaced as a generic 500.
func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrAccountNotFound):
		RespondError(c, http.StatusUnauthorized, "Unauthorized")
	case errors.Is(err, ErrPlanNotFound):
		RespondError(c, http.StatusNotFound, "Plan not found")
	case errors.Is(err, ErrRestaurantNotFound):
		RespondError(c, http.StatusNotFound, "Restaurant not found")
	case errors.Is(err, ErrOrderNotFound):
		RespondError(c, http.StatusNotFound, "Order not found")
	case errors.Is(err, ErrInvalidSignature):
		RespondError(c, http.StatusBadRequest, "Invalid signature")
	case errors.Is(err, ErrPaymentReplayed):
		RespondError(c, http.StatusConflict, "Payment already applied")
	case errors.Is(err, ErrPlanMismatch):
		RespondError(c, http.StatusBadRequest, "Order does not match the selected plan")
	case errors.Is(err, ErrSlugTaken):
		RespondError(c, http.StatusConflict, "Slug already taken")
	case errors.Is(err, ErrNotOwner):
		RespondError(c, http.StatusForbidden, "Forbidden")
	case errors.Is(err, ErrMembershipExpired):
		RespondError(c, http.StatusForbidden, "Membership expired")
	case errors.Is(err, ErrValidation):
		RespondError(c, http.StatusBadRequest, "Missing required fields")
	case errors.Is(err, ErrGatewayFailure):
		Logger.WithError(err).Error("payment gateway failure")
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	case errors.Is(err, ErrDatabaseError):
		Logger.WithError(err).Error("database failure")
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	default:
		Logger.WithError(err).Error("unhandled service error")
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
