package request_models

type CreateOrderRequest struct {
	PlanID uint `json:"planId" binding:"required"`
}

type VerifyOrderRequest struct {
	RazorpayOrderID   string `json:"razorpay_order_id" binding:"required"`
	RazorpayPaymentID string `json:"razorpay_payment_id" binding:"required"`
	RazorpaySignature string `json:"razorpay_signature" binding:"required"`
	PlanID            uint   `json:"planId" binding:"required"`
	RestaurantID      uint   `json:"restaurantId" binding:"required"`
	// Accepted for wire compatibility; the effective identity is always the
	// authenticated account, never this field.
	UserID uint `json:"userId"`
}
