package request_models

type PlatformConfigRequest struct {
	PaymentType       string `json:"paymentType" binding:"required,oneof=whatsapp razorpay"`
	WhatsApp          string `json:"whatsapp"`
	AdminEmail        string `json:"adminEmail" binding:"omitempty,email"`
	RazorpayKeyID     string `json:"razorpayKeyId"`
	RazorpayKeySecret string `json:"razorpayKeySecret"`
}
