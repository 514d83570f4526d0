package response_models

// RazorpayCheckout is handed to the browser so it can open the gateway's
// checkout widget. It never carries the key secret.
type RazorpayCheckout struct {
	KeyID           string `json:"keyId"`
	RazorpayOrderID string `json:"razorPayOrderId"`
	Amount          int64  `json:"amount"` // paise
	Currency        string `json:"currency"`
}

// WhatsAppCheckout is the whatsapp-path shape: the client composes the deep
// link itself from the platform contact number.
type WhatsAppCheckout struct {
	WhatsApp string `json:"whatsapp"`
	Amount   int64  `json:"amount"`
}
