package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// SignPayment computes the lowercase-hex HMAC-SHA256 the gateway attaches to
// a successful checkout: the message is "<order_id>|<payment_id>" keyed by
// the key secret.
func SignPayment(secret, orderID, paymentID string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

// VerifyPaymentSignature recomputes the signature and compares it in
// constant time.
func VerifyPaymentSignature(secret, orderID, paymentID, signature string) bool {
	expected := SignPayment(secret, orderID, paymentID)
	return hmac.Equal([]byte(expected), []byte(signature))
}
