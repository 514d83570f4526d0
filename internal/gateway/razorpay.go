package gateway

import (
	"context"
	"fmt"

	razorpay "github.com/razorpay/razorpay-go"
)

// Order is the slice of the gateway's order object the billing flow needs.
type Order struct {
	ID       string
	Amount   int64 // paise
	Currency string
	Status   string
}

// OrderCreator creates a payment order at the gateway. Credentials come from
// the platform configuration row, not process environment, so they are passed
// per call.
type OrderCreator interface {
	CreateOrder(ctx context.Context, keyID, keySecret string, amountMinor int64, receipt string) (*Order, error)
}

type RazorpayGateway struct{}

func NewRazorpayGateway() OrderCreator {
	return &RazorpayGateway{}
}

func (g *RazorpayGateway) CreateOrder(ctx context.Context, keyID, keySecret string, amountMinor int64, receipt string) (*Order, error) {
	client := razorpay.NewClient(keyID, keySecret)

	body, err := client.Order.Create(map[string]interface{}{
		"amount":          amountMinor,
		"currency":        "INR",
		"receipt":         receipt,
		"payment_capture": 1,
	}, nil)
	if err != nil {
		return nil, fmt.Errorf("razorpay order create: %w", err)
	}

	order := &Order{}

	if id, ok := body["id"].(string); ok {
		order.ID = id
	}
	if order.ID == "" {
		return nil, fmt.Errorf("razorpay order create: response missing order id")
	}
	if amount, ok := body["amount"].(float64); ok {
		order.Amount = int64(amount)
	}
	if currency, ok := body["currency"].(string); ok {
		order.Currency = currency
	}
	if status, ok := body["status"].(string); ok {
		order.Status = status
	}

	return order, nil
}
