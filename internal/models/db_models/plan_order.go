package db_models

type OrderStatus string

const (
	OrderCreated OrderStatus = "created"
	OrderPaid    OrderStatus = "paid"
	OrderFailed  OrderStatus = "failed"
)

// PlanOrder links a restaurant to the gateway order that funds its
// membership. The unique indexes on the gateway ids are the replay guard:
// a payment id can only ever be consumed once.
type PlanOrder struct {
	BaseModel
	PlanID       uint `gorm:"index;not null"`
	RestaurantID *uint

	AmountMinor int64  `gorm:"not null"` // paise
	Currency    string `gorm:"size:3;not null;default:INR"`
	Receipt     string `gorm:"not null"`

	GatewayOrderID   string  `gorm:"uniqueIndex"`
	GatewayPaymentID *string `gorm:"uniqueIndex"`

	Status OrderStatus `gorm:"size:16;not null;default:created;index"`
	PaidAt *int64

	Plan Plan `gorm:"foreignKey:PlanID"`
}
