package db_models

type PaymentType string

const (
	PaymentWhatsApp PaymentType = "whatsapp"
	PaymentRazorpay PaymentType = "razorpay"
)

// PlatformConfigID is the fixed primary key of the singleton row. The
// repository always reads and writes this id so there is never more than one
// meaningful row.
const PlatformConfigID uint = 1

type PlatformConfig struct {
	ID uint `gorm:"primaryKey" json:"id"`

	PaymentType PaymentType `gorm:"size:16;default:whatsapp" json:"paymentType"`
	WhatsApp    string      `gorm:"column:whatsapp" json:"whatsapp"`
	AdminEmail  string      `json:"adminEmail"`

	RazorpayKeyID     string `gorm:"column:razorpay_key_id" json:"razorpayKeyId"`
	RazorpayKeySecret string `gorm:"column:razorpay_key_secret" json:"razorpayKeySecret"`
}

func (PlatformConfig) TableName() string {
	return "platform_data"
}
