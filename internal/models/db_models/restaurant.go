package db_models

import (
	"gorm.io/datatypes"
)

type MembershipType string

const (
	MembershipTrial    MembershipType = "trial"
	MembershipBasic    MembershipType = "basic"
	MembershipLifetime MembershipType = "lifetime"
)

type Restaurant struct {
	BaseModel
	Owner uint `gorm:"index;not null"`

	Slug        string `gorm:"uniqueIndex;not null"`
	Name        string `gorm:"not null"`
	Description *string

	Domain         *string `gorm:"uniqueIndex"`
	Logo           string
	Favicon        string
	Currency       string `gorm:"size:3;not null;default:INR"`
	WhatsAppNumber string `gorm:"column:whatsapp_number"`

	Settings datatypes.JSON `gorm:"type:jsonb;default:'{}'"`

	// Membership state. ExpiryDate is epoch milliseconds; nil means no expiry
	// was ever recorded (the display logic treats that as always expiring).
	MembershipType MembershipType `gorm:"size:16;default:trial;index"`
	ExpiryDate     *int64

	Account Account `gorm:"foreignKey:Owner"`
}
