package db_models

import (
	"gorm.io/datatypes"
)

type PlanType string

const (
	PlanMonthly  PlanType = "monthly"
	PlanYearly   PlanType = "yearly"
	PlanLifetime PlanType = "lifetime"
)

type Plan struct {
	BaseModel
	Name        string `gorm:"not null"`
	Description string `gorm:"not null"`

	Price         int64 `gorm:"not null;default:0"` // smallest display unit, e.g. rupees
	OriginalPrice int64 `gorm:"default:0"`

	Type PlanType `gorm:"size:16;not null;default:monthly"`

	// Ordered list of feature strings rendered on the pricing page.
	Features datatypes.JSON `gorm:"type:jsonb;default:'[]'"`

	CTA     string `gorm:"column:cta;default:Get Plan"`
	Popular bool   `gorm:"not null;default:false"`
}
