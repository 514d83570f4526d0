package request_models

import "encoding/json"

type CreateRestaurantRequest struct {
	Name     string          `json:"name" binding:"required"`
	Slug     string          `json:"slug" binding:"required,min=3,max=60"`
	Settings json.RawMessage `json:"settings"`
}

type MembershipOverrideRequest struct {
	MembershipType string `json:"membershipType" binding:"required,oneof=trial basic lifetime"`
	ExpiryDate     *int64 `json:"expiryDate"`
}
