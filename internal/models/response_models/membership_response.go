package response_models

type MembershipStatusResponse struct {
	MembershipType string `json:"membershipType"`
	ExpiryDate     *int64 `json:"expiryDate,omitempty"`
	IsLifetime     bool   `json:"isLifetime"`
	IsExpired      bool   `json:"isExpired"`
	IsExpiringSoon bool   `json:"isExpiringSoon"`
	DaysLeft       *int   `json:"daysLeft,omitempty"`
	ShowPricing    bool   `json:"showPricing"`
}
