package response_models

import "encoding/json"

type RestaurantResponse struct {
	ID             uint            `json:"id"`
	Name           string          `json:"name"`
	Slug           string          `json:"slug"`
	Owner          uint            `json:"owner,omitempty"`
	Domain         *string         `json:"domain,omitempty"`
	Logo           string          `json:"logo,omitempty"`
	Description    *string         `json:"description,omitempty"`
	Favicon        string          `json:"favicon,omitempty"`
	WhatsAppNumber string          `json:"whatsAppNumber,omitempty"`
	MembershipType string          `json:"membershipType,omitempty"`
	ExpiryDate     *int64          `json:"expiryDate,omitempty"`
	Settings       json.RawMessage `json:"settings,omitempty"`
}

// AdminRestaurantRow is the flattened shape the admin listing returns, with
// the owning account's email in place of its id.
type AdminRestaurantRow struct {
	ID             uint   `json:"id"`
	Owner          string `json:"owner"`
	Slug           string `json:"slug"`
	Name           string `json:"name"`
	CreatedAt      int64  `json:"createdAt"`
	MembershipType string `json:"membershipType"`
	ExpiryDate     *int64 `json:"expiryDate,omitempty"`
}
