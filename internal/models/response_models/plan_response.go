package response_models

type PlanResponse struct {
	ID            uint     `json:"id"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Price         int64    `json:"price"`
	OriginalPrice int64    `json:"originalPrice"`
	Type          string   `json:"type"` // "monthly" | "yearly" | "lifetime"
	Features      []string `json:"features"`
	CTA           string   `json:"cta"`
	Popular       bool     `json:"popular"`
	CreatedAt     int64    `json:"createdAt"`
}
