package request_models

type PlanRequest struct {
	Name          string   `json:"name" binding:"required"`
	Description   string   `json:"description" binding:"required"`
	Price         *int64   `json:"price" binding:"required"`
	OriginalPrice int64    `json:"originalPrice"`
	Type          string   `json:"type" binding:"omitempty,oneof=monthly yearly lifetime"`
	Features      []string `json:"features"`
	CTA           string   `json:"cta"`
	Popular       bool     `json:"popular"`
}
