package request

// ProductListRequest represents the query parameters of the product listing
type ProductListRequest struct {
	Page        int    `form:"page" binding:"omitempty,min=1"`
	PerPage     int    `form:"per_page" binding:"omitempty,min=1,max=100"`
	Search      string `form:"search"`
	Promotional bool   `form:"promotional"`
	InStock     bool   `form:"in_stock"`
}

// PromotionListRequest represents the query parameters of the promotion listing
type PromotionListRequest struct {
	Active bool `form:"active"`
}
