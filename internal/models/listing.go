package models

// ListingRequest represents the product details entered in the generator form
type ListingRequest struct {
	ProductName string `json:"productName" example:"Nike Air Max 90"`
	Platform    string `json:"platform" example:"eBay"`
	Condition   string `json:"condition" example:"Good"`
	Features    string `json:"features,omitempty" example:"Size 10, original box"`
	Category    string `json:"category,omitempty" example:"Men's Shoes"`
}

// ListingResult is the listing shape the model is asked to produce. Generated
// listings are passed to the client untouched, so this documents rather than enforces it.
type ListingResult struct {
	Title        string   `json:"title" example:"Nike Air Max 90 Men's Size 10 White Grey - Good Condition"`
	Description  string   `json:"description"`
	BulletPoints []string `json:"bulletPoints"`
	Keywords     []string `json:"keywords"`
}

// ExportListingsRequest carries generated listings back for a spreadsheet export
type ExportListingsRequest struct {
	Platform string          `json:"platform,omitempty" example:"eBay"`
	Listings []ListingResult `json:"listings"`
}
