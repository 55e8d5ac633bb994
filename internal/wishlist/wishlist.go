package wishlist

// Item is a wishlist entry joined with product details.
type Item struct {
	ProductID int     `json:"productId"`
	Name      string  `json:"productName"`
	Price     float64 `json:"productPrice"`
	ImageURL  *string `json:"imageUrl,omitempty"`
	IsActive  bool    `json:"isActive"`
}
