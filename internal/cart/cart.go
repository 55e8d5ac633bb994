package cart

// Line is the bare (product, quantity) pair stored per user.
type Line struct {
	ProductID int `json:"productId"`
	Quantity  int `json:"quantity"`
}

// Item is a cart line joined with product details for display.
type Item struct {
	ProductID int     `json:"productId"`
	Name      string  `json:"productName"`
	Price     float64 `json:"productPrice"`
	ImageURL  *string `json:"imageUrl,omitempty"`
	Stock     int     `json:"stock"`
	Quantity  int     `json:"quantity"`
}
