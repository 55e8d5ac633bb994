package product

// Product represents a catalog item. Stock is only ever decremented by
// checkout; inactive products are hidden from all user-facing reads.
type Product struct {
	ID          int     `json:"productId"`
	Name        string  `json:"productName"`
	Description string  `json:"productDesc,omitempty"`
	Price       float64 `json:"productPrice"`
	Stock       int     `json:"stock"`
	CategoryID  *int    `json:"categoryId,omitempty"`
	ImageURL    *string `json:"imageUrl,omitempty"`
	IsActive    bool    `json:"isActive"`
	CreatedAt   string  `json:"createdAt,omitempty"`
	UpdatedAt   string  `json:"updatedAt,omitempty"`
}
