package category

// Category groups products for catalog filtering.
type Category struct {
	ID   int    `json:"categoryId"`
	Name string `json:"categoryName"`
}
