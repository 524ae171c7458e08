package structs

// Flavor is a purchasable variant of a product with its own stock quantity and image.
type Flavor struct {
	Name        string `json:"name"`
	Image       string `json:"image"`
	Quantity    int    `json:"quantity"`
	Description string `json:"description"`
}

// ProductInput is the loose wire shape of a product on the admin save endpoint.
// A product arrives either in the current form (flavors) or the legacy form
// (colors with per-size stock); the legacy form is upgraded to flavors during
// normalization and never written back.
type ProductInput struct {
	Title        string       `json:"title"`
	Category     string       `json:"category"`
	Price        float64      `json:"price"`
	Description  string       `json:"description"`
	Status       string       `json:"status"`
	DisplayOrder *int         `json:"displayOrder"`
	Flavors      []Flavor     `json:"flavors,omitempty"`
	Colors       []ColorInput `json:"colors,omitempty"`
}

// ColorInput is the legacy product variant shape.
type ColorInput struct {
	Name     string      `json:"name"`
	Image    string      `json:"image"`
	Sizes    []SizeInput `json:"sizes,omitempty"`
	Quantity int         `json:"quantity"`
}

type SizeInput struct {
	Stock int `json:"stock"`
}
