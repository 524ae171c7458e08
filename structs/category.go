package structs

import "encoding/json"

type SaveProductsRequest struct {
	Products json.RawMessage `json:"products"`
}

type SaveCategoriesRequest struct {
	Categories json.RawMessage `json:"categories"`
}

type AddCategoryRequest struct {
	Category json.RawMessage `json:"category"`
}

type DeleteCategoryRequest struct {
	CategoryID string `json:"categoryId"`
}
