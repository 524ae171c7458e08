package tables

import (
	"elsabor_server/structs"
)

type Product struct {
	tableName    struct{}         `bun:"table:products,alias:p"`
	ID           string           `bun:"id,pk" json:"id"`
	Title        string           `bun:"title,notnull" json:"title"`
	Category     string           `bun:"category,notnull" json:"category"` // references categories.id, not enforced here
	Price        float64          `bun:"price,notnull" json:"price"`
	Description  string           `bun:"description" json:"description"`
	Status       string           `bun:"status" json:"status"`
	DisplayOrder *int             `bun:"display_order" json:"displayOrder"`
	Flavors      []structs.Flavor `bun:"flavors,type:jsonb" json:"flavors"`
}

type Category struct {
	tableName   struct{} `bun:"table:categories,alias:c"`
	ID          string   `bun:"id,pk" json:"id"` // user-supplied stable key, not auto-generated
	Name        string   `bun:"name,notnull" json:"name"`
	Description string   `bun:"description" json:"description"`
}
