package services

import (
	"elsabor_server/structs"
	"elsabor_server/structs/tables"
)

// Sample data returned when a backing table is missing or empty, so a fresh
// deployment renders a usable menu before the admin saves anything.

func intPtr(v int) *int { return &v }

func SampleProducts() []tables.Product {
	return []tables.Product{
		{
			ID:           "sample-empanadas",
			Title:        "Empanadas Criollas",
			Category:     "entradas",
			Price:        4.50,
			Description:  "Baked empanadas with a choice of filling",
			Status:       "active",
			DisplayOrder: intPtr(1),
			Flavors: []structs.Flavor{
				{Name: "Carne", Image: "https://placehold.co/300x300?text=Carne", Quantity: 24, Description: "Ground beef, olives and egg"},
				{Name: "Pollo", Image: "https://placehold.co/300x300?text=Pollo", Quantity: 18, Description: "Shredded chicken and peppers"},
				{Name: "Queso", Image: "https://placehold.co/300x300?text=Queso", Quantity: 0, Description: "Mozzarella and oregano"},
			},
		},
		{
			ID:           "sample-bandeja",
			Title:        "Bandeja del Dia",
			Category:     "platos-fuertes",
			Price:        12.90,
			Description:  "Daily plate with rice, beans and plantain",
			Status:       "active",
			DisplayOrder: intPtr(2),
			Flavors: []structs.Flavor{
				{Name: "Res", Image: "https://placehold.co/300x300?text=Res", Quantity: 12, Description: "Grilled beef"},
				{Name: "Cerdo", Image: "https://placehold.co/300x300?text=Cerdo", Quantity: 10, Description: "Pork belly"},
			},
		},
		{
			ID:           "sample-tresleches",
			Title:        "Tres Leches",
			Category:     "postres",
			Price:        5.00,
			Description:  "Classic three-milk cake",
			Status:       "active",
			DisplayOrder: intPtr(3),
			Flavors: []structs.Flavor{
				{Name: "Clasico", Image: "https://placehold.co/300x300?text=Tres+Leches", Quantity: 8, Description: ""},
			},
		},
		{
			ID:           "sample-limonada",
			Title:        "Limonada de Coco",
			Category:     "bebidas",
			Price:        3.50,
			Description:  "Coconut lemonade",
			Status:       "active",
			DisplayOrder: intPtr(4),
			Flavors:      []structs.Flavor{},
		},
	}
}

func SampleCategories() []tables.Category {
	return []tables.Category{
		{ID: "default", Name: "Default", Description: "Category of default"},
		{ID: "entradas", Name: "Entradas", Description: "Starters and snacks"},
		{ID: "platos-fuertes", Name: "Platos Fuertes", Description: "Main dishes"},
		{ID: "postres", Name: "Postres", Description: "Desserts"},
		{ID: "bebidas", Name: "Bebidas", Description: "Drinks"},
	}
}
