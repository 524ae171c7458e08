package handling

import (
	"encoding/json"

	"elsabor_server/structs"
	"elsabor_server/structs/tables"
)

// PlaceholderImageURL is used for flavors that arrive without an image.
const PlaceholderImageURL = "https://placehold.co/300x300?text=Sin+Imagen"

// NormalizeProducts maps the loose wire payload of the admin save endpoint to
// store rows. Non-array input yields an empty set, never an error. Elements
// are decoded one by one; an undecodable element is skipped and never voids
// the rest of the set, since the save path replaces the whole table. Legacy
// colors entries are upgraded to flavors; flavors entries are defaulted and
// partitioned by availability. The function is idempotent over its own output.
func NormalizeProducts(raw json.RawMessage) []tables.Product {
	var elements []json.RawMessage
	if len(raw) == 0 || json.Unmarshal(raw, &elements) != nil {
		return []tables.Product{}
	}

	products := make([]tables.Product, 0, len(elements))
	for _, el := range elements {
		var in structs.ProductInput
		if err := json.Unmarshal(el, &in); err != nil {
			continue
		}
		p := tables.Product{
			Title:        in.Title,
			Category:     in.Category,
			Price:        in.Price,
			Description:  in.Description,
			Status:       in.Status,
			DisplayOrder: in.DisplayOrder,
		}

		switch {
		case len(in.Colors) > 0:
			p.Flavors = ConvertColors(in.Colors)
		case in.Flavors != nil:
			p.Flavors = NormalizeFlavors(in.Flavors)
		}

		products = append(products, p)
	}
	return products
}

// NormalizeProductRows re-normalizes rows coming back from the store; every
// read path runs through here before the response is shaped.
func NormalizeProductRows(products []tables.Product) []tables.Product {
	for i := range products {
		if products[i].Flavors != nil {
			products[i].Flavors = NormalizeFlavors(products[i].Flavors)
		}
	}
	return products
}

// NormalizeFlavors fills defaults and stable-partitions the sequence so that
// every in-stock flavor precedes every sold-out one, preserving the input
// order within each partition.
func NormalizeFlavors(flavors []structs.Flavor) []structs.Flavor {
	available := make([]structs.Flavor, 0, len(flavors))
	soldOut := make([]structs.Flavor, 0)

	for _, f := range flavors {
		f = fillFlavorDefaults(f)
		if f.Quantity > 0 {
			available = append(available, f)
		} else {
			soldOut = append(soldOut, f)
		}
	}

	return append(available, soldOut...)
}

// ConvertColors upgrades the legacy colors shape to flavors, summing stock
// across sizes (or taking the direct quantity when no sizes are present).
// One-way: nothing ever writes the colors shape back.
func ConvertColors(colors []structs.ColorInput) []structs.Flavor {
	flavors := make([]structs.Flavor, 0, len(colors))
	for _, c := range colors {
		quantity := c.Quantity
		if len(c.Sizes) > 0 {
			quantity = 0
			for _, s := range c.Sizes {
				quantity += s.Stock
			}
		}
		flavors = append(flavors, structs.Flavor{
			Name:     c.Name,
			Image:    c.Image,
			Quantity: quantity,
		})
	}
	return NormalizeFlavors(flavors)
}

func fillFlavorDefaults(f structs.Flavor) structs.Flavor {
	if f.Name == "" {
		f.Name = "No name"
	}
	if f.Image == "" {
		f.Image = PlaceholderImageURL
	}
	if f.Quantity < 0 {
		f.Quantity = 0
	}
	return f
}
