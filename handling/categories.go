package handling

import (
	"encoding/json"

	"elsabor_server/lib"
	"elsabor_server/structs/tables"
)

// NormalizeCategories maps the loose wire payload to category rows. Non-array
// input yields an empty set. A bare string is promoted to a full record; an
// object with a non-empty id gets missing fields defaulted from the id; every
// other element (null, object without id) is dropped. Idempotent.
func NormalizeCategories(raw json.RawMessage) []tables.Category {
	var elements []json.RawMessage
	if len(raw) == 0 || json.Unmarshal(raw, &elements) != nil {
		return []tables.Category{}
	}

	categories := make([]tables.Category, 0, len(elements))
	for _, el := range elements {
		if cat, ok := NormalizeCategory(el); ok {
			categories = append(categories, cat)
		}
	}
	return categories
}

// NormalizeCategory normalizes a single element, reporting whether it
// produced a usable record.
func NormalizeCategory(el json.RawMessage) (tables.Category, bool) {
	var id string
	if err := json.Unmarshal(el, &id); err == nil {
		if id == "" {
			return tables.Category{}, false
		}
		return synthesizeCategory(id), true
	}

	var cat tables.Category
	if err := json.Unmarshal(el, &cat); err != nil || cat.ID == "" {
		return tables.Category{}, false
	}
	if cat.Name == "" {
		cat.Name = lib.Capitalize(cat.ID)
	}
	if cat.Description == "" {
		cat.Description = "Category of " + cat.ID
	}
	return cat, true
}

func synthesizeCategory(id string) tables.Category {
	return tables.Category{
		ID:          id,
		Name:        lib.Capitalize(id),
		Description: "Category of " + id,
	}
}
