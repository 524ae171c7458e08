package categories

import (
	"net/http"

	"elsabor_server/handling"
	"elsabor_server/lib"
	"elsabor_server/structs"

	"github.com/MonkyMars/gecho"
)

// AddCategory handles POST /api/categories/add: upserts a single category by
// id. The payload may be a bare string or a category object.
func (crm *CategoryRoutesManager) AddCategory(w http.ResponseWriter, r *http.Request) {
	body, err := lib.ExtractAndValidateBody[structs.AddCategoryRequest](r)
	if err != nil {
		crm.logger.Warn("Failed to extract request body", gecho.Field("error", err))
		gecho.BadRequest(w, gecho.WithMessage("Please check the category data and try again"), gecho.Send())
		return
	}

	category, ok := handling.NormalizeCategory(body.Category)
	if !ok {
		gecho.BadRequest(w, gecho.WithMessage("Category id and name are required"), gecho.Send())
		return
	}

	if err := crm.categoryService.AddCategory(r.Context(), category); err != nil {
		crm.logger.Error("Failed to add category", gecho.Field("error", err), gecho.Field("category_id", category.ID))
		gecho.InternalServerError(w,
			gecho.WithMessage("Failed to add category: "+err.Error()),
			gecho.Send(),
		)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Category saved successfully"),
		gecho.WithData(map[string]any{
			"category": category,
		}),
		gecho.Send(),
	)
}
