package categories

import (
	"net/http"

	"elsabor_server/lib"
	"elsabor_server/structs"

	"github.com/MonkyMars/gecho"
)

// DeleteCategory handles POST /api/categories/delete. Products referencing the
// deleted category are reassigned to the default category first.
func (crm *CategoryRoutesManager) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	body, err := lib.ExtractAndValidateBody[structs.DeleteCategoryRequest](r)
	if err != nil {
		crm.logger.Warn("Failed to extract request body", gecho.Field("error", err))
		gecho.BadRequest(w, gecho.WithMessage("Please check the request and try again"), gecho.Send())
		return
	}

	if body.CategoryID == "" {
		gecho.BadRequest(w, gecho.WithMessage("categoryId is required"), gecho.Send())
		return
	}

	if err := crm.categoryService.DeleteCategory(r.Context(), body.CategoryID); err != nil {
		crm.logger.Error("Failed to delete category", gecho.Field("error", err), gecho.Field("category_id", body.CategoryID))
		gecho.InternalServerError(w,
			gecho.WithMessage("Failed to delete category: "+err.Error()),
			gecho.Send(),
		)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Category deleted successfully"),
		gecho.Send(),
	)
}
