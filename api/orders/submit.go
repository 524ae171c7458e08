package orders

import (
	"net/http"

	"elsabor_server/handling"
	"elsabor_server/lib"
	"elsabor_server/structs"

	"github.com/MonkyMars/gecho"
)

// SubmitOrder handles POST /api/orders. The payload nests the order under
// "orderData"; the customer name is required before anything is persisted.
func (orm *OrderRoutesManager) SubmitOrder(w http.ResponseWriter, r *http.Request) {
	body, err := lib.ExtractAndValidateBody[structs.SubmitOrderRequest](r)
	if err != nil {
		gecho.BadRequest(w,
			gecho.WithMessage("Invalid request body"),
			gecho.Send(),
		)
		return
	}

	if normalized := handling.NormalizeOrder(body.OrderData); normalized.CustomerName == "" {
		gecho.BadRequest(w,
			gecho.WithMessage("customerName is required"),
			gecho.Send(),
		)
		return
	}

	order, err := orm.orderService.SubmitOrder(r.Context(), body.OrderData)
	if err != nil {
		orm.logger.Error("Failed to submit order", gecho.Field("error", err))
		gecho.InternalServerError(w,
			gecho.WithMessage("Failed to submit order: "+err.Error()),
			gecho.Send(),
		)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Order submitted successfully"),
		gecho.WithData(map[string]any{
			"orderId": order.ID,
		}),
		gecho.Send(),
	)
}
