package orders

import (
	"net/http"

	"elsabor_server/lib"
	"elsabor_server/structs"

	"github.com/MonkyMars/gecho"
)

// UpdateOrderStatus handles POST /api/orders/update-status.
func (orm *OrderRoutesManager) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	body, err := lib.ExtractAndValidateBody[structs.UpdateOrderStatusRequest](r)
	if err != nil {
		gecho.BadRequest(w,
			gecho.WithMessage("Invalid request body"),
			gecho.Send(),
		)
		return
	}

	if body.OrderID == "" || body.Status == "" {
		gecho.BadRequest(w,
			gecho.WithMessage("orderId and status are required"),
			gecho.Send(),
		)
		return
	}

	if err := orm.orderService.UpdateOrderStatus(r.Context(), body.OrderID, body.Status); err != nil {
		orm.logger.Error("Failed to update order status",
			gecho.Field("orderId", body.OrderID),
			gecho.Field("error", err),
		)
		gecho.InternalServerError(w,
			gecho.WithMessage("Failed to update order status: "+err.Error()),
			gecho.Send(),
		)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Order status updated successfully"),
		gecho.Send(),
	)
}
