package orders

import (
	"net/http"

	"github.com/MonkyMars/gecho"
)

// FetchOrders handles GET /api/orders, newest created first.
func (orm *OrderRoutesManager) FetchOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := orm.orderService.GetOrders(r.Context())
	if err != nil {
		orm.logger.Error("Failed to fetch orders", gecho.Field("error", err))
		gecho.InternalServerError(w,
			gecho.WithMessage("Failed to fetch orders: "+err.Error()),
			gecho.Send(),
		)
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{
			"orders": orders,
		}),
		gecho.Send(),
	)
}
