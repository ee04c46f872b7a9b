package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/fsdevblog/qrpay/internal/domain"
	"github.com/gin-gonic/gin"
)

type ReconcileHandler struct {
	svs ReconcileServicer
}

func NewReconcileHandler(svs ReconcileServicer) *ReconcileHandler {
	return &ReconcileHandler{
		svs: svs,
	}
}

// MaterializeOrder POST RouteGroup + MaterializeOrderRoute. Создает заказ для захваченного платежа,
// записанного без заказа. Повторный вызов отдает уже созданный заказ со статусом 200.
func (h *ReconcileHandler) MaterializeOrder(c *gin.Context) {
	paymentID, ok := uuidParam(c, "payment_id")
	if !ok {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	order, created, err := h.svs.MaterializeOrder(reqCtx, paymentID)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) || errors.Is(err, domain.ErrPaymentNotCaptured) {
			_ = c.AbortWithError(http.StatusNotFound, err).SetType(gin.ErrorTypePrivate)
			return
		}
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	c.JSON(status, newOrderResponse(order))
}
