package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/fsdevblog/qrpay/internal/domain"
	"github.com/gin-gonic/gin"
)

type IntentHandler struct {
	svs IntentServicer
}

func NewIntentHandler(svs IntentServicer) *IntentHandler {
	return &IntentHandler{
		svs: svs,
	}
}

// Show GET RouteGroup + PaymentIntentRoute. Возвращает UPI ссылку для QR кода оплаты продукта бизнесом.
func (h *IntentHandler) Show(c *gin.Context) {
	businessID, ok := uuidParam(c, "business_id")
	if !ok {
		return
	}
	productID, ok := uuidParam(c, "product_id")
	if !ok {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	intent, err := h.svs.PaymentIntent(reqCtx, businessID, productID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			_ = c.AbortWithError(http.StatusNotFound, err).SetType(gin.ErrorTypePrivate)
		case errors.Is(err, domain.ErrMerchantNotConfigured):
			_ = c.AbortWithError(http.StatusServiceUnavailable, err).SetType(gin.ErrorTypePublic)
		default:
			_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		}
		return
	}

	c.JSON(http.StatusOK, PaymentIntentResponse{
		UPIURL:          intent.UPIURL,
		Amount:          intent.Amount.InexactFloat64(),
		Currency:        intent.Currency,
		TransactionNote: intent.TransactionNote,
	})
}
