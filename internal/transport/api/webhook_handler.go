package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/fsdevblog/qrpay/internal/transport/webhook"
	"github.com/gin-gonic/gin"
)

const (
	SignatureHeader = "X-Provider-Signature"
	// maxWebhookBodyBytes события провайдера занимают единицы килобайт.
	maxWebhookBodyBytes = 1 << 20
)

type WebhookHandler struct {
	ingester WebhookIngester
}

func NewWebhookHandler(ingester WebhookIngester) *WebhookHandler {
	return &WebhookHandler{
		ingester: ingester,
	}
}

type WebhookResponse struct {
	Status  string `json:"status"`
	Outcome string `json:"outcome"`
}

// Ingest POST RouteGroup + WebhookRoute. Подпись проверяется по сырому телу запроса, поэтому тело
// читается целиком до разбора.
func (h *WebhookHandler) Ingest(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxWebhookBodyBytes)
	body, err := c.GetRawData()
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			_ = c.AbortWithError(http.StatusRequestEntityTooLarge, err).SetType(gin.ErrorTypePrivate)
			return
		}
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	result, err := h.ingester.Handle(reqCtx, body, c.GetHeader(SignatureHeader))
	if err != nil {
		switch {
		case errors.Is(err, webhook.ErrMissingSignature):
			_ = c.AbortWithError(http.StatusBadRequest, err).SetType(gin.ErrorTypePublic)
		case errors.Is(err, webhook.ErrInvalidSignature):
			_ = c.AbortWithError(http.StatusUnauthorized, err).SetType(gin.ErrorTypePublic)
		default:
			// провайдер повторит доставку, запись идемпотентна.
			_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		}
		return
	}

	c.JSON(http.StatusOK, WebhookResponse{
		Status:  "success",
		Outcome: string(result.Outcome),
	})
}
