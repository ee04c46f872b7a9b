package api

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"github.com/google/uuid"

	"github.com/fsdevblog/qrpay/internal/domain"
	"github.com/fsdevblog/qrpay/internal/transport/webhook"
)

type WebhookIngester interface {
	Handle(ctx context.Context, rawBody []byte, signatureHeader string) (*webhook.IngestResult, error)
}

type AnalyticsServicer interface {
	Overview(
		ctx context.Context,
		filter domain.AnalyticsFilter,
		period domain.PeriodType,
		limit int,
	) (*domain.Overview, error)
	Revenue(ctx context.Context, filter domain.AnalyticsFilter, period domain.PeriodType) (*domain.RevenueReport, error)
	Businesses(ctx context.Context, filter domain.AnalyticsFilter, limit int) (*domain.BusinessesReport, error)
	Products(ctx context.Context, filter domain.AnalyticsFilter, limit int) (*domain.ProductsReport, error)
	ProfileOverview(
		ctx context.Context,
		ownerID uuid.UUID,
		filter domain.AnalyticsFilter,
		period domain.PeriodType,
		limit int,
	) (*domain.ProfileOverview, error)
}

type IntentServicer interface {
	PaymentIntent(ctx context.Context, businessID, productID uuid.UUID) (*domain.PaymentIntent, error)
}

type ReconcileServicer interface {
	MaterializeOrder(ctx context.Context, paymentID uuid.UUID) (*domain.Order, bool, error)
}
