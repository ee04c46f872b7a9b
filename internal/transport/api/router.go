package api

import (
	"fmt"
	"time"

	"github.com/fsdevblog/qrpay/internal/metrics"
	"github.com/fsdevblog/qrpay/internal/transport/api/middlewares"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const (
	DefaultServiceTimeout = 10 * time.Second
)

const (
	RouteGroup               = "/api"
	WebhookRoute             = "/webhooks/payments"
	AnalyticsOverviewRoute   = "/analytics/overview"
	AnalyticsRevenueRoute    = "/analytics/revenue"
	AnalyticsBusinessesRoute = "/analytics/businesses"
	AnalyticsProductsRoute   = "/analytics/products"
	ProfileAnalyticsRoute    = "/profiles/:id/analytics"
	PaymentIntentRoute       = "/business-products/:business_id/:product_id/intent"
	MaterializeOrderRoute    = "/reconciliation/payments/:payment_id/order"
	MetricsRoute             = "/metrics"
)

type RouterArgs struct {
	Logger           *logrus.Logger
	Metrics          *metrics.Metrics
	Webhook          WebhookIngester
	AnalyticsService AnalyticsServicer
	IntentService    IntentServicer
	ReconcileService ReconcileServicer
	JWTSecretKey     []byte
}

func New(args RouterArgs) (*gin.Engine, error) {
	if err := registerValidators(); err != nil {
		return nil, fmt.Errorf("new router: %w", err)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	if args.Logger != nil {
		r.Use(middlewares.Logger(args.Logger))
	}
	if args.Metrics != nil {
		r.Use(middlewares.Metrics(args.Metrics))
		r.GET(MetricsRoute, gin.WrapH(args.Metrics.Handler()))
	}
	r.Use(middlewares.Errors())

	webhookHandler := NewWebhookHandler(args.Webhook)
	analyticsHandler := NewAnalyticsHandler(args.AnalyticsService)
	intentHandler := NewIntentHandler(args.IntentService)
	reconcileHandler := NewReconcileHandler(args.ReconcileService)

	api := r.Group(RouteGroup)

	// вебхук аутентифицируется подписью тела, а не токеном.
	api.POST(WebhookRoute, webhookHandler.Ingest)

	api.Use(middlewares.AuthRequired(args.JWTSecretKey))
	// ниже все роуты группы требуют авторизованного профиля.
	api.GET(AnalyticsOverviewRoute, analyticsHandler.Overview)
	api.GET(AnalyticsRevenueRoute, analyticsHandler.Revenue)
	api.GET(AnalyticsBusinessesRoute, analyticsHandler.Businesses)
	api.GET(AnalyticsProductsRoute, analyticsHandler.Products)
	api.GET(ProfileAnalyticsRoute, analyticsHandler.Profile)

	api.GET(PaymentIntentRoute, intentHandler.Show)
	api.POST(MaterializeOrderRoute, reconcileHandler.MaterializeOrder)
	return r, nil
}
