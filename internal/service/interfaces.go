package service

import (
	"context"
	"time"

	"github.com/fsdevblog/qrpay/internal/domain"
	"github.com/fsdevblog/qrpay/internal/repository/repoargs"
	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

type PaymentRepository interface {
	InsertIfAbsent(ctx context.Context, payment repoargs.PaymentCreate) (*domain.Payment, error)
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Payment, error)
	PendingMaterializations(
		ctx context.Context,
		createdBefore time.Time,
		limit uint,
	) ([]domain.PendingMaterialization, error)
	CountPendingMaterializations(ctx context.Context, createdBefore time.Time) (int, error)
}

type OrderRepository interface {
	CreateOrder(ctx context.Context, order repoargs.OrderCreate) (*domain.Order, error)
	CreateOrderItem(ctx context.Context, item repoargs.OrderItemCreate) (*domain.OrderItem, error)
	FindByPaymentID(ctx context.Context, paymentID uuid.UUID) (*domain.Order, error)
}

type CatalogRepository interface {
	FindBusinessProduct(ctx context.Context, businessID, productID uuid.UUID) (*domain.BusinessProduct, error)
	FindProduct(ctx context.Context, id uuid.UUID) (*domain.Product, error)
	OwnerStats(ctx context.Context, ownerID uuid.UUID) (*repoargs.OwnerCatalogStats, error)
}

type AnalyticsRepository interface {
	LedgerSnapshot(ctx context.Context, filter domain.AnalyticsFilter) ([]domain.LedgerEntry, error)
}
