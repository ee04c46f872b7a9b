package reconcile

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"time"

	"github.com/fsdevblog/qrpay/internal/domain"
)

type Servicer interface {
	PendingMaterializations(
		ctx context.Context,
		grace time.Duration,
		limit uint,
	) ([]domain.PendingMaterialization, error)
	CountPendingMaterializations(ctx context.Context, grace time.Duration) (int, error)
}

type GaugeSetter interface {
	SetPendingMaterializations(count int)
}
