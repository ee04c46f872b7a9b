package webhook

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"github.com/fsdevblog/qrpay/internal/domain"
	"github.com/fsdevblog/qrpay/internal/service"
)

type LedgerServicer interface {
	RecordCaptured(ctx context.Context, args service.RecordPaymentArgs) (*domain.LedgerResult, error)
	RecordFailed(ctx context.Context, args service.RecordPaymentArgs) (*domain.LedgerResult, error)
}

type MetricsRecorder interface {
	WebhookEvent(event, outcome string)
}
