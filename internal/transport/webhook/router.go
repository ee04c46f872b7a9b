// Package webhook принимает события оплаты от провайдера: проверяет подпись, разбирает событие и передает
// платеж в журнал.
package webhook

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fsdevblog/qrpay/internal/domain"
	"github.com/fsdevblog/qrpay/internal/service"
	"github.com/fsdevblog/qrpay/internal/service/correlation"
	"github.com/fsdevblog/qrpay/internal/service/signature"
	"github.com/sirupsen/logrus"
)

// Outcome итог обработки события, о котором провайдеру отвечают 200.
type Outcome string

const (
	OutcomeIgnored      Outcome = "ignored"
	OutcomeDecodeFailed Outcome = "decode_failed"
)

// IngestResult результат обработки аутентифицированного и разобранного события.
type IngestResult struct {
	Kind              EventKind
	ProviderPaymentID string
	Outcome           Outcome
	// Err причина для OutcomeDecodeFailed, invalid_amount и order_materialization_failed.
	Err error
}

type Router struct {
	ledger  LedgerServicer
	metrics MetricsRecorder
	secret  string
	l       *logrus.Entry
}

func NewRouter(ledger LedgerServicer, secret string, metrics MetricsRecorder, l *logrus.Logger) *Router {
	return &Router{
		ledger:  ledger,
		metrics: metrics,
		secret:  secret,
		l: l.WithFields(logrus.Fields{
			"component": "webhook",
			"module":    "router",
		}),
	}
}

// Handle обрабатывает тело вебхука rawBody с подписью signatureHeader.
//
// Порядок проверок строгий:
//  1. Пустая подпись - ErrMissingSignature.
//  2. Подпись не совпала - ErrInvalidSignature. Тело до проверки подписи не разбирается.
//  3. Тело не разбирается как событие - ErrMalformedEvent.
//  4. payment.captured / payment.failed: примечание декодируется и платеж пишется в журнал.
//     Ошибка декодирования - OutcomeDecodeFailed, без записи.
//  5. Остальные события - OutcomeIgnored.
//
// Дубликаты, не найденные назначения и сбой создания заказа возвращаются в IngestResult без ошибки.
// Ошибкой, кроме перечисленных, может быть только domain.ErrStorageUnavailable.
func (r *Router) Handle(ctx context.Context, rawBody []byte, signatureHeader string) (*IngestResult, error) {
	if strings.TrimSpace(signatureHeader) == "" {
		r.l.Warn("webhook without signature")
		return nil, ErrMissingSignature
	}
	if !signature.Verify(rawBody, signatureHeader, r.secret) {
		r.l.Warn("webhook signature mismatch")
		return nil, ErrInvalidSignature
	}

	var event envelope
	if err := json.Unmarshal(rawBody, &event); err != nil {
		r.l.WithError(err).Error("malformed webhook body")
		return nil, fmt.Errorf("%w: %s", ErrMalformedEvent, err.Error())
	}

	kind := ParseEventKind(event.Event)
	var result *IngestResult
	switch kind {
	case EventPaymentCaptured, EventPaymentFailed:
		entity := event.Payload.Payment.Entity
		if entity.ID == "" {
			r.l.WithField("event", event.Event).Error("payment event without payment id")
			return nil, fmt.Errorf("%w: payment id is empty", ErrMalformedEvent)
		}

		var err error
		if result, err = r.routePayment(ctx, kind, entity); err != nil {
			r.l.WithError(err).WithFields(logrus.Fields{
				"event":     kind.String(),
				"paymentID": entity.ID,
			}).Error("recording payment")
			return nil, err
		}
	case EventUnknown:
		result = &IngestResult{Kind: kind, Outcome: OutcomeIgnored}
	default:
		result = &IngestResult{Kind: kind, Outcome: OutcomeIgnored}
	}

	r.report(event.Event, result)
	return result, nil
}

func (r *Router) routePayment(ctx context.Context, kind EventKind, entity paymentEntity) (*IngestResult, error) {
	productID, businessID, decodeErr := correlation.Decode(entity.transactionNote())
	if decodeErr != nil {
		return &IngestResult{
			Kind:              kind,
			ProviderPaymentID: entity.ID,
			Outcome:           OutcomeDecodeFailed,
			Err:               decodeErr,
		}, nil
	}

	args := service.RecordPaymentArgs{
		ProviderPaymentID:   entity.ID,
		ProductID:           productID,
		BusinessID:          businessID,
		AmountMinor:         entity.Amount,
		Currency:            entity.Currency,
		UPITransactionID:    entity.AcquirerData.UPITransactionID,
		ProviderReferenceID: entity.AcquirerData.RRN,
	}

	var ledgerResult *domain.LedgerResult
	var err error
	if kind == EventPaymentCaptured {
		ledgerResult, err = r.ledger.RecordCaptured(ctx, args)
	} else {
		ledgerResult, err = r.ledger.RecordFailed(ctx, args)
	}
	if err != nil {
		return nil, fmt.Errorf("routing %s event for payment `%s`: %w", kind, entity.ID, err)
	}

	return &IngestResult{
		Kind:              kind,
		ProviderPaymentID: entity.ID,
		Outcome:           Outcome(ledgerResult.Outcome),
		Err:               ledgerResult.Err,
	}, nil
}

// report логирует итог и увеличивает счетчик событий.
func (r *Router) report(event string, result *IngestResult) {
	r.metrics.WebhookEvent(result.Kind.String(), string(result.Outcome))

	l := r.l.WithFields(logrus.Fields{
		"event":     event,
		"paymentID": result.ProviderPaymentID,
		"outcome":   result.Outcome,
	})
	if result.Err != nil {
		l = l.WithError(result.Err)
	}

	switch result.Outcome {
	case Outcome(domain.LedgerOutcomeOrderMaterializationFailed):
		l.Error("payment recorded without order, needs reconciliation")
	case Outcome(domain.LedgerOutcomeCorrelationNotFound), Outcome(domain.LedgerOutcomeInvalidAmount),
		OutcomeDecodeFailed:
		l.Warn("payment event skipped")
	case OutcomeIgnored:
		l.Debug("event ignored")
	default:
		l.Info("payment event processed")
	}
}
