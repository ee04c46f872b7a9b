// Package reconcile периодически ищет захваченные платежи без заказа. Сам ничего не исправляет:
// пишет каждый такой платеж в лог и публикует их число в метрике, заказ создает оператор.
package reconcile

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/fsdevblog/qrpay/internal/domain"
	"github.com/sirupsen/logrus"
)

const (
	defaultServiceTimeout         = 5 * time.Second
	defaultInterval               = time.Minute
	defaultGrace                  = 5 * time.Minute
	defaultLimitPerIteration uint = 100
)

type Processor struct {
	svs               Servicer
	gauge             GaugeSetter
	l                 *logrus.Entry
	limitPerIteration uint
	interval          time.Duration
	grace             time.Duration
}

func New(svs Servicer, gauge GaugeSetter, l *logrus.Logger) *Processor {
	loggerEntry := l.WithFields(logrus.Fields{
		"component": "reconcile",
		"module":    "processor",
	})

	return &Processor{
		svs:               svs,
		gauge:             gauge,
		l:                 loggerEntry,
		limitPerIteration: defaultLimitPerIteration,
		interval:          defaultInterval,
		grace:             defaultGrace,
	}
}

// SetLimitPerIteration устанавливает максимум платежей, попадающих в один отчет.
func (p *Processor) SetLimitPerIteration(limit uint) *Processor {
	p.limitPerIteration = limit
	return p
}

// SetInterval устанавливает паузу между проверками.
func (p *Processor) SetInterval(interval time.Duration) *Processor {
	if interval > 0 {
		p.interval = interval
	}
	return p
}

// SetGrace устанавливает возраст платежа, после которого отсутствие заказа считается сбоем, а не
// незавершенной записью.
func (p *Processor) SetGrace(grace time.Duration) *Processor {
	if grace > 0 {
		p.grace = grace
	}
	return p
}

// Run выполняет проверки до отмены контекста. Пауза между проверками рассыпается на ±15%, чтобы несколько
// экземпляров не ходили в базу одновременно.
func (p *Processor) Run(ctx context.Context) {
	p.l.WithFields(logrus.Fields{
		"limitPerIteration": p.limitPerIteration,
		"interval":          p.interval,
		"grace":             p.grace,
	}).Info("Starting")

	for {
		if err := p.process(ctx); err != nil && !errors.Is(err, ErrNoPending) {
			p.l.WithError(err).Error("process error")
		}

		pause := time.Duration(jitter(float64(p.interval), 0.15, 0.15)) //nolint:mnd
		select {
		case <-ctx.Done():
			p.l.Info("Got stop signal, exiting...")
			return
		case <-time.After(pause):
		}
	}
}

// process выполняет одну проверку. Возвращает ErrNoPending, если все захваченные платежи имеют заказ.
func (p *Processor) process(ctx context.Context) error {
	pending, err := p.produce(ctx)
	if err != nil {
		if errors.Is(err, ErrNoPending) {
			p.gauge.SetPendingMaterializations(0)
		}
		return fmt.Errorf("process: %w", err)
	}

	p.setGauge(ctx, len(pending))
	for _, payment := range pending {
		p.l.WithFields(logrus.Fields{
			"paymentID":         payment.PaymentID,
			"providerPaymentID": payment.ProviderPaymentID,
			"businessID":        payment.BusinessID,
			"amount":            payment.Amount,
			"createdAt":         payment.CreatedAt,
		}).Warn("captured payment has no order")
	}
	return nil
}

// setGauge выставляет полный размер очереди. Список ограничен limitPerIteration, поэтому число берется
// отдельным запросом. listed - размер списка, нижняя граница на случай гонки между запросами.
func (p *Processor) setGauge(ctx context.Context, listed int) {
	countCtx, cancel := context.WithTimeout(ctx, defaultServiceTimeout)
	defer cancel()

	count, err := p.svs.CountPendingMaterializations(countCtx, p.grace)
	if err != nil {
		p.l.WithError(err).Warn("counting pending materializations")
		return
	}
	p.gauge.SetPendingMaterializations(max(count, listed))
}

// produce получает платежи без заказа. Возвращает ErrNoPending, если таких нет.
func (p *Processor) produce(ctx context.Context) ([]domain.PendingMaterialization, error) {
	produceCtx, cancel := context.WithTimeout(ctx, defaultServiceTimeout)
	defer cancel()

	pending, err := p.svs.PendingMaterializations(produceCtx, p.grace, p.limitPerIteration)
	if err != nil {
		return nil, fmt.Errorf("produce: %w", err)
	}
	if len(pending) == 0 {
		return nil, ErrNoPending
	}
	return pending, nil
}

// jitter возвращает число, рассыпавшееся относительно value на случайный процент в пределах
// [1-minPercent, 1+maxPercent].
// Например, если minPercent=0.15, maxPercent=0.15, получим диапазон [0.85*value, 1.15*value].
//
// minPercent и maxPercent должны быть >= 0 (0.1 = 10%). Если указано иное, значение выставится в 0.15.
func jitter(value, minPercent, maxPercent float64) float64 {
	if minPercent < 0 || maxPercent < 0 {
		minPercent = 0.15
		maxPercent = 0.15
	}
	factor := 1 - minPercent + rand.Float64()*(minPercent+maxPercent) // nolint:gosec
	return value * factor
}
