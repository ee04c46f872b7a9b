package domain

import "fmt"

type PaymentStatusType string

const (
	PaymentStatusCaptured PaymentStatusType = "captured"
	PaymentStatusFailed   PaymentStatusType = "failed"
)

type OrderStatusType string

const (
	OrderStatusCompleted OrderStatusType = "completed"
)

// LedgerOutcome результат записи события оплаты в журнал платежей.
type LedgerOutcome string

const (
	LedgerOutcomeRecorded LedgerOutcome = "recorded"
	// LedgerOutcomeDuplicate платеж с таким идентификатором провайдера уже записан. Не ошибка.
	LedgerOutcomeDuplicate LedgerOutcome = "duplicate"
	// LedgerOutcomeCorrelationNotFound пара бизнес/продукт не назначена, запись пропущена.
	LedgerOutcomeCorrelationNotFound LedgerOutcome = "correlation_not_found"
	// LedgerOutcomeOrderMaterializationFailed платеж записан, но заказ создать не удалось.
	// Требует ручной сверки, автоматически не повторяется.
	LedgerOutcomeOrderMaterializationFailed LedgerOutcome = "order_materialization_failed"
	// LedgerOutcomeInvalidAmount сумма не положительная или не помещается в колонку суммы, запись пропущена.
	LedgerOutcomeInvalidAmount LedgerOutcome = "invalid_amount"
)

// PeriodType шаг группировки выручки во времени.
type PeriodType string

const (
	PeriodDaily   PeriodType = "daily"
	PeriodWeekly  PeriodType = "weekly"
	PeriodMonthly PeriodType = "monthly"
)

// ParsePeriod возвращает PeriodDaily для пустой строки и ErrInvalidPeriod для неизвестного значения.
func ParsePeriod(s string) (PeriodType, error) {
	switch PeriodType(s) {
	case "":
		return PeriodDaily, nil
	case PeriodDaily, PeriodWeekly, PeriodMonthly:
		return PeriodType(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidPeriod, s)
	}
}
