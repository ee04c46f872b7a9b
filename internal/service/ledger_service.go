package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fsdevblog/qrpay/internal/domain"
	"github.com/fsdevblog/qrpay/internal/repository/repoargs"
	"github.com/fsdevblog/qrpay/pkg/uow"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DefaultStorageTimeout ограничение на одну запись события в журнал.
const DefaultStorageTimeout = 5 * time.Second

// minorUnitsExp показатель степени для перевода суммы из минимальных единиц (пайсы) в рубли/рупии.
const minorUnitsExp = -2

// MaxAmountMinor наибольшая сумма в минимальных единицах, которую вмещает NUMERIC(12, 2).
const MaxAmountMinor int64 = 999_999_999_999

// RecordPaymentArgs данные события оплаты. Идентификаторы бизнеса и продукта приходят строками из примечания
// к платежу и проверяются при записи.
type RecordPaymentArgs struct {
	ProviderPaymentID   string
	ProductID           string
	BusinessID          string
	AmountMinor         int64
	Currency            string
	UPITransactionID    string
	ProviderReferenceID string
}

type LedgerService struct {
	uow            uow.UOW
	paymentRepo    PaymentRepository
	orderRepo      OrderRepository
	storageTimeout time.Duration
}

func NewLedgerService(u uow.UOW, storageTimeout time.Duration) (*LedgerService, error) {
	paymentRepo, err := uow.GetRepositoryAs[PaymentRepository](u, uow.RepositoryName(repoargs.PaymentRepoName))
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	orderRepo, err := uow.GetRepositoryAs[OrderRepository](u, uow.RepositoryName(repoargs.OrderRepoName))
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	if storageTimeout <= 0 {
		storageTimeout = DefaultStorageTimeout
	}
	return &LedgerService{
		uow:            u,
		paymentRepo:    paymentRepo,
		orderRepo:      orderRepo,
		storageTimeout: storageTimeout,
	}, nil
}

// RecordCaptured записывает успешный платеж и создает для него заказ с одной позицией.
func (l *LedgerService) RecordCaptured(ctx context.Context, args RecordPaymentArgs) (*domain.LedgerResult, error) {
	return l.record(ctx, args, domain.PaymentStatusCaptured)
}

// RecordFailed записывает неуспешный платеж. Заказ не создается.
func (l *LedgerService) RecordFailed(ctx context.Context, args RecordPaymentArgs) (*domain.LedgerResult, error) {
	return l.record(ctx, args, domain.PaymentStatusFailed)
}

// record записывает платеж в одной транзакции.
//
// Алгоритм работы:
//  0. Сумма вне (0, MaxAmountMinor] дает LedgerOutcomeInvalidAmount, без записи.
//  1. Проверяет, что бизнесу назначен продукт. Если нет - LedgerOutcomeCorrelationNotFound, без записи.
//  2. Вставляет платеж с ON CONFLICT DO NOTHING. Повторная доставка дает LedgerOutcomeDuplicate.
//  3. Для захваченного платежа создает заказ и позицию заказа в savepoint. Ошибка откатывает только savepoint,
//     платеж сохраняется, результат - LedgerOutcomeOrderMaterializationFailed.
//
// Ошибка возвращается только для недоступного хранилища и оборачивает domain.ErrStorageUnavailable.
func (l *LedgerService) record(
	ctx context.Context,
	args RecordPaymentArgs,
	status domain.PaymentStatusType,
) (*domain.LedgerResult, error) {
	if args.AmountMinor <= 0 || args.AmountMinor > MaxAmountMinor {
		return &domain.LedgerResult{
			Outcome: domain.LedgerOutcomeInvalidAmount,
			Err:     fmt.Errorf("amount %d out of range (0, %d]", args.AmountMinor, MaxAmountMinor),
		}, nil
	}

	businessID, businessErr := uuid.Parse(args.BusinessID)
	productID, productErr := uuid.Parse(args.ProductID)
	if businessErr != nil || productErr != nil {
		return &domain.LedgerResult{Outcome: domain.LedgerOutcomeCorrelationNotFound}, nil
	}

	ctx, cancel := context.WithTimeout(ctx, l.storageTimeout)
	defer cancel()

	var result *domain.LedgerResult
	txErr := l.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		catalogRepo, repoErr := uow.GetAs[CatalogRepository](tx, uow.RepositoryName(repoargs.CatalogRepoName))
		if repoErr != nil {
			return repoErr //nolint:wrapcheck
		}
		if _, err := catalogRepo.FindBusinessProduct(c, businessID, productID); err != nil {
			return err //nolint:wrapcheck
		}

		paymentRepo, repoErr := uow.GetAs[PaymentRepository](tx, uow.RepositoryName(repoargs.PaymentRepoName))
		if repoErr != nil {
			return repoErr //nolint:wrapcheck
		}
		payment, insertErr := paymentRepo.InsertIfAbsent(c, repoargs.PaymentCreate{
			ProviderPaymentID:   args.ProviderPaymentID,
			BusinessID:          businessID,
			ProductID:           productID,
			Amount:              decimal.New(args.AmountMinor, minorUnitsExp),
			Currency:            args.Currency,
			Status:              status,
			UPITransactionID:    optional(args.UPITransactionID),
			ProviderReferenceID: optional(args.ProviderReferenceID),
		})
		if insertErr != nil {
			return insertErr //nolint:wrapcheck
		}

		result = &domain.LedgerResult{Outcome: domain.LedgerOutcomeRecorded, Payment: payment}
		if status != domain.PaymentStatusCaptured {
			return nil
		}

		var order *domain.Order
		spErr := tx.Savepoint(c, func(spCtx context.Context, spTx uow.TX) error {
			var err error
			order, err = materializeOrder(spCtx, spTx, payment)
			return err
		})
		if spErr != nil {
			result.Outcome = domain.LedgerOutcomeOrderMaterializationFailed
			result.Err = domain.NewOrderMaterializationError(payment.ProviderPaymentID, spErr)
			return nil
		}
		result.Order = order
		return nil
	})

	if txErr != nil {
		switch {
		case errors.Is(txErr, domain.ErrDuplicateKey):
			return &domain.LedgerResult{Outcome: domain.LedgerOutcomeDuplicate}, nil
		case errors.Is(txErr, domain.ErrRecordNotFound):
			// пары бизнес/продукт нет, либо бизнес или продукт удалены до вставки платежа.
			return &domain.LedgerResult{Outcome: domain.LedgerOutcomeCorrelationNotFound}, nil
		default:
			return nil, storageErr(txErr, "recording payment `%s`", args.ProviderPaymentID)
		}
	}
	return result, nil
}

// MaterializeOrder создает заказ для захваченного платежа, у которого его нет. Если заказ уже есть,
// возвращает его и false.
// Ошибки: domain.ErrRecordNotFound для неизвестного платежа, domain.ErrPaymentNotCaptured для неуспешного,
// domain.ErrStorageUnavailable для остального.
func (l *LedgerService) MaterializeOrder(ctx context.Context, paymentID uuid.UUID) (*domain.Order, bool, error) {
	ctx, cancel := context.WithTimeout(ctx, l.storageTimeout)
	defer cancel()

	var order *domain.Order
	var created bool
	txErr := l.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		paymentRepo, repoErr := uow.GetAs[PaymentRepository](tx, uow.RepositoryName(repoargs.PaymentRepoName))
		if repoErr != nil {
			return repoErr //nolint:wrapcheck
		}
		payment, findErr := paymentRepo.FindByID(c, paymentID)
		if findErr != nil {
			return findErr //nolint:wrapcheck
		}
		if payment.Status != domain.PaymentStatusCaptured {
			return fmt.Errorf("materializing order for payment `%s`: %w", paymentID, domain.ErrPaymentNotCaptured)
		}

		orderRepo, repoErr := uow.GetAs[OrderRepository](tx, uow.RepositoryName(repoargs.OrderRepoName))
		if repoErr != nil {
			return repoErr //nolint:wrapcheck
		}
		existing, existingErr := orderRepo.FindByPaymentID(c, paymentID)
		if existingErr == nil {
			order = existing
			return nil
		}
		if !errors.Is(existingErr, domain.ErrRecordNotFound) {
			return existingErr //nolint:wrapcheck
		}

		var err error
		order, err = materializeOrder(c, tx, payment)
		created = err == nil
		return err
	})

	if txErr == nil {
		return order, created, nil
	}

	switch {
	case errors.Is(txErr, domain.ErrDuplicateKey):
		// заказ создан параллельным запросом.
		existing, err := l.orderRepo.FindByPaymentID(ctx, paymentID)
		if err != nil {
			return nil, false, storageErr(err, "finding order of payment `%s`", paymentID)
		}
		return existing, false, nil
	case errors.Is(txErr, domain.ErrRecordNotFound), errors.Is(txErr, domain.ErrPaymentNotCaptured):
		return nil, false, txErr
	default:
		return nil, false, storageErr(txErr, "materializing order for payment `%s`", paymentID)
	}
}

// PendingMaterializations захваченные платежи старше grace без заказа.
func (l *LedgerService) PendingMaterializations(
	ctx context.Context,
	grace time.Duration,
	limit uint,
) ([]domain.PendingMaterialization, error) {
	ctx, cancel := context.WithTimeout(ctx, l.storageTimeout)
	defer cancel()

	pending, err := l.paymentRepo.PendingMaterializations(ctx, time.Now().Add(-grace), limit)
	if err != nil {
		return nil, storageErr(err, "listing pending materializations")
	}
	return pending, nil
}

// CountPendingMaterializations число захваченных платежей старше grace без заказа, без ограничения limit.
func (l *LedgerService) CountPendingMaterializations(ctx context.Context, grace time.Duration) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, l.storageTimeout)
	defer cancel()

	count, err := l.paymentRepo.CountPendingMaterializations(ctx, time.Now().Add(-grace))
	if err != nil {
		return 0, storageErr(err, "counting pending materializations")
	}
	return count, nil
}

// materializeOrder создает заказ со статусом completed и одну позицию с ценой, равной сумме платежа.
func materializeOrder(ctx context.Context, tx uow.TX, payment *domain.Payment) (*domain.Order, error) {
	orderRepo, repoErr := uow.GetAs[OrderRepository](tx, uow.RepositoryName(repoargs.OrderRepoName))
	if repoErr != nil {
		return nil, repoErr //nolint:wrapcheck
	}

	order, orderErr := orderRepo.CreateOrder(ctx, repoargs.OrderCreate{
		BusinessID: payment.BusinessID,
		PaymentID:  payment.ID,
		Status:     domain.OrderStatusCompleted,
	})
	if orderErr != nil {
		return nil, orderErr //nolint:wrapcheck
	}

	if _, itemErr := orderRepo.CreateOrderItem(ctx, repoargs.OrderItemCreate{
		OrderID:     order.ID,
		ProductID:   payment.ProductID,
		PriceAtTime: payment.Amount,
		Quantity:    1,
	}); itemErr != nil {
		return nil, itemErr //nolint:wrapcheck
	}
	return order, nil
}

func optional(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}
