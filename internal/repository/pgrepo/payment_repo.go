package pgrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fsdevblog/qrpay/internal/domain"
	"github.com/fsdevblog/qrpay/internal/repository/repoargs"
	"github.com/fsdevblog/qrpay/pkg/uow"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const paymentColumns = `id, created_at, provider_payment_id, business_id, product_id, amount, currency,
	status::text, upi_transaction_id, provider_reference_id`

type PaymentRepository struct {
	conn uow.DBTX
}

func NewPaymentRepository(conn uow.DBTX) *PaymentRepository {
	return &PaymentRepository{conn: conn}
}

// InsertIfAbsent записывает платеж, если платежа с таким provider_payment_id еще нет. Для уже записанного
// платежа возвращает domain.ErrDuplicateKey, существующая строка не меняется.
func (p *PaymentRepository) InsertIfAbsent(
	ctx context.Context,
	payment repoargs.PaymentCreate,
) (*domain.Payment, error) {
	row := p.conn.QueryRow(ctx, `
		INSERT INTO payments (provider_payment_id, business_id, product_id, amount, currency, status,
		                      upi_transaction_id, provider_reference_id)
		VALUES ($1, $2, $3, $4, $5, $6::payment_status_type, $7, $8)
		ON CONFLICT (provider_payment_id) DO NOTHING
		RETURNING `+paymentColumns,
		payment.ProviderPaymentID,
		payment.BusinessID,
		payment.ProductID,
		payment.Amount,
		payment.Currency,
		string(payment.Status),
		payment.UPITransactionID,
		payment.ProviderReferenceID,
	)

	dbPayment, err := scanPayment(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf(
				"[repository/inserting payment `%s`] %w", payment.ProviderPaymentID, domain.ErrDuplicateKey,
			)
		}
		return nil, convertErr(err, "inserting payment `%s`", payment.ProviderPaymentID)
	}
	return dbPayment, nil
}

func (p *PaymentRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Payment, error) {
	row := p.conn.QueryRow(ctx, `SELECT `+paymentColumns+` FROM payments WHERE id = $1`, id)
	payment, err := scanPayment(row)
	if err != nil {
		return nil, convertErr(err, "finding payment by id `%s`", id)
	}
	return payment, nil
}

// pendingMaterializationsFrom захваченные платежи без заказа, созданные раньше $1.
const pendingMaterializationsFrom = `
		FROM payments p
		LEFT JOIN orders o ON o.payment_id = p.id
		WHERE p.status = 'captured'
		  AND o.id IS NULL
		  AND p.created_at < $1`

// PendingMaterializations возвращает захваченные платежи, созданные раньше createdBefore, для которых нет
// заказа. Сортировка по дате создания по возрастанию.
func (p *PaymentRepository) PendingMaterializations(
	ctx context.Context,
	createdBefore time.Time,
	limit uint,
) ([]domain.PendingMaterialization, error) {
	rows, err := p.conn.Query(ctx, `
		SELECT p.id, p.provider_payment_id, p.business_id, p.amount, p.created_at`+
		pendingMaterializationsFrom+`
		ORDER BY p.created_at, p.id
		LIMIT $2`,
		createdBefore,
		int64(limit), //nolint:gosec
	)
	if err != nil {
		return nil, convertErr(err, "getting pending materializations")
	}

	pending, collectErr := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.PendingMaterialization, error) {
		var m domain.PendingMaterialization
		scanErr := row.Scan(&m.PaymentID, &m.ProviderPaymentID, &m.BusinessID, &m.Amount, &m.CreatedAt)
		return m, scanErr //nolint:wrapcheck
	})
	if collectErr != nil {
		return nil, convertErr(collectErr, "scanning pending materializations")
	}
	return pending, nil
}

// CountPendingMaterializations число захваченных платежей без заказа, созданных раньше createdBefore.
func (p *PaymentRepository) CountPendingMaterializations(ctx context.Context, createdBefore time.Time) (int, error) {
	var count int64
	row := p.conn.QueryRow(ctx, `SELECT count(*)`+pendingMaterializationsFrom, createdBefore)
	if err := row.Scan(&count); err != nil {
		return 0, convertErr(err, "counting pending materializations")
	}
	return int(count), nil
}

func scanPayment(row pgx.Row) (*domain.Payment, error) {
	var payment domain.Payment
	var status string
	if err := row.Scan(
		&payment.ID,
		&payment.CreatedAt,
		&payment.ProviderPaymentID,
		&payment.BusinessID,
		&payment.ProductID,
		&payment.Amount,
		&payment.Currency,
		&status,
		&payment.UPITransactionID,
		&payment.ProviderReferenceID,
	); err != nil {
		return nil, err //nolint:wrapcheck
	}
	payment.Status = domain.PaymentStatusType(status)
	return &payment, nil
}
