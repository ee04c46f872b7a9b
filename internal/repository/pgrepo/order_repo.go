package pgrepo

import (
	"context"

	"github.com/fsdevblog/qrpay/internal/domain"
	"github.com/fsdevblog/qrpay/internal/repository/repoargs"
	"github.com/fsdevblog/qrpay/pkg/uow"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const orderColumns = `id, created_at, business_id, payment_id, status`

type OrderRepository struct {
	conn uow.DBTX
}

func NewOrderRepository(conn uow.DBTX) *OrderRepository {
	return &OrderRepository{conn: conn}
}

// CreateOrder создает заказ для платежа. Второй заказ на тот же платеж вернет domain.ErrDuplicateKey.
func (o *OrderRepository) CreateOrder(ctx context.Context, order repoargs.OrderCreate) (*domain.Order, error) {
	row := o.conn.QueryRow(ctx, `
		INSERT INTO orders (business_id, payment_id, status)
		VALUES ($1, $2, $3)
		RETURNING `+orderColumns,
		order.BusinessID,
		order.PaymentID,
		string(order.Status),
	)
	dbOrder, err := scanOrder(row)
	if err != nil {
		return nil, convertErr(err, "creating order for payment `%s`", order.PaymentID)
	}
	return dbOrder, nil
}

func (o *OrderRepository) CreateOrderItem(ctx context.Context, item repoargs.OrderItemCreate) (*domain.OrderItem, error) {
	var dbItem domain.OrderItem
	err := o.conn.QueryRow(ctx, `
		INSERT INTO order_items (order_id, product_id, price_at_time, quantity)
		VALUES ($1, $2, $3, $4)
		RETURNING id, order_id, product_id, price_at_time, quantity`,
		item.OrderID,
		item.ProductID,
		item.PriceAtTime,
		item.Quantity,
	).Scan(&dbItem.ID, &dbItem.OrderID, &dbItem.ProductID, &dbItem.PriceAtTime, &dbItem.Quantity)
	if err != nil {
		return nil, convertErr(err, "creating item for order `%s`", item.OrderID)
	}
	return &dbItem, nil
}

func (o *OrderRepository) FindByPaymentID(ctx context.Context, paymentID uuid.UUID) (*domain.Order, error) {
	row := o.conn.QueryRow(ctx, `SELECT `+orderColumns+` FROM orders WHERE payment_id = $1`, paymentID)
	dbOrder, err := scanOrder(row)
	if err != nil {
		return nil, convertErr(err, "finding order by payment id `%s`", paymentID)
	}
	return dbOrder, nil
}

func scanOrder(row pgx.Row) (*domain.Order, error) {
	var order domain.Order
	var status string
	if err := row.Scan(&order.ID, &order.CreatedAt, &order.BusinessID, &order.PaymentID, &status); err != nil {
		return nil, err //nolint:wrapcheck
	}
	order.Status = domain.OrderStatusType(status)
	return &order, nil
}
