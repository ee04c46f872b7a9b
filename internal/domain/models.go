package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Business struct {
	ID        uuid.UUID
	CreatedAt time.Time
	Name      string
	OwnerID   uuid.UUID
}

type Product struct {
	ID        uuid.UUID
	CreatedAt time.Time
	Name      string
	BasePrice decimal.Decimal
	Currency  string
}

type BusinessProduct struct {
	ID            uuid.UUID
	CreatedAt     time.Time
	BusinessID    uuid.UUID
	ProductID     uuid.UUID
	PriceOverride *decimal.Decimal
}

// EffectivePrice возвращает цену продукта для конкретного бизнеса: переопределенную, если она задана,
// иначе базовую цену каталога.
func (bp BusinessProduct) EffectivePrice(product Product) decimal.Decimal {
	if bp.PriceOverride != nil {
		return *bp.PriceOverride
	}
	return product.BasePrice
}

type Payment struct {
	ID                  uuid.UUID
	CreatedAt           time.Time
	ProviderPaymentID   string
	BusinessID          uuid.UUID
	ProductID           uuid.UUID
	Amount              decimal.Decimal
	Currency            string
	Status              PaymentStatusType
	UPITransactionID    *string
	ProviderReferenceID *string
}

type Order struct {
	ID         uuid.UUID
	CreatedAt  time.Time
	BusinessID uuid.UUID
	PaymentID  *uuid.UUID
	Status     OrderStatusType
}

type OrderItem struct {
	ID          uuid.UUID
	OrderID     uuid.UUID
	ProductID   uuid.UUID
	PriceAtTime decimal.Decimal
	Quantity    int32
}

// LedgerResult итог записи одного события оплаты. Бизнес-ошибки (дубликат, не найденная пара
// бизнес/продукт, сбой создания заказа) передаются через Outcome и не являются ошибками вызова.
type LedgerResult struct {
	Outcome LedgerOutcome
	Payment *Payment
	Order   *Order
	// Err заполняется для LedgerOutcomeOrderMaterializationFailed и LedgerOutcomeInvalidAmount.
	Err error
}
