package repoargs

import (
	"github.com/fsdevblog/qrpay/internal/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type OrderCreate struct {
	BusinessID uuid.UUID
	PaymentID  uuid.UUID
	Status     domain.OrderStatusType
}

type OrderItemCreate struct {
	OrderID     uuid.UUID
	ProductID   uuid.UUID
	PriceAtTime decimal.Decimal
	Quantity    int32
}
