package repoargs

import (
	"github.com/fsdevblog/qrpay/internal/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PaymentCreate struct {
	ProviderPaymentID   string
	BusinessID          uuid.UUID
	ProductID           uuid.UUID
	Amount              decimal.Decimal
	Currency            string
	Status              domain.PaymentStatusType
	UPITransactionID    *string
	ProviderReferenceID *string
}
