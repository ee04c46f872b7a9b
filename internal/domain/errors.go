package domain

import (
	"errors"
	"fmt"
)

var (
	ErrRecordNotFound = errors.New("record not found")
	ErrDuplicateKey   = errors.New("duplicate key")
	ErrUnknown        = errors.New("unknown error")

	// ErrStorageUnavailable временная ошибка хранилища. Провайдер повторит доставку вебхука,
	// что безопасно благодаря идемпотентной записи.
	ErrStorageUnavailable = errors.New("storage unavailable")
	ErrOwnerConflict      = errors.New("owner conflict")
	ErrInvalidPeriod      = errors.New("invalid period")
	ErrPaymentNotCaptured = errors.New("payment is not captured")
	// ErrMerchantNotConfigured не заданы UPI реквизиты получателя платежа.
	ErrMerchantNotConfigured = errors.New("merchant upi settings are not configured")
)

// OrderMaterializationError платеж записан, но создание заказа и позиции заказа откатилось.
type OrderMaterializationError struct {
	ProviderPaymentID string
	Err               error
}

func NewOrderMaterializationError(providerPaymentID string, err error) error {
	return &OrderMaterializationError{ProviderPaymentID: providerPaymentID, Err: err}
}

func (e *OrderMaterializationError) Error() string {
	return fmt.Sprintf("order materialization for payment %s: %s", e.ProviderPaymentID, e.Err.Error())
}

func (e *OrderMaterializationError) Unwrap() error {
	return e.Err
}
