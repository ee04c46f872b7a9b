package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/fsdevblog/qrpay/internal/domain"
	"github.com/fsdevblog/qrpay/internal/repository/repoargs"
	"github.com/fsdevblog/qrpay/internal/service/correlation"
	"github.com/fsdevblog/qrpay/pkg/uow"
	"github.com/google/uuid"
)

// MerchantSettings UPI реквизиты получателя платежей.
type MerchantSettings struct {
	UPIID string
	Name  string
}

// IntentService формирует UPI ссылки на оплату продукта бизнеса. Ссылка кодируется в QR код, а примечание
// к платежу несет идентификаторы продукта и бизнеса, по которым вебхук найдет назначение.
type IntentService struct {
	catalogRepo CatalogRepository
	merchant    MerchantSettings
}

func NewIntentService(u uow.UOW, merchant MerchantSettings) (*IntentService, error) {
	catalogRepo, err := uow.GetRepositoryAs[CatalogRepository](u, uow.RepositoryName(repoargs.CatalogRepoName))
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &IntentService{catalogRepo: catalogRepo, merchant: merchant}, nil
}

// PaymentIntent возвращает данные для оплаты продукта productID бизнесом businessID по действующей цене.
// Ошибки: domain.ErrMerchantNotConfigured, domain.ErrRecordNotFound если продукт не назначен бизнесу,
// domain.ErrStorageUnavailable.
func (s *IntentService) PaymentIntent(
	ctx context.Context,
	businessID, productID uuid.UUID,
) (*domain.PaymentIntent, error) {
	if s.merchant.UPIID == "" || s.merchant.Name == "" {
		return nil, domain.ErrMerchantNotConfigured
	}

	assignment, err := s.catalogRepo.FindBusinessProduct(ctx, businessID, productID)
	if err != nil {
		return nil, intentErr(err, businessID, productID)
	}
	product, err := s.catalogRepo.FindProduct(ctx, productID)
	if err != nil {
		return nil, intentErr(err, businessID, productID)
	}

	amount := assignment.EffectivePrice(*product)
	note := correlation.Encode(productID.String(), businessID.String())

	return &domain.PaymentIntent{
		UPIURL:          upiURL(s.merchant, amount.StringFixed(2), product.Currency, note), //nolint:mnd
		Amount:          amount,
		Currency:        product.Currency,
		TransactionNote: note,
	}, nil
}

func intentErr(err error, businessID, productID uuid.UUID) error {
	if errors.Is(err, domain.ErrRecordNotFound) {
		return fmt.Errorf("payment intent for product `%s` of business `%s`: %w", productID, businessID, err)
	}
	return storageErr(err, "payment intent for product `%s` of business `%s`", productID, businessID)
}

// upiURL собирает ссылку upi://pay. Порядок параметров: pa, pn, am, cu, tn.
func upiURL(merchant MerchantSettings, amount, currency, note string) string {
	params := [][2]string{
		{"pa", merchant.UPIID},
		{"pn", merchant.Name},
		{"am", amount},
		{"cu", currency},
		{"tn", note},
	}

	var sb strings.Builder
	sb.WriteString("upi://pay?")
	for i, p := range params {
		if i > 0 {
			sb.WriteByte('&')
		}
		sb.WriteString(p[0])
		sb.WriteByte('=')
		sb.WriteString(url.QueryEscape(p[1]))
	}
	return sb.String()
}
