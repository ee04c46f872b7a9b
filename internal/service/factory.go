package service

import (
	"fmt"
	"time"

	"github.com/fsdevblog/qrpay/pkg/uow"
)

type AppServices struct {
	LedgerService    *LedgerService
	AnalyticsService *AnalyticsService
	IntentService    *IntentService
}

type FactoryArgs struct {
	StorageTimeout time.Duration
	Merchant       MerchantSettings
}

func Factory(unitOfWork uow.UOW, args FactoryArgs) (*AppServices, error) {
	ledgerService, ledgerServiceErr := NewLedgerService(unitOfWork, args.StorageTimeout)
	if ledgerServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", ledgerServiceErr.Error())
	}

	intentService, intentServiceErr := NewIntentService(unitOfWork, args.Merchant)
	if intentServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", intentServiceErr.Error())
	}

	return &AppServices{
		LedgerService:    ledgerService,
		AnalyticsService: NewAnalyticsService(unitOfWork),
		IntentService:    intentService,
	}, nil
}
