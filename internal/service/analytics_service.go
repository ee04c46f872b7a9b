package service

import (
	"context"
	"slices"

	"github.com/fsdevblog/qrpay/internal/domain"
	"github.com/fsdevblog/qrpay/internal/repository/repoargs"
	"github.com/fsdevblog/qrpay/internal/service/revenue"
	"github.com/fsdevblog/qrpay/pkg/uow"
	"github.com/google/uuid"
)

const (
	DefaultAnalyticsLimit = 50
	MaxAnalyticsLimit     = 100
)

// AnalyticsService считает срезы выручки. Каждый метод читает журнал платежей один раз, внутри
// одной read-only транзакции, и не возвращает частичных результатов.
type AnalyticsService struct {
	uow uow.UOW
}

func NewAnalyticsService(u uow.UOW) *AnalyticsService {
	return &AnalyticsService{uow: u}
}

// Overview итоги, выручка по бизнесам, продуктам, во времени и топ продуктов. Списки бизнесов и продуктов
// отсортированы по убыванию выручки и полные, чтобы их сумма совпадала с итогом. До limit обрезается только
// топ продуктов.
func (a *AnalyticsService) Overview(
	ctx context.Context,
	filter domain.AnalyticsFilter,
	period domain.PeriodType,
	limit int,
) (*domain.Overview, error) {
	entries, err := a.snapshot(ctx, filter)
	if err != nil {
		return nil, err
	}
	return overview(entries, period, limit), nil
}

func (a *AnalyticsService) Revenue(
	ctx context.Context,
	filter domain.AnalyticsFilter,
	period domain.PeriodType,
) (*domain.RevenueReport, error) {
	entries, err := a.snapshot(ctx, filter)
	if err != nil {
		return nil, err
	}
	return &domain.RevenueReport{
		Totals:  revenue.Totals(entries),
		Period:  period,
		Buckets: revenue.OverTime(entries, period),
	}, nil
}

// Businesses расширенный отчет по бизнесам. Сводка считается по всем бизнесам, не только по первым limit.
func (a *AnalyticsService) Businesses(
	ctx context.Context,
	filter domain.AnalyticsFilter,
	limit int,
) (*domain.BusinessesReport, error) {
	entries, err := a.snapshot(ctx, filter)
	if err != nil {
		return nil, err
	}

	reports := revenue.BusinessReports(entries)
	summary := revenue.SummarizeBusinesses(reports)
	slices.SortStableFunc(reports, func(x, y domain.BusinessReport) int {
		return y.Revenue.Cmp(x.Revenue)
	})

	return &domain.BusinessesReport{
		Businesses: truncate(reports, limit),
		Summary:    summary,
	}, nil
}

// Products расширенный отчет по продуктам. Сводка считается по всем продуктам.
func (a *AnalyticsService) Products(
	ctx context.Context,
	filter domain.AnalyticsFilter,
	limit int,
) (*domain.ProductsReport, error) {
	entries, err := a.snapshot(ctx, filter)
	if err != nil {
		return nil, err
	}

	reports := revenue.ProductReports(entries)
	summary := revenue.SummarizeProducts(reports)
	slices.SortStableFunc(reports, func(x, y domain.ProductReport) int {
		return y.Revenue.Cmp(x.Revenue)
	})

	return &domain.ProductsReport{
		Products: truncate(reports, limit),
		Summary:  summary,
	}, nil
}

// ProfileOverview Overview по бизнесам владельца ownerID и статистика его каталога. Журнал и каталог
// читаются из одного снимка.
func (a *AnalyticsService) ProfileOverview(
	ctx context.Context,
	ownerID uuid.UUID,
	filter domain.AnalyticsFilter,
	period domain.PeriodType,
	limit int,
) (*domain.ProfileOverview, error) {
	filter.OwnerID = &ownerID

	var entries []domain.LedgerEntry
	var stats *repoargs.OwnerCatalogStats
	txErr := a.uow.Snapshot(ctx, func(c context.Context, tx uow.TX) error {
		var err error
		if entries, err = ledgerSnapshot(c, tx, filter); err != nil {
			return err
		}
		catalogRepo, repoErr := uow.GetAs[CatalogRepository](tx, uow.RepositoryName(repoargs.CatalogRepoName))
		if repoErr != nil {
			return repoErr //nolint:wrapcheck
		}
		stats, err = catalogRepo.OwnerStats(c, ownerID)
		return err //nolint:wrapcheck
	})
	if txErr != nil {
		return nil, storageErr(txErr, "reading profile `%s` analytics", ownerID)
	}

	return &domain.ProfileOverview{
		Overview:             *overview(entries, period, limit),
		BusinessCount:        stats.BusinessCount,
		AssignedProductCount: stats.AssignedProductCount,
	}, nil
}

func (a *AnalyticsService) snapshot(ctx context.Context, filter domain.AnalyticsFilter) ([]domain.LedgerEntry, error) {
	var entries []domain.LedgerEntry
	txErr := a.uow.Snapshot(ctx, func(c context.Context, tx uow.TX) error {
		var err error
		entries, err = ledgerSnapshot(c, tx, filter)
		return err
	})
	if txErr != nil {
		return nil, storageErr(txErr, "reading ledger snapshot")
	}
	return entries, nil
}

func ledgerSnapshot(ctx context.Context, tx uow.TX, filter domain.AnalyticsFilter) ([]domain.LedgerEntry, error) {
	repo, repoErr := uow.GetAs[AnalyticsRepository](tx, uow.RepositoryName(repoargs.AnalyticsRepoName))
	if repoErr != nil {
		return nil, repoErr //nolint:wrapcheck
	}
	return repo.LedgerSnapshot(ctx, filter) //nolint:wrapcheck
}

func overview(entries []domain.LedgerEntry, period domain.PeriodType, limit int) *domain.Overview {
	byBusiness := revenue.ByBusiness(entries)
	revenue.SortBusinessesByRevenue(byBusiness)
	byProduct := revenue.ByProduct(entries)
	revenue.SortProductsByRevenue(byProduct)

	return &domain.Overview{
		Totals:      revenue.Totals(entries),
		ByBusiness:  byBusiness,
		ByProduct:   byProduct,
		OverTime:    revenue.OverTime(entries, period),
		TopProducts: revenue.TopProducts(entries, limit),
	}
}

// ClampLimit приводит limit к диапазону отчетов: 0 - значение по умолчанию, больше максимума - максимум.
func ClampLimit(limit int) int {
	switch {
	case limit <= 0:
		return DefaultAnalyticsLimit
	case limit > MaxAnalyticsLimit:
		return MaxAnalyticsLimit
	default:
		return limit
	}
}

func truncate[T any](items []T, limit int) []T {
	if limit > 0 && len(items) > limit {
		return items[:limit]
	}
	return items
}
