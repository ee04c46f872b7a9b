// Package revenue считает срезы выручки по снимку журнала платежей. Все функции чистые: на вход получают
// строки журнала (захваченные и неуспешные платежи), в выручку попадают только захваченные.
package revenue

import (
	"slices"

	"github.com/fsdevblog/qrpay/internal/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100) //nolint:mnd

// ByBusiness группирует выручку по бизнесу. Порядок групп - порядок первого появления бизнеса в entries.
func ByBusiness(entries []domain.LedgerEntry) []domain.RevenueByBusiness {
	var index = make(map[uuid.UUID]int)
	var result = make([]domain.RevenueByBusiness, 0)

	for _, entry := range entries {
		if entry.Status != domain.PaymentStatusCaptured {
			continue
		}
		i, ok := index[entry.BusinessID]
		if !ok {
			i = len(result)
			index[entry.BusinessID] = i
			result = append(result, domain.RevenueByBusiness{
				BusinessID: entry.BusinessID,
				Name:       nameOrUnknown(entry.BusinessName),
			})
		}
		result[i].Revenue = result[i].Revenue.Add(entry.Amount)
		result[i].PaymentCount++
	}
	return result
}

// ByProduct группирует выручку по продукту и считает число разных бизнесов, продавших продукт.
// Порядок групп - порядок первого появления продукта в entries.
func ByProduct(entries []domain.LedgerEntry) []domain.RevenueByProduct {
	var index = make(map[uuid.UUID]int)
	var businesses = make(map[uuid.UUID]map[uuid.UUID]struct{})
	var result = make([]domain.RevenueByProduct, 0)

	for _, entry := range entries {
		if entry.Status != domain.PaymentStatusCaptured {
			continue
		}
		i, ok := index[entry.ProductID]
		if !ok {
			i = len(result)
			index[entry.ProductID] = i
			businesses[entry.ProductID] = make(map[uuid.UUID]struct{})
			result = append(result, domain.RevenueByProduct{
				ProductID: entry.ProductID,
				Name:      nameOrUnknown(entry.ProductName),
			})
		}
		result[i].Revenue = result[i].Revenue.Add(entry.Amount)
		result[i].PaymentCount++

		businesses[entry.ProductID][entry.BusinessID] = struct{}{}
		result[i].BusinessCount = len(businesses[entry.ProductID])
	}
	return result
}

// TopProducts возвращает limit продуктов с наибольшей выручкой. При равной выручке сохраняется порядок ByProduct.
// limit <= 0 означает без ограничения.
func TopProducts(entries []domain.LedgerEntry, limit int) []domain.RevenueByProduct {
	products := ByProduct(entries)
	SortProductsByRevenue(products)
	return truncate(products, limit)
}

// Totals считает итоговые показатели. Процент успешных платежей и средний чек равны нулю,
// если делить не на что.
func Totals(entries []domain.LedgerEntry) domain.RevenueTotals {
	var totals domain.RevenueTotals
	for _, entry := range entries {
		totals.TotalPayments++
		switch entry.Status {
		case domain.PaymentStatusCaptured:
			totals.CapturedPayments++
			totals.TotalRevenue = totals.TotalRevenue.Add(entry.Amount)
		case domain.PaymentStatusFailed:
			totals.FailedPayments++
		}
	}

	if totals.TotalPayments > 0 {
		totals.SuccessRate = decimal.NewFromInt(int64(totals.CapturedPayments)).
			Mul(hundred).
			Div(decimal.NewFromInt(int64(totals.TotalPayments))).
			Round(2) //nolint:mnd
	}
	if totals.CapturedPayments > 0 {
		totals.AverageTransactionValue = totals.TotalRevenue.
			Div(decimal.NewFromInt(int64(totals.CapturedPayments))).
			Round(2) //nolint:mnd
	}
	return totals
}

// SortProductsByRevenue стабильно сортирует продукты по убыванию выручки.
func SortProductsByRevenue(products []domain.RevenueByProduct) {
	slices.SortStableFunc(products, func(a, b domain.RevenueByProduct) int {
		return b.Revenue.Cmp(a.Revenue)
	})
}

// SortBusinessesByRevenue стабильно сортирует бизнесы по убыванию выручки.
func SortBusinessesByRevenue(businesses []domain.RevenueByBusiness) {
	slices.SortStableFunc(businesses, func(a, b domain.RevenueByBusiness) int {
		return b.Revenue.Cmp(a.Revenue)
	})
}

func truncate[T any](items []T, limit int) []T {
	if limit > 0 && len(items) > limit {
		return items[:limit]
	}
	return items
}

func nameOrUnknown(name string) string {
	if name == "" {
		return domain.UnknownName
	}
	return name
}
