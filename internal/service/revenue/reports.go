package revenue

import (
	"math"
	"time"

	"github.com/fsdevblog/qrpay/internal/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// topProductsPerBusiness сколько продуктов показывать в отчете по бизнесу.
const topProductsPerBusiness = 5

// BusinessReports расширенный отчет по бизнесам: к выручке добавляются число продуктов, средний чек,
// даты первой и последней продажи, число активных дней и топ продуктов бизнеса.
func BusinessReports(entries []domain.LedgerEntry) []domain.BusinessReport {
	byBusiness := ByBusiness(entries)

	var perBusiness = make(map[uuid.UUID][]domain.LedgerEntry, len(byBusiness))
	for _, entry := range entries {
		if entry.Status != domain.PaymentStatusCaptured {
			continue
		}
		perBusiness[entry.BusinessID] = append(perBusiness[entry.BusinessID], entry)
	}

	var reports = make([]domain.BusinessReport, len(byBusiness))
	for i, business := range byBusiness {
		own := perBusiness[business.BusinessID]
		first, last := saleRange(own)
		products := ByProduct(own)

		reports[i] = domain.BusinessReport{
			RevenueByBusiness: business,
			UniqueProducts:    len(products),
			AverageSaleValue:  average(business.Revenue, business.PaymentCount),
			FirstSale:         first,
			LastSale:          last,
			DaysActive:        daysActive(first, last),
			TopProducts:       TopProducts(own, topProductsPerBusiness),
		}
	}
	return reports
}

// SummarizeBusinesses сводка по отчетам бизнесов.
func SummarizeBusinesses(reports []domain.BusinessReport) domain.BusinessReportSummary {
	var summary = domain.BusinessReportSummary{TotalBusinesses: len(reports)}
	var products int
	for _, report := range reports {
		summary.TotalRevenue = summary.TotalRevenue.Add(report.Revenue)
		summary.TotalSales += report.PaymentCount
		products += report.UniqueProducts
	}
	summary.AverageRevenuePerBusiness = average(summary.TotalRevenue, len(reports))
	summary.AverageProductsPerBusiness = average(decimal.NewFromInt(int64(products)), len(reports))
	return summary
}

// ProductReports расширенный отчет по продуктам со средней ценой продажи.
func ProductReports(entries []domain.LedgerEntry) []domain.ProductReport {
	byProduct := ByProduct(entries)
	var reports = make([]domain.ProductReport, len(byProduct))
	for i, product := range byProduct {
		reports[i] = domain.ProductReport{
			RevenueByProduct: product,
			AveragePrice:     average(product.Revenue, product.PaymentCount),
		}
	}
	return reports
}

// SummarizeProducts сводка по отчетам продуктов.
func SummarizeProducts(reports []domain.ProductReport) domain.ProductReportSummary {
	var summary = domain.ProductReportSummary{TotalProducts: len(reports)}
	for _, report := range reports {
		summary.TotalRevenue = summary.TotalRevenue.Add(report.Revenue)
		summary.TotalSales += report.PaymentCount
	}
	summary.AverageRevenuePerProduct = average(summary.TotalRevenue, len(reports))
	return summary
}

func average(sum decimal.Decimal, count int) decimal.Decimal {
	if count == 0 {
		return decimal.Zero
	}
	return sum.Div(decimal.NewFromInt(int64(count))).Round(2) //nolint:mnd
}

func saleRange(entries []domain.LedgerEntry) (time.Time, time.Time) {
	var first, last time.Time
	for i, entry := range entries {
		if i == 0 || entry.CreatedAt.Before(first) {
			first = entry.CreatedAt
		}
		if i == 0 || entry.CreatedAt.After(last) {
			last = entry.CreatedAt
		}
	}
	return first, last
}

func daysActive(first, last time.Time) int {
	if first.IsZero() {
		return 0
	}
	days := last.Sub(first).Hours() / 24 //nolint:mnd
	return int(math.Ceil(days)) + 1
}
