package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// UnknownName подставляется, если бизнес или продукт удалены после записи платежа.
const UnknownName = "Unknown"

// AnalyticsFilter фильтр выборки журнала платежей. Обе даты включаются в диапазон целиком.
type AnalyticsFilter struct {
	StartDate  *time.Time
	EndDate    *time.Time
	BusinessID *uuid.UUID
	OwnerID    *uuid.UUID
}

// LedgerEntry строка журнала платежей вместе с названиями бизнеса и продукта.
type LedgerEntry struct {
	PaymentID    uuid.UUID
	CreatedAt    time.Time
	BusinessID   uuid.UUID
	BusinessName string
	ProductID    uuid.UUID
	ProductName  string
	Amount       decimal.Decimal
	Status       PaymentStatusType
}

type RevenueByBusiness struct {
	BusinessID   uuid.UUID
	Name         string
	Revenue      decimal.Decimal
	PaymentCount int
}

type RevenueByProduct struct {
	ProductID     uuid.UUID
	Name          string
	Revenue       decimal.Decimal
	PaymentCount  int
	BusinessCount int
}

type RevenueBucket struct {
	Label        string
	Revenue      decimal.Decimal
	PaymentCount int
}

type RevenueTotals struct {
	TotalRevenue            decimal.Decimal
	TotalPayments           int
	CapturedPayments        int
	FailedPayments          int
	SuccessRate             decimal.Decimal
	AverageTransactionValue decimal.Decimal
}

// Overview все срезы выручки, посчитанные по одному снимку журнала.
type Overview struct {
	Totals      RevenueTotals
	ByBusiness  []RevenueByBusiness
	ByProduct   []RevenueByProduct
	OverTime    []RevenueBucket
	TopProducts []RevenueByProduct
}

// ProfileOverview Overview по всем бизнесам владельца.
type ProfileOverview struct {
	Overview
	BusinessCount        int
	AssignedProductCount int
}

// RevenueReport выручка во времени с итогами за тот же период.
type RevenueReport struct {
	Totals  RevenueTotals
	Period  PeriodType
	Buckets []RevenueBucket
}

type BusinessReport struct {
	RevenueByBusiness
	UniqueProducts   int
	AverageSaleValue decimal.Decimal
	FirstSale        time.Time
	LastSale         time.Time
	DaysActive       int
	TopProducts      []RevenueByProduct
}

type BusinessReportSummary struct {
	TotalRevenue               decimal.Decimal
	TotalSales                 int
	TotalBusinesses            int
	AverageRevenuePerBusiness  decimal.Decimal
	AverageProductsPerBusiness decimal.Decimal
}

type BusinessesReport struct {
	Businesses []BusinessReport
	Summary    BusinessReportSummary
}

type ProductReport struct {
	RevenueByProduct
	AveragePrice decimal.Decimal
}

type ProductReportSummary struct {
	TotalRevenue             decimal.Decimal
	TotalSales               int
	TotalProducts            int
	AverageRevenuePerProduct decimal.Decimal
}

type ProductsReport struct {
	Products []ProductReport
	Summary  ProductReportSummary
}

// PendingMaterialization захваченный платеж, для которого нет заказа.
type PendingMaterialization struct {
	PaymentID         uuid.UUID
	ProviderPaymentID string
	BusinessID        uuid.UUID
	Amount            decimal.Decimal
	CreatedAt         time.Time
}

// PaymentIntent данные для формирования UPI ссылки (QR кода) на оплату продукта бизнеса.
type PaymentIntent struct {
	UPIURL          string
	Amount          decimal.Decimal
	Currency        string
	TransactionNote string
}
