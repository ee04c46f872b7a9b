package revenue

import (
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/fsdevblog/qrpay/internal/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type RevenueTestSuite struct {
	suite.Suite
	businessA uuid.UUID
	businessB uuid.UUID
	productA  uuid.UUID
	productB  uuid.UUID
	entries   []domain.LedgerEntry
}

func TestRevenueSuite(t *testing.T) {
	suite.Run(t, new(RevenueTestSuite))
}

func (s *RevenueTestSuite) SetupTest() {
	s.businessA = uuid.New()
	s.businessB = uuid.New()
	s.productA = uuid.New()
	s.productB = uuid.New()

	s.entries = []domain.LedgerEntry{
		s.entry(s.businessA, s.productA, "100.00", domain.PaymentStatusCaptured, "2024-03-04T10:00:00Z"), // понедельник
		s.entry(s.businessA, s.productB, "40.50", domain.PaymentStatusCaptured, "2024-03-06T23:59:59Z"),
		s.entry(s.businessB, s.productA, "50.00", domain.PaymentStatusCaptured, "2024-03-10T08:00:00Z"), // воскресенье
		s.entry(s.businessB, s.productB, "999.99", domain.PaymentStatusFailed, "2024-03-10T09:00:00Z"),
		s.entry(s.businessA, s.productA, "10.25", domain.PaymentStatusCaptured, "2024-04-01T00:00:00Z"),
	}
}

func (s *RevenueTestSuite) entry(
	businessID, productID uuid.UUID,
	amount string,
	status domain.PaymentStatusType,
	createdAt string,
) domain.LedgerEntry {
	ts, err := time.Parse(time.RFC3339, createdAt)
	s.Require().NoError(err)
	return domain.LedgerEntry{
		PaymentID:    uuid.New(),
		CreatedAt:    ts,
		BusinessID:   businessID,
		BusinessName: "business " + businessID.String()[:4],
		ProductID:    productID,
		ProductName:  "product " + productID.String()[:4],
		Amount:       decimal.RequireFromString(amount),
		Status:       status,
	}
}

func (s *RevenueTestSuite) decimalEqual(want string, got decimal.Decimal) {
	s.Truef(decimal.RequireFromString(want).Equal(got), "want %s, got %s", want, got.String())
}

func (s *RevenueTestSuite) TestByBusiness() {
	result := ByBusiness(s.entries)

	s.Require().Len(result, 2)
	// порядок первого появления
	s.Equal(s.businessA, result[0].BusinessID)
	s.decimalEqual("150.75", result[0].Revenue)
	s.Equal(3, result[0].PaymentCount)

	s.Equal(s.businessB, result[1].BusinessID)
	s.decimalEqual("50", result[1].Revenue)
	s.Equal(1, result[1].PaymentCount) // неуспешный платеж не учитывается
}

func (s *RevenueTestSuite) TestByProduct() {
	result := ByProduct(s.entries)

	s.Require().Len(result, 2)
	s.Equal(s.productA, result[0].ProductID)
	s.decimalEqual("160.25", result[0].Revenue)
	s.Equal(3, result[0].PaymentCount)
	s.Equal(2, result[0].BusinessCount)

	s.Equal(s.productB, result[1].ProductID)
	s.decimalEqual("40.5", result[1].Revenue)
	s.Equal(1, result[1].BusinessCount)
}

func (s *RevenueTestSuite) TestUnknownNames() {
	entries := []domain.LedgerEntry{{
		BusinessID: uuid.New(),
		ProductID:  uuid.New(),
		Amount:     decimal.NewFromInt(1),
		Status:     domain.PaymentStatusCaptured,
	}}

	s.Equal(domain.UnknownName, ByBusiness(entries)[0].Name)
	s.Equal(domain.UnknownName, ByProduct(entries)[0].Name)
}

func (s *RevenueTestSuite) TestOverTime() {
	cases := []struct {
		period     domain.PeriodType
		wantLabels []string
		wantCounts []int
	}{
		{
			period:     domain.PeriodDaily,
			wantLabels: []string{"2024-03-04", "2024-03-06", "2024-03-10", "2024-04-01"},
			wantCounts: []int{1, 1, 1, 1},
		},
		{
			period:     domain.PeriodWeekly,
			wantLabels: []string{"2024-03-04", "2024-04-01"},
			wantCounts: []int{3, 1},
		},
		{
			period:     domain.PeriodMonthly,
			wantLabels: []string{"2024-03", "2024-04"},
			wantCounts: []int{3, 1},
		},
	}

	totals := Totals(s.entries)
	for _, t := range cases {
		s.Run(string(t.period), func() {
			buckets := OverTime(s.entries, t.period)
			s.Require().Len(buckets, len(t.wantLabels))

			var sum decimal.Decimal
			for i, bucket := range buckets {
				s.Equal(t.wantLabels[i], bucket.Label)
				s.Equal(t.wantCounts[i], bucket.PaymentCount)
				sum = sum.Add(bucket.Revenue)
			}
			// смена периода не меняет итоговую выручку
			s.True(totals.TotalRevenue.Equal(sum))
		})
	}
}

func (s *RevenueTestSuite) TestBucketLabel() {
	cases := []struct {
		name   string
		ts     time.Time
		period domain.PeriodType
		want   string
	}{
		{
			name:   "weekly sunday goes to previous monday",
			ts:     time.Date(2024, 3, 10, 23, 0, 0, 0, time.UTC),
			period: domain.PeriodWeekly,
			want:   "2024-03-04",
		},
		{
			name:   "weekly monday is its own bucket",
			ts:     time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC),
			period: domain.PeriodWeekly,
			want:   "2024-03-11",
		},
		{
			name:   "weekly crosses year",
			ts:     time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC),
			period: domain.PeriodWeekly,
			want:   "2024-12-30",
		},
		{
			name:   "daily uses utc date",
			ts:     time.Date(2024, 3, 10, 2, 0, 0, 0, time.FixedZone("IST", 5*3600+1800)),
			period: domain.PeriodDaily,
			want:   "2024-03-09",
		},
		{
			name:   "monthly",
			ts:     time.Date(2024, 12, 31, 23, 59, 59, 0, time.UTC),
			period: domain.PeriodMonthly,
			want:   "2024-12",
		},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			s.Equal(t.want, BucketLabel(t.ts, t.period))
		})
	}
}

func (s *RevenueTestSuite) TestTotals() {
	totals := Totals(s.entries)

	s.Equal(5, totals.TotalPayments)
	s.Equal(4, totals.CapturedPayments)
	s.Equal(1, totals.FailedPayments)
	s.decimalEqual("200.75", totals.TotalRevenue)
	s.decimalEqual("80", totals.SuccessRate)
	s.decimalEqual("50.19", totals.AverageTransactionValue)
}

func (s *RevenueTestSuite) TestTotals_NoPayments() {
	for _, entries := range [][]domain.LedgerEntry{nil, {}} {
		totals := Totals(entries)
		s.True(totals.TotalRevenue.IsZero())
		s.True(totals.SuccessRate.IsZero())
		s.True(totals.AverageTransactionValue.IsZero())
	}

	// только неуспешные платежи
	onlyFailed := []domain.LedgerEntry{s.entries[3]}
	totals := Totals(onlyFailed)
	s.True(totals.SuccessRate.IsZero())
	s.True(totals.AverageTransactionValue.IsZero())
	s.Empty(ByBusiness(onlyFailed))
	s.Empty(OverTime(onlyFailed, domain.PeriodDaily))
}

func (s *RevenueTestSuite) TestRevenueConservation() {
	// случайный набор платежей по нескольким бизнесам и продуктам
	businesses := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}
	products := []uuid.UUID{uuid.New(), uuid.New(), uuid.New(), uuid.New()}
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	var entries []domain.LedgerEntry
	for range 200 {
		status := domain.PaymentStatusCaptured
		if gofakeit.Bool() {
			status = domain.PaymentStatusFailed
		}
		entries = append(entries, domain.LedgerEntry{
			PaymentID:  uuid.New(),
			CreatedAt:  start.Add(time.Duration(gofakeit.IntRange(0, 365*24)) * time.Hour),
			BusinessID: businesses[gofakeit.IntRange(0, len(businesses)-1)],
			ProductID:  products[gofakeit.IntRange(0, len(products)-1)],
			Amount:     decimal.New(int64(gofakeit.IntRange(1, 1000000)), -2),
			Status:     status,
		})
	}

	total := Totals(entries).TotalRevenue

	var byBusiness, byProduct decimal.Decimal
	for _, b := range ByBusiness(entries) {
		byBusiness = byBusiness.Add(b.Revenue)
	}
	for _, p := range ByProduct(entries) {
		byProduct = byProduct.Add(p.Revenue)
	}
	s.True(total.Equal(byBusiness))
	s.True(total.Equal(byProduct))

	for _, period := range []domain.PeriodType{domain.PeriodDaily, domain.PeriodWeekly, domain.PeriodMonthly} {
		var overTime decimal.Decimal
		for _, bucket := range OverTime(entries, period) {
			overTime = overTime.Add(bucket.Revenue)
		}
		s.Truef(total.Equal(overTime), "period %s", period)
	}
}

func (s *RevenueTestSuite) TestTopProducts() {
	product := uuid.New()
	business := uuid.New()
	entries := []domain.LedgerEntry{
		s.entry(business, product, "100.00", domain.PaymentStatusCaptured, "2024-05-01T10:00:00Z"),
		s.entry(business, product, "50.00", domain.PaymentStatusCaptured, "2024-05-02T10:00:00Z"),
	}

	top := TopProducts(entries, 1)
	s.Require().Len(top, 1)
	s.Equal(product, top[0].ProductID)
	s.decimalEqual("150.00", top[0].Revenue)
	s.Equal(2, top[0].PaymentCount)

	buckets := OverTime(entries, domain.PeriodDaily)
	s.Require().Len(buckets, 2)
	s.decimalEqual("150", buckets[0].Revenue.Add(buckets[1].Revenue))
}

func (s *RevenueTestSuite) TestTopProducts_StableTies() {
	first, second, third := uuid.New(), uuid.New(), uuid.New()
	business := uuid.New()
	entries := []domain.LedgerEntry{
		s.entry(business, first, "10", domain.PaymentStatusCaptured, "2024-05-01T10:00:00Z"),
		s.entry(business, second, "30", domain.PaymentStatusCaptured, "2024-05-01T11:00:00Z"),
		s.entry(business, third, "10", domain.PaymentStatusCaptured, "2024-05-01T12:00:00Z"),
	}

	top := TopProducts(entries, 0)
	s.Require().Len(top, 3)
	s.Equal([]uuid.UUID{second, first, third}, []uuid.UUID{top[0].ProductID, top[1].ProductID, top[2].ProductID})

	s.Len(TopProducts(entries, 2), 2)
	s.Len(TopProducts(entries, 10), 3)
}

func (s *RevenueTestSuite) TestBusinessReports() {
	reports := BusinessReports(s.entries)
	s.Require().Len(reports, 2)

	a := reports[0]
	s.Equal(s.businessA, a.BusinessID)
	s.Equal(2, a.UniqueProducts)
	s.decimalEqual("50.25", a.AverageSaleValue)
	s.Equal("2024-03-04", a.FirstSale.Format("2006-01-02"))
	s.Equal("2024-04-01", a.LastSale.Format("2006-01-02"))
	s.Equal(29, a.DaysActive)
	s.Require().Len(a.TopProducts, 2)
	s.Equal(s.productA, a.TopProducts[0].ProductID)

	b := reports[1]
	s.Equal(1, b.DaysActive)

	summary := SummarizeBusinesses(reports)
	s.Equal(2, summary.TotalBusinesses)
	s.Equal(4, summary.TotalSales)
	s.decimalEqual("200.75", summary.TotalRevenue)
	s.decimalEqual("100.38", summary.AverageRevenuePerBusiness)
	s.decimalEqual("1.5", summary.AverageProductsPerBusiness)

	empty := SummarizeBusinesses(nil)
	s.True(empty.AverageRevenuePerBusiness.IsZero())
}

func (s *RevenueTestSuite) TestProductReports() {
	reports := ProductReports(s.entries)
	s.Require().Len(reports, 2)
	s.decimalEqual("53.42", reports[0].AveragePrice)

	summary := SummarizeProducts(reports)
	s.Equal(2, summary.TotalProducts)
	s.decimalEqual("200.75", summary.TotalRevenue)
	s.decimalEqual("100.38", summary.AverageRevenuePerProduct)
}
