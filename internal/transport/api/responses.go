package api

import (
	"time"

	"github.com/fsdevblog/qrpay/internal/domain"
	"github.com/google/uuid"
)

type TotalsResponse struct {
	TotalRevenue            float64 `json:"total_revenue"`
	TotalPayments           int     `json:"total_payments"`
	SuccessfulPayments      int     `json:"successful_payments"`
	FailedPayments          int     `json:"failed_payments"`
	SuccessRate             float64 `json:"success_rate"`
	AverageTransactionValue float64 `json:"average_transaction_value"`
}

type BusinessRevenueResponse struct {
	BusinessID   uuid.UUID `json:"business_id"`
	Name         string    `json:"name"`
	Revenue      float64   `json:"revenue"`
	PaymentCount int       `json:"payment_count"`
}

type ProductRevenueResponse struct {
	ProductID     uuid.UUID `json:"product_id"`
	Name          string    `json:"name"`
	Revenue       float64   `json:"revenue"`
	PaymentCount  int       `json:"payment_count"`
	BusinessCount int       `json:"business_count"`
}

type BucketResponse struct {
	Period       string  `json:"period"`
	Revenue      float64 `json:"revenue"`
	PaymentCount int     `json:"payment_count"`
}

type OverviewResponse struct {
	Totals      TotalsResponse            `json:"totals"`
	ByBusiness  []BusinessRevenueResponse `json:"revenue_by_business"`
	ByProduct   []ProductRevenueResponse  `json:"revenue_by_product"`
	OverTime    []BucketResponse          `json:"revenue_over_time"`
	TopProducts []ProductRevenueResponse  `json:"top_products"`
}

type ProfileOverviewResponse struct {
	OverviewResponse
	BusinessCount        int `json:"business_count"`
	AssignedProductCount int `json:"assigned_product_count"`
}

type RevenueResponse struct {
	Totals  TotalsResponse   `json:"totals"`
	Period  string           `json:"period"`
	Buckets []BucketResponse `json:"revenue_over_time"`
}

type BusinessReportResponse struct {
	BusinessRevenueResponse
	UniqueProducts   int                      `json:"unique_products_count"`
	AverageSaleValue float64                  `json:"average_sale_value"`
	FirstSale        time.Time                `json:"first_sale"`
	LastSale         time.Time                `json:"last_sale"`
	DaysActive       int                      `json:"days_active"`
	TopProducts      []ProductRevenueResponse `json:"top_products"`
}

type BusinessSummaryResponse struct {
	TotalRevenue               float64 `json:"total_revenue"`
	TotalSales                 int     `json:"total_sales"`
	TotalBusinesses            int     `json:"total_businesses"`
	AverageRevenuePerBusiness  float64 `json:"average_revenue_per_business"`
	AverageProductsPerBusiness float64 `json:"average_products_per_business"`
}

type BusinessesResponse struct {
	Businesses []BusinessReportResponse `json:"businesses"`
	Summary    BusinessSummaryResponse  `json:"summary"`
}

type ProductReportResponse struct {
	ProductRevenueResponse
	AveragePrice float64 `json:"average_price"`
}

type ProductSummaryResponse struct {
	TotalRevenue             float64 `json:"total_revenue"`
	TotalSales               int     `json:"total_sales"`
	TotalProducts            int     `json:"total_products"`
	AverageRevenuePerProduct float64 `json:"average_revenue_per_product"`
}

type ProductsResponse struct {
	Products []ProductReportResponse `json:"products"`
	Summary  ProductSummaryResponse  `json:"summary"`
}

type PaymentIntentResponse struct {
	UPIURL          string  `json:"upi_url"`
	Amount          float64 `json:"amount"`
	Currency        string  `json:"currency"`
	TransactionNote string  `json:"transaction_note"`
}

type OrderResponse struct {
	ID         uuid.UUID  `json:"id"`
	CreatedAt  time.Time  `json:"created_at"`
	BusinessID uuid.UUID  `json:"business_id"`
	PaymentID  *uuid.UUID `json:"payment_id"`
	Status     string     `json:"status"`
}

func newTotalsResponse(t domain.RevenueTotals) TotalsResponse {
	return TotalsResponse{
		TotalRevenue:            t.TotalRevenue.InexactFloat64(),
		TotalPayments:           t.TotalPayments,
		SuccessfulPayments:      t.CapturedPayments,
		FailedPayments:          t.FailedPayments,
		SuccessRate:             t.SuccessRate.InexactFloat64(),
		AverageTransactionValue: t.AverageTransactionValue.InexactFloat64(),
	}
}

func newBusinessRevenueResponse(b domain.RevenueByBusiness) BusinessRevenueResponse {
	return BusinessRevenueResponse{
		BusinessID:   b.BusinessID,
		Name:         b.Name,
		Revenue:      b.Revenue.InexactFloat64(),
		PaymentCount: b.PaymentCount,
	}
}

func newProductRevenueResponse(p domain.RevenueByProduct) ProductRevenueResponse {
	return ProductRevenueResponse{
		ProductID:     p.ProductID,
		Name:          p.Name,
		Revenue:       p.Revenue.InexactFloat64(),
		PaymentCount:  p.PaymentCount,
		BusinessCount: p.BusinessCount,
	}
}

func newProductsRevenueResponse(products []domain.RevenueByProduct) []ProductRevenueResponse {
	response := make([]ProductRevenueResponse, len(products))
	for i, p := range products {
		response[i] = newProductRevenueResponse(p)
	}
	return response
}

func newBucketsResponse(buckets []domain.RevenueBucket) []BucketResponse {
	response := make([]BucketResponse, len(buckets))
	for i, b := range buckets {
		response[i] = BucketResponse{
			Period:       b.Label,
			Revenue:      b.Revenue.InexactFloat64(),
			PaymentCount: b.PaymentCount,
		}
	}
	return response
}

func newOverviewResponse(o *domain.Overview) OverviewResponse {
	byBusiness := make([]BusinessRevenueResponse, len(o.ByBusiness))
	for i, b := range o.ByBusiness {
		byBusiness[i] = newBusinessRevenueResponse(b)
	}

	return OverviewResponse{
		Totals:      newTotalsResponse(o.Totals),
		ByBusiness:  byBusiness,
		ByProduct:   newProductsRevenueResponse(o.ByProduct),
		OverTime:    newBucketsResponse(o.OverTime),
		TopProducts: newProductsRevenueResponse(o.TopProducts),
	}
}

func newBusinessesResponse(r *domain.BusinessesReport) BusinessesResponse {
	businesses := make([]BusinessReportResponse, len(r.Businesses))
	for i, b := range r.Businesses {
		businesses[i] = BusinessReportResponse{
			BusinessRevenueResponse: newBusinessRevenueResponse(b.RevenueByBusiness),
			UniqueProducts:          b.UniqueProducts,
			AverageSaleValue:        b.AverageSaleValue.InexactFloat64(),
			FirstSale:               b.FirstSale,
			LastSale:                b.LastSale,
			DaysActive:              b.DaysActive,
			TopProducts:             newProductsRevenueResponse(b.TopProducts),
		}
	}

	return BusinessesResponse{
		Businesses: businesses,
		Summary: BusinessSummaryResponse{
			TotalRevenue:               r.Summary.TotalRevenue.InexactFloat64(),
			TotalSales:                 r.Summary.TotalSales,
			TotalBusinesses:            r.Summary.TotalBusinesses,
			AverageRevenuePerBusiness:  r.Summary.AverageRevenuePerBusiness.InexactFloat64(),
			AverageProductsPerBusiness: r.Summary.AverageProductsPerBusiness.InexactFloat64(),
		},
	}
}

func newProductsResponse(r *domain.ProductsReport) ProductsResponse {
	products := make([]ProductReportResponse, len(r.Products))
	for i, p := range r.Products {
		products[i] = ProductReportResponse{
			ProductRevenueResponse: newProductRevenueResponse(p.RevenueByProduct),
			AveragePrice:           p.AveragePrice.InexactFloat64(),
		}
	}

	return ProductsResponse{
		Products: products,
		Summary: ProductSummaryResponse{
			TotalRevenue:             r.Summary.TotalRevenue.InexactFloat64(),
			TotalSales:               r.Summary.TotalSales,
			TotalProducts:            r.Summary.TotalProducts,
			AverageRevenuePerProduct: r.Summary.AverageRevenuePerProduct.InexactFloat64(),
		},
	}
}

func newOrderResponse(o *domain.Order) OrderResponse {
	return OrderResponse{
		ID:         o.ID,
		CreatedAt:  o.CreatedAt,
		BusinessID: o.BusinessID,
		PaymentID:  o.PaymentID,
		Status:     string(o.Status),
	}
}
