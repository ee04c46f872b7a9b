package api

import (
	"time"

	"github.com/fsdevblog/qrpay/internal/domain"
	"github.com/fsdevblog/qrpay/internal/service"
	"github.com/google/uuid"
)

// AnalyticsParams параметры запросов аналитики. Даты в формате YYYY-MM-DD, обе включаются в период.
type AnalyticsParams struct {
	StartDate  *time.Time `form:"start_date"  time_format:"2006-01-02" time_utc:"1"`
	EndDate    *time.Time `form:"end_date"    time_format:"2006-01-02" time_utc:"1"`
	BusinessID string     `binding:"omitempty,uuid" form:"business_id"`
	Period     string     `form:"period"`
	Limit      *int       `binding:"omitempty,min=1" form:"limit"`
}

type analyticsQuery struct {
	filter domain.AnalyticsFilter
	period domain.PeriodType
	limit  int
}

// query переводит параметры в фильтр сервиса. Лимит больше максимального урезается, незаданный заменяется
// значением по умолчанию.
func (p AnalyticsParams) query() (*analyticsQuery, error) {
	period, err := domain.ParsePeriod(p.Period)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	q := analyticsQuery{
		filter: domain.AnalyticsFilter{
			StartDate: nonZeroDate(p.StartDate),
			EndDate:   nonZeroDate(p.EndDate),
		},
		period: period,
		limit:  service.ClampLimit(0),
	}
	if p.Limit != nil {
		q.limit = service.ClampLimit(*p.Limit)
	}
	if p.BusinessID != "" {
		businessID, parseErr := uuid.Parse(p.BusinessID)
		if parseErr != nil {
			return nil, parseErr //nolint:wrapcheck
		}
		q.filter.BusinessID = &businessID
	}
	return &q, nil
}

// nonZeroDate пустой параметр (start_date=) gin заполняет нулевым временем.
func nonZeroDate(t *time.Time) *time.Time {
	if t == nil || t.IsZero() {
		return nil
	}
	return t
}
