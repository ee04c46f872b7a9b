package api

import (
	"testing"
	"time"

	"github.com/fsdevblog/qrpay/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyticsParamsQuery(t *testing.T) {
	limit := 7
	zero := time.Time{}
	q, err := AnalyticsParams{StartDate: &zero, Limit: &limit, Period: "weekly"}.query()
	require.NoError(t, err)
	assert.Nil(t, q.filter.StartDate)
	assert.Equal(t, 7, q.limit)
	assert.Equal(t, domain.PeriodWeekly, q.period)

	_, err = AnalyticsParams{Period: "yearly"}.query()
	assert.ErrorIs(t, err, domain.ErrInvalidPeriod)

	q, err = AnalyticsParams{}.query()
	require.NoError(t, err)
	assert.Equal(t, 50, q.limit)
	assert.Equal(t, domain.PeriodDaily, q.period)
}
