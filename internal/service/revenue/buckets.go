package revenue

import (
	"slices"
	"strings"
	"time"

	"github.com/fsdevblog/qrpay/internal/domain"
)

const (
	dayLayout   = "2006-01-02"
	monthLayout = "2006-01"
)

// OverTime группирует выручку по временным корзинам и сортирует их по возрастанию метки.
// Пустые корзины не создаются.
func OverTime(entries []domain.LedgerEntry, period domain.PeriodType) []domain.RevenueBucket {
	var index = make(map[string]int)
	var result = make([]domain.RevenueBucket, 0)

	for _, entry := range entries {
		if entry.Status != domain.PaymentStatusCaptured {
			continue
		}
		label := BucketLabel(entry.CreatedAt, period)
		i, ok := index[label]
		if !ok {
			i = len(result)
			index[label] = i
			result = append(result, domain.RevenueBucket{Label: label})
		}
		result[i].Revenue = result[i].Revenue.Add(entry.Amount)
		result[i].PaymentCount++
	}

	slices.SortFunc(result, func(a, b domain.RevenueBucket) int {
		return strings.Compare(a.Label, b.Label)
	})
	return result
}

// BucketLabel возвращает метку корзины для момента t (в UTC):
//   - daily: дата, YYYY-MM-DD;
//   - weekly: дата понедельника той же недели (понедельник или раньше);
//   - monthly: YYYY-MM.
//
// Неизвестный period трактуется как daily.
func BucketLabel(t time.Time, period domain.PeriodType) string {
	utc := t.UTC()
	switch period {
	case domain.PeriodWeekly:
		// time.Weekday начинается с воскресенья, сдвигаем так, чтобы понедельник был нулем.
		offset := (int(utc.Weekday()) + 6) % 7 //nolint:mnd
		return utc.AddDate(0, 0, -offset).Format(dayLayout)
	case domain.PeriodMonthly:
		return utc.Format(monthLayout)
	case domain.PeriodDaily:
		return utc.Format(dayLayout)
	default:
		return utc.Format(dayLayout)
	}
}
