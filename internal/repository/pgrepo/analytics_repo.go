package pgrepo

import (
	"context"
	"fmt"
	"strings"

	"github.com/fsdevblog/qrpay/internal/domain"
	"github.com/fsdevblog/qrpay/pkg/uow"
	"github.com/jackc/pgx/v5"
)

type AnalyticsRepository struct {
	conn uow.DBTX
}

func NewAnalyticsRepository(conn uow.DBTX) *AnalyticsRepository {
	return &AnalyticsRepository{conn: conn}
}

// LedgerSnapshot возвращает все платежи (захваченные и неуспешные), попадающие под фильтр, с названиями
// бизнеса и продукта. Отсутствующее название заменяется на domain.UnknownName.
// Порядок строк: created_at, id.
func (a *AnalyticsRepository) LedgerSnapshot(
	ctx context.Context,
	filter domain.AnalyticsFilter,
) ([]domain.LedgerEntry, error) {
	query, args := ledgerSnapshotQuery(filter)

	rows, err := a.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, convertErr(err, "querying ledger snapshot")
	}

	entries, collectErr := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.LedgerEntry, error) {
		var entry domain.LedgerEntry
		var businessName, productName *string
		var status string
		if scanErr := row.Scan(
			&entry.PaymentID,
			&entry.CreatedAt,
			&entry.BusinessID,
			&businessName,
			&entry.ProductID,
			&productName,
			&entry.Amount,
			&status,
		); scanErr != nil {
			return entry, scanErr //nolint:wrapcheck
		}
		entry.BusinessName = nameOrUnknown(businessName)
		entry.ProductName = nameOrUnknown(productName)
		entry.Status = domain.PaymentStatusType(status)
		return entry, nil
	})
	if collectErr != nil {
		return nil, convertErr(collectErr, "scanning ledger snapshot")
	}
	return entries, nil
}

// ledgerSnapshotQuery собирает запрос с условиями фильтра. Конечная дата включается целиком:
// created_at < end_date + 1 день.
func ledgerSnapshotQuery(filter domain.AnalyticsFilter) (string, []any) {
	var sb strings.Builder
	sb.WriteString(`
		SELECT p.id, p.created_at, p.business_id, b.name, p.product_id, pr.name, p.amount, p.status::text
		FROM payments p
		LEFT JOIN businesses b ON b.id = p.business_id
		LEFT JOIN products pr ON pr.id = p.product_id
		WHERE p.status IN ('captured', 'failed')`)

	var args []any
	where := func(cond string, arg any) {
		args = append(args, arg)
		fmt.Fprintf(&sb, "\n\t\t  AND %s $%d", cond, len(args))
	}

	if filter.StartDate != nil {
		where("p.created_at >=", filter.StartDate.UTC())
	}
	if filter.EndDate != nil {
		where("p.created_at <", filter.EndDate.UTC().AddDate(0, 0, 1))
	}
	if filter.BusinessID != nil {
		where("p.business_id =", *filter.BusinessID)
	}
	if filter.OwnerID != nil {
		where("b.owner_id =", *filter.OwnerID)
	}

	sb.WriteString("\n\t\tORDER BY p.created_at, p.id")
	return sb.String(), args
}

func nameOrUnknown(name *string) string {
	if name == nil || *name == "" {
		return domain.UnknownName
	}
	return *name
}
