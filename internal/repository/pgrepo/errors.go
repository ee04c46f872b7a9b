package pgrepo

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/fsdevblog/qrpay/internal/domain"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	uniqueViolationCode     = "23505"
	foreignKeyViolationCode = "23503"
	invalidTextReprCode     = "22P02"
)

// convertErr приводит ошибку к стандартному для слоя репозитория виду: контекст, тип бизнес-ошибки и
// оригинальное сообщение.
//   - pgx.ErrNoRows, нарушение внешнего ключа и невалидное текстовое представление (например uuid)
//     становятся domain.ErrRecordNotFound: ссылка указывает на запись, которой нет.
//   - Нарушение уникальности становится domain.ErrDuplicateKey.
//   - Остальное - domain.ErrUnknown.
func convertErr(err error, format string, formatArgs ...any) error {
	if err == nil {
		return nil
	}

	msg := fmt.Sprintf(format, formatArgs...)

	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("[repository/%s] %w", msg, domain.ErrRecordNotFound)
	}

	var pgErr *pgconn.PgError
	errType := domain.ErrUnknown

	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case uniqueViolationCode:
			errType = domain.ErrDuplicateKey
		case foreignKeyViolationCode, invalidTextReprCode:
			errType = domain.ErrRecordNotFound
		}
	}

	return fmt.Errorf("[repository/%s] %w: %s", msg, errType, err.Error())
}
